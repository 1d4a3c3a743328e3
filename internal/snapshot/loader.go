package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coldwatch/walletrisk/internal/models"
	"github.com/coldwatch/walletrisk/internal/risk"
)

// FileProvider reads snapshots from JSON files exported by another tool.
type FileProvider struct {
	WalletPath string
	MarketPath string
}

// Snapshots loads and minimally validates both files.
func (p FileProvider) Snapshots() (models.WalletSnapshot, models.MarketSnapshot, error) {
	var wallet models.WalletSnapshot
	var market models.MarketSnapshot

	if err := readJSON(p.WalletPath, &wallet); err != nil {
		return wallet, market, fmt.Errorf("wallet snapshot: %w", err)
	}
	if err := readJSON(p.MarketPath, &market); err != nil {
		return wallet, market, fmt.Errorf("market snapshot: %w", err)
	}

	for _, pt := range market.PriceHistory {
		if pt.Price <= 0 {
			return wallet, market, fmt.Errorf("market snapshot: non-positive price %.4f at %s", pt.Price, pt.Timestamp)
		}
	}
	for _, u := range wallet.UTXOs {
		if u.Amount < 0 || u.Confirmations < 0 {
			return wallet, market, fmt.Errorf("wallet snapshot: invalid UTXO %s:%d", u.TxID, u.OutputIndex)
		}
	}
	return wallet, market, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// scenarioFile is the on-disk shape of a stress scenario list.
type scenarioFile struct {
	Scenarios []risk.Scenario `yaml:"scenarios"`
}

// LoadScenarios reads stress scenarios from a YAML file. An empty path
// returns nil, which selects the built-in reference scenarios.
func LoadScenarios(path string) ([]risk.Scenario, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios YAML: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenarios file %s defines no scenarios", path)
	}
	for _, sc := range file.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenarios file %s: scenario without a name", path)
		}
	}
	return file.Scenarios, nil
}
