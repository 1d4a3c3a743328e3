// Package report renders engine output as JSON for the CLI and file export.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Write renders v as indented JSON to w.
func Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Save writes v as indented JSON to path.
func Save(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := Write(f, v); err != nil {
		return err
	}
	return f.Close()
}
