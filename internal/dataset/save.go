package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vicharak-in/tlinker/core/table"
)

// WriteDir writes the store's datasets to dir in the layout LoadDir reads:
// one CSV per dataset with list columns JSON-encoded, plus constraints.json.
func WriteDir(s *Store, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, k := range Kinds() {
		t, ok := s.Table(k)
		if !ok {
			return fmt.Errorf("%s: dataset not loaded", k)
		}
		encoded, err := table.EncodeJSONColumns(t, JSONColumns(k))
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		if err := writeCSVFile(filepath.Join(dir, string(k)+".csv"), encoded); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}

	f, err := os.Create(filepath.Join(dir, "constraints.json"))
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Constraints())
}

func writeCSVFile(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := table.WriteCSV(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
