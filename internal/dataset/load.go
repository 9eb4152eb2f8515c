package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/vicharak-in/tlinker/core/model"
	"github.com/vicharak-in/tlinker/core/table"
)

// LoadDir fills the store from a data directory laid out like the bundled
// sample: constraints.json plus one students/faculty/courses/rooms file
// each, in CSV or JSON form.
func LoadDir(s *Store, dir string) error {
	c, err := LoadConstraints(filepath.Join(dir, "constraints.json"))
	if err != nil {
		return err
	}
	if err := s.SetConstraints(c); err != nil {
		return err
	}

	for _, k := range Kinds() {
		t, err := readDatasetFile(dir, k)
		if err != nil {
			return err
		}
		if err := s.Replace(k, t); err != nil {
			return err
		}
	}
	return loadSelections(s, dir)
}

// loadSelections reads an optional selections file. Absence is not an error;
// selections usually arrive over the API.
func loadSelections(s *Store, dir string) error {
	for _, ext := range []string{".csv", ".json"} {
		f, err := os.Open(filepath.Join(dir, "selections"+ext))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("selections: %w", err)
		}
		defer f.Close() //nolint:errcheck

		var t *table.Table
		if ext == ".csv" {
			t, err = table.ReadCSV(f)
		} else {
			t, err = table.ReadJSON(f)
		}
		if err != nil {
			return fmt.Errorf("selections: %w", err)
		}
		for i, r := range t.Rows {
			sel, err := model.SelectionFromRow(r)
			if err != nil {
				return fmt.Errorf("selections row %d: %w", i, err)
			}
			s.AddSelection(sel)
		}
		return nil
	}
	return nil
}

// LoadConstraints reads a constraint grid from a JSON file.
func LoadConstraints(path string) (model.Constraints, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return model.Constraints{}, fmt.Errorf("constraints: %w", err)
	}
	var c model.Constraints
	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return model.Constraints{}, fmt.Errorf("constraints: %w", err)
	}
	if err := c.Validate(); err != nil {
		return model.Constraints{}, err
	}
	return c, nil
}

func readDatasetFile(dir string, kind Kind) (*table.Table, error) {
	for _, ext := range []string{".csv", ".json"} {
		path := filepath.Join(dir, string(kind)+ext)
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		defer f.Close() //nolint:errcheck

		var t *table.Table
		if ext == ".csv" {
			t, err = table.ReadCSV(f)
		} else {
			t, err = table.ReadJSON(f)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		return t, nil
	}
	return nil, fmt.Errorf("%s: no %s.csv or %s.json in %s", kind, kind, kind, dir)
}
