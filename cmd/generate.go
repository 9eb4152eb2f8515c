package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vicharak-in/tlinker/core/schedule"
	"github.com/vicharak-in/tlinker/infra/logger"
	"github.com/vicharak-in/tlinker/internal/dataset"
	"github.com/vicharak-in/tlinker/pkg/export"
)

var (
	generateDataDir string
	generateOut     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a timetable for the whole course catalog and export it",
	RunE:  generate,
}

func init() {
	generateCmd.Flags().StringVar(&generateDataDir, "data", "", "dataset directory (default: bundled sample data)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "timetable.csv", "output file; format follows the extension (.csv, .json, .xlsx, .ics)")
	rootCmd.AddCommand(generateCmd)
}

func generate(cmd *cobra.Command, args []string) error {
	logg := logger.New("generate-command")

	store := dataset.NewStore()
	if generateDataDir != "" {
		if err := dataset.LoadDir(store, generateDataDir); err != nil {
			return fmt.Errorf("load data dir: %w", err)
		}
	} else if err := dataset.Seed(store); err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}

	in, err := store.Snapshot()
	if err != nil {
		return err
	}
	res, err := schedule.New(logg, nil).Generate(in)
	if err != nil {
		return err
	}
	logg.Infof("run %s placed %d sessions", res.RunID, len(res.Sessions))

	f, err := os.Create(generateOut)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	switch strings.ToLower(filepath.Ext(generateOut)) {
	case ".csv":
		err = export.WriteCSV(f, res.Sessions)
	case ".json":
		err = export.WriteJSON(f, res.Sessions)
	case ".xlsx":
		err = export.WriteXLSX(f, res.Sessions)
	case ".ics":
		err = export.WriteICS(f, res.Sessions, in.Constraints, nextMonday(time.Now().UTC()))
	default:
		err = fmt.Errorf("unsupported output format: %s", generateOut)
	}
	return err
}

func nextMonday(t time.Time) time.Time {
	t = t.Truncate(24 * time.Hour)
	for t.Weekday() != time.Monday {
		t = t.Add(24 * time.Hour)
	}
	return t
}
