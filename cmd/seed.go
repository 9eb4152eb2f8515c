package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vicharak-in/tlinker/infra/logger"
	"github.com/vicharak-in/tlinker/internal/dataset"
)

var seedOut string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the bundled sample dataset to a data directory",
	RunE:  seed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedOut, "out", "o", "data", "target directory")
	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command, args []string) error {
	store := dataset.NewStore()
	if err := dataset.Seed(store); err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}
	if err := dataset.WriteDir(store, seedOut); err != nil {
		return err
	}
	logger.New("seed-command").Infof("wrote sample dataset to %s", seedOut)
	return nil
}
