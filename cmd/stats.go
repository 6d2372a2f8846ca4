package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayato/kioku/internal/dataset"
)

var statsCmd = &cobra.Command{
	Use:   "stats [dataset]",
	Short: "Show learning statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, closeStore, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		datasets := env.Datasets
		if len(args) == 1 {
			ds, err := findDataset(env, args[0])
			if err != nil {
				return err
			}
			datasets = []*dataset.Dataset{ds}
		}

		progress, err := env.Store.Progress().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		today := env.Today()
		fmt.Printf("%-24s %6s %8s %6s %9s %9s\n", "DATASET", "CARDS", "LEARNED", "DUE", "MASTERED", "MASTERY")
		for _, ds := range datasets {
			s := dataset.ComputeStats(ds, progress, today)
			fmt.Printf("%-24s %6d %8d %6d %9d %8d%%\n",
				ds.ID, s.TotalCards, s.LearnedCards, s.DueCards, s.MasteredCards, s.MasteryPercent)
		}
		return nil
	},
}
