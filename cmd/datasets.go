package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the loaded datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, closeStore, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if len(env.Datasets) == 0 {
			fmt.Println("No datasets found. Point --data (or KIOKU_DATA) at a directory of dataset JSON files.")
			return nil
		}

		for _, ds := range env.Datasets {
			level := ds.Level
			if level == "" {
				level = "-"
			}
			fmt.Printf("%-24s %-12s %-6s %4d cards\n", ds.ID, ds.Category, level, len(ds.Items))
		}
		return nil
	},
}
