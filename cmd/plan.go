package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayato/kioku/internal/plan"
	"github.com/ayato/kioku/internal/srs"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage study plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create <dataset>",
	Short: "Split a dataset's cards over a number of days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, closeStore, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		ds, err := findDataset(env, args[0])
		if err != nil {
			return err
		}

		days, _ := cmd.Flags().GetInt("days")
		svc := plan.NewService(env.Store.Plans(), env.Now)
		p, err := svc.Create(cmd.Context(), ds.ID, ds.ItemIDs(), days)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Printf("Plan cleared for %s; study everything at once.\n", ds.ID)
			return nil
		}

		fmt.Printf("Plan for %s: %d cards over %d days.\n", ds.ID, p.TotalCards(), p.TotalDays)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <dataset>",
	Short: "Show the dataset's current plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, closeStore, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		ds, err := findDataset(env, args[0])
		if err != nil {
			return err
		}

		svc := plan.NewService(env.Store.Plans(), env.Now)
		p, err := svc.Load(cmd.Context(), ds.ID)
		if err != nil {
			return fmt.Errorf("load plan: %w", err)
		}
		if p == nil {
			fmt.Printf("No plan for %s.\n", ds.ID)
			return nil
		}

		fmt.Printf("Plan for %s: %d cards over %d days (created %s)\n",
			ds.ID, p.TotalCards(), p.TotalDays, p.CreatedAt.Format(srs.DateFormat))
		for day := 1; day <= p.TotalDays; day++ {
			fmt.Printf("  day %2d: %d cards\n", day, len(p.Day(day)))
		}
		return nil
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear <dataset>",
	Short: "Remove the dataset's plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, closeStore, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		ds, err := findDataset(env, args[0])
		if err != nil {
			return err
		}

		svc := plan.NewService(env.Store.Plans(), env.Now)
		if err := svc.Clear(cmd.Context(), ds.ID); err != nil {
			return fmt.Errorf("clear plan: %w", err)
		}
		fmt.Printf("Plan cleared for %s.\n", ds.ID)
		return nil
	},
}

func init() {
	planCreateCmd.Flags().Int("days", 0, "Number of days to split the cards over (0 clears the plan)")

	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planClearCmd)
}
