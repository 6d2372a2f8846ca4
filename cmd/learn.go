package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayato/kioku/internal/app"
	"github.com/ayato/kioku/internal/flashcard"
	"github.com/ayato/kioku/internal/plan"
	"github.com/ayato/kioku/internal/screens/study"
	"github.com/ayato/kioku/internal/session"
)

var learnCmd = &cobra.Command{
	Use:   "learn <dataset>",
	Short: "Study today's portion of the dataset's plan",
	Long: `Learn runs a session over one day's bucket of the dataset's study plan.
The day defaults to how far along the plan is since its creation; use
--day to study a specific day again.`,
	Args: cobra.ExactArgs(1),
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
			return fmt.Errorf("no plan for %q (create one: kioku plan create %s --days N)", ds.ID, ds.ID)
		}

		day, _ := cmd.Flags().GetInt("day")
		if day == 0 {
			day = currentPlanDay(p, env)
		}
		if day < 1 || day > p.TotalDays {
			return fmt.Errorf("day %d is outside the plan (1-%d)", day, p.TotalDays)
		}

		cardIDs := p.Day(day)
		if len(cardIDs) == 0 {
			fmt.Printf("Day %d of the plan has no cards.\n", day)
			return nil
		}

		mode := flashcard.DefaultMode(ds.Category)
		if m, _ := cmd.Flags().GetString("mode"); m != "" {
			mode = flashcard.Mode(m)
			if !mode.ValidFor(ds.Category) {
				return fmt.Errorf("mode %q is not valid for %s datasets", m, ds.Category)
			}
		}

		engine, err := session.New(cmd.Context(), session.Config{
			Dataset:  ds,
			Mode:     mode,
			Type:     session.TypeSpecific,
			CardIDs:  cardIDs,
			Progress: env.Store.Progress(),
			Rng:      env.Rng,
			Now:      env.Now,
		})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		title := fmt.Sprintf("%s ・ 第 %d 天", ds.Name, day)
		return app.Run(study.New(env, title, engine))
	},
}

// currentPlanDay maps today's date onto the plan: day 1 on the creation
// date, clamped to the last day once the plan has run out.
func currentPlanDay(p *plan.StudyPlan, env *app.Env) int {
	elapsed := int(env.Today().Sub(p.CreatedAt).Hours() / 24)
	day := elapsed + 1
	if day < 1 {
		return 1
	}
	if day > p.TotalDays {
		return p.TotalDays
	}
	return day
}

func init() {
	learnCmd.Flags().Int("day", 0, "Plan day to study (default: today's day)")
	learnCmd.Flags().String("mode", "", "Test mode (default depends on dataset category)")
}
