package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayato/kioku/internal/app"
	"github.com/ayato/kioku/internal/flashcard"
	"github.com/ayato/kioku/internal/screens/study"
	"github.com/ayato/kioku/internal/session"
)

var studyCmd = &cobra.Command{
	Use:   "study <dataset>",
	Short: "Start a study session for one dataset",
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

		mode := flashcard.DefaultMode(ds.Category)
		if m, _ := cmd.Flags().GetString("mode"); m != "" {
			mode = flashcard.Mode(m)
			if !mode.ValidFor(ds.Category) {
				return fmt.Errorf("mode %q is not valid for %s datasets", m, ds.Category)
			}
		}

		sessionType := session.TypeDue
		if random, _ := cmd.Flags().GetBool("random"); random {
			sessionType = session.TypeRandom
		}

		size, _ := cmd.Flags().GetInt("size")
		if size <= 0 {
			size = env.Store.Settings().Load(cmd.Context()).SessionSize
		}

		engine, err := session.New(cmd.Context(), session.Config{
			Dataset:  ds,
			Mode:     mode,
			Type:     sessionType,
			Size:     size,
			Progress: env.Store.Progress(),
			Rng:      env.Rng,
			Now:      env.Now,
		})
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		return app.Run(study.New(env, ds.Name, engine))
	},
}

func init() {
	studyCmd.Flags().String("mode", "", "Test mode (default depends on dataset category)")
	studyCmd.Flags().Bool("random", false, "Sample random cards instead of due cards")
	studyCmd.Flags().Int("size", 0, "Session size (default from settings)")
}
