package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ayato/kioku/internal/app"
	"github.com/ayato/kioku/internal/dataset"
	"github.com/ayato/kioku/internal/screens/home"
	"github.com/ayato/kioku/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kioku",
	Short: "Terminal flashcards for Japanese learners",
	Long:  "Kioku (記憶) — spaced-repetition flashcards for Japanese vocabulary and grammar, in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, closeStore, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer closeStore()
		return app.Run(home.New(env))
	},
}

func Execute() error {
	// A local .env can set KIOKU_DB / KIOKU_DATA; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KIOKU_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to dataset directory (overrides KIOKU_DATA env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then KIOKU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveDataDir returns the dataset directory using --data flag, then
// KIOKU_DATA env var, then ./data.
func resolveDataDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p
	}
	return store.DefaultDataDir()
}

// buildEnv opens the store, loads datasets, and assembles the shared
// dependencies. Broken dataset files are reported on stderr and skipped.
func buildEnv(cmd *cobra.Command) (*app.Env, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	datasets, err := dataset.Load(resolveDataDir(cmd), func(file string, err error) {
		fmt.Fprintf(os.Stderr, "skipping %s: %v\n", file, err)
	})
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load datasets: %w", err)
	}

	env := &app.Env{
		Datasets: datasets,
		Store:    st,
		Rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:      time.Now,
	}
	return env, func() { st.Close() }, nil
}

// findDataset looks up a dataset by ID.
func findDataset(env *app.Env, id string) (*dataset.Dataset, error) {
	for _, ds := range env.Datasets {
		if ds.ID == id {
			return ds, nil
		}
	}
	return nil, fmt.Errorf("dataset %q not found (try: kioku datasets)", id)
}
