package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathgenius/genius/internal/app"
	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/logx"
	"github.com/pathgenius/genius/internal/question"
	"github.com/pathgenius/genius/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "genius",
	Short: "Challenge history's greatest minds",
	Long:  "Path of a Genius — a terminal game of daily IQ tests and head-to-head challenges against simulated historical geniuses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := question.Load()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}
		roster, err := figures.Load()
		if err != nil {
			return fmt.Errorf("load figure roster: %w", err)
		}

		opts := app.Options{Bank: bank, Roster: roster}

		st, err := openStore(cmd)
		if err != nil {
			slog.Warn("store unavailable, results will not be saved", "err", err)
		} else {
			opts.Store = st
			defer st.Close()
		}

		return app.Run(opts)
	},
}

func Execute() error {
	logx.Setup(os.Stderr, slog.LevelInfo)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GENIUS_DB env var)")

	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GENIUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
