package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tflap/internal/platform/tui"
	"github.com/vovakirdan/tflap/internal/storage"
)

func newScoresCmd(flags *globalFlags) *cobra.Command {
	var (
		plain bool
		limit int
	)

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the per-player leaderboard",
		Long: `Show the best score of every player in the scores database: the local
player of the sqlite backend and every SSH user of 'tflap serve'.

The leaderboard opens as a scrollable table in a terminal and prints as
plain text otherwise.

Examples:
  tflap scores
  tflap scores --plain --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			store, err := storage.OpenSQLite(cfg.Storage.DBPath)
			if err != nil {
				return fmt.Errorf("cannot open scores database: %w", err)
			}
			defer store.Close()

			if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
				width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
				if sizeErr != nil {
					width, height = 80, 24
				}
				return tui.RunScoreboard(store, width, height)
			}

			entries, err := store.Top(limit)
			if err != nil {
				return err
			}
			printScores(cmd, entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print as text even in a terminal")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries to print")
	return cmd
}

func printScores(cmd *cobra.Command, entries []storage.Entry) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return
	}

	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %s\n", "Rank", "Player", "Score", "Updated")
	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %s\n", "----", "------", "-----", "-------")

	for i, e := range entries {
		updated := "-"
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-4d  %-20s  %-8d  %s\n", i+1, e.Key, e.Score, updated)
	}
}
