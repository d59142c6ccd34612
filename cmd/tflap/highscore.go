package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHighScoreCmd(flags *globalFlags) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "highscore",
		Short: "Print the stored high score",
		Long: `Print the high score stored by the configured backend.

Examples:
  tflap highscore
  tflap highscore --reset
  tflap highscore --storage sqlite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			store, err := openHighScore(cfg.Storage)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if reset {
				if err := store.Reset(); err != nil {
					return err
				}
				fmt.Fprintf(out, "High score cleared (%s)\n", store.Location())
				return nil
			}

			score, err := store.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, score)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Clear the stored high score")
	return cmd
}
