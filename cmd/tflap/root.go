package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tflap/internal/config"
)

// globalFlags holds flags shared by every command.
type globalFlags struct {
	configPath    string
	fps           int
	seed          int64
	backend       string
	highScoreFile string
	dbPath        string
	logLevel      string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "tflap",
		Short: "Terminal Flap - a flappy bird game for your terminal",
		Long: `Terminal Flap is a flappy bird style game played in a text terminal.

Controls:
  Space/Up/W/K  - Flap (starts a round from the menu)
  R             - Retry after game over
  Q/Esc/Ctrl+C  - Quit
  Ctrl+S        - Save a screenshot to ~/.tflap/screenshots

Examples:
  tflap
  tflap --seed 42
  tflap highscore
  tflap highscore --reset
  tflap serve --ssh :2222`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to config YAML")
	pf.IntVar(&flags.fps, "fps", config.DefaultTickRate, "Simulation tick rate (ticks per second)")
	pf.Int64Var(&flags.seed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flags.backend, "storage", config.BackendFile, "High score backend: file or sqlite")
	pf.StringVar(&flags.highScoreFile, "highscore-file", "~/.tflap_highscore", "High score file (file backend)")
	pf.StringVar(&flags.dbPath, "db", "~/.tflap/scores.db", "Scores database (sqlite backend)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newHighScoreCmd(flags))
	root.AddCommand(newScoresCmd(flags))

	return root
}

// loadConfig reads the config file and applies flags the user set
// explicitly. Paths are returned with ~ expanded.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (config.AppConfig, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	set := cmd.Flags().Changed
	if set("fps") {
		cfg.TickRate = flags.fps
	}
	if set("seed") {
		cfg.Seed = flags.seed
	}
	if set("storage") {
		cfg.Storage.Backend = flags.backend
	}
	if set("highscore-file") {
		cfg.Storage.HighScoreFile = flags.highScoreFile
	}
	if set("db") {
		cfg.Storage.DBPath = flags.dbPath
	}
	if set("log-level") {
		cfg.Log.Level = flags.logLevel
	}

	if err := cfg.Normalize(); err != nil {
		return cfg, err
	}
	if err := cfg.ExpandPaths(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
