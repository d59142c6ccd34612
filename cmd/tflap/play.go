package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tflap/internal/config"
	"github.com/vovakirdan/tflap/internal/core"
	"github.com/vovakirdan/tflap/internal/flappy"
	"github.com/vovakirdan/tflap/internal/logging"
	"github.com/vovakirdan/tflap/internal/platform/tui"
)

// errNotTerminal is returned when the game is started without a terminal.
var errNotTerminal = errors.New("tflap needs an interactive terminal (stdin and stdout must be a TTY)")

func runPlay(cmd *cobra.Command, flags *globalFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("cannot read terminal size: %w", err)
	}

	// The game owns the terminal, so logs go to a file.
	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	gw, cleanup := localGateway(cmd, cfg.Storage, logger)
	defer cleanup()

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	}
	logger.Info("starting", "size", fmt.Sprintf("%dx%d", width, height), "tick_rate", rc.TickRate, "storage", cfg.Storage.Backend)

	if err := tui.Run(rc, gw, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// localGateway opens the configured high score backend. If it cannot be
// opened the game still runs, without persistence.
func localGateway(cmd *cobra.Command, cfg config.StorageConfig, logger *log.Logger) (flappy.Gateway, func()) {
	store, err := openHighScore(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: high score will not be saved: %v\n", err)
		logger.Warn("could not open high score storage", "error", err)
		return nil, func() {}
	}
	logger.Debug("high score storage", "location", store.Location())
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing high score storage", "error", err)
		}
	}
}
