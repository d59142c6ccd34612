package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tflap/internal/logging"
	"github.com/vovakirdan/tflap/internal/platform/tui"
	"github.com/vovakirdan/tflap/internal/storage"
)

type serveFlags struct {
	address     string
	hostKey     string
	idleTimeout time.Duration
}

func newServeCmd(flags *globalFlags) *cobra.Command {
	sf := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the tflap SSH server",
		Long: `Start an SSH server that lets users connect and play.

Every SSH connection plays its own game. High scores are kept per SSH user
in the scores database (--db), whatever the configured local backend.

Host key handling:
  - The key at ssh.host_key (or --host-key) is used
  - It is generated on first start if missing

Examples:
  tflap serve                           # Listen on :23234
  tflap serve --ssh :2222               # Listen on port 2222
  tflap serve --host-key ./my_host_key  # Use specific host key
  tflap serve --db ./scores.db          # Use specific database

Users connect with:
  ssh -t localhost -p 23234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags, sf)
		},
	}

	cmd.Flags().StringVar(&sf.address, "ssh", ":23234", "SSH server address (host:port)")
	cmd.Flags().StringVar(&sf.hostKey, "host-key", "", "Path to host key file")
	cmd.Flags().DurationVar(&sf.idleTimeout, "idle-timeout", 10*time.Minute, "Disconnect after this much inactivity")

	return cmd
}

func runServe(cmd *cobra.Command, flags *globalFlags, sf *serveFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ssh") {
		cfg.SSH.Address = sf.address
	}
	if cmd.Flags().Changed("host-key") {
		cfg.SSH.HostKey = sf.hostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = sf.idleTimeout
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	store, err := storage.OpenSQLite(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		IdleTimeout: cfg.SSH.IdleTimeout,
		TickRate:    cfg.TickRate,
		Seed:        cfg.Seed,
	}, store, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting tflap SSH server on %s\n", server.Addr())
	fmt.Fprintf(out, "Connect with: %s\n", server.ConnectHint())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
