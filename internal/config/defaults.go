package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tflap.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches
// defaults/tflap.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() AppConfig {
	return AppConfig{
		TickRate: DefaultTickRate,
		Storage: StorageConfig{
			Backend:       BackendFile,
			HighScoreFile: "~/.tflap_highscore",
			DBPath:        "~/.tflap/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.tflap/tflap.log",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     "~/.tflap/ssh_host_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}
