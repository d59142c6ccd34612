package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tflap/internal/logging"
	"github.com/vovakirdan/tflap/internal/storage"
)

func TestPlayerKey(t *testing.T) {
	if got := PlayerKey("alice"); got != "user:alice" {
		t.Errorf("PlayerKey(alice) = %q", got)
	}
	if got := PlayerKey(""); got != "user:anonymous" {
		t.Errorf("PlayerKey(\"\") = %q", got)
	}
}

func TestSplitAddr(t *testing.T) {
	tests := []struct {
		addr, host, port string
	}{
		{":23234", "localhost", "23234"},
		{"0.0.0.0:22", "0.0.0.0", "22"},
		{"arcade.example", "arcade.example", ""},
	}

	for _, tc := range tests {
		host, port := splitAddr(tc.addr)
		if host != tc.host || port != tc.port {
			t.Errorf("splitAddr(%q) = %q, %q; expected %q, %q", tc.addr, host, port, tc.host, tc.port)
		}
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.OpenSQLite(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:23234",
		HostKeyPath: filepath.Join(dir, "keys", "host_ed25519"),
		IdleTimeout: time.Minute,
		TickRate:    20,
	}, store, logging.Discard())
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	if got := srv.ConnectHint(); got != "ssh -t -p 23234 127.0.0.1" {
		t.Errorf("ConnectHint() = %q", got)
	}

	gw := srv.gatewayFor("bob")
	if err := gw.Save(8); err != nil {
		t.Fatal(err)
	}
	if got, _ := store.HighScore("user:bob"); got != 8 {
		t.Errorf("session gateway wrote %d under user:bob, expected 8", got)
	}
}

func TestNewSSHServerNeedsLogger(t *testing.T) {
	if _, err := NewSSHServer(SSHServerConfig{}, nil, nil); err == nil {
		t.Error("expected an error without a logger")
	}
}

func TestGatewayWithoutStore(t *testing.T) {
	srv := &SSHServer{}
	if srv.gatewayFor("bob") != nil {
		t.Error("no store should mean no gateway")
	}
}
