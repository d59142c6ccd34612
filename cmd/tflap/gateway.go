package main

import (
	"fmt"

	"github.com/vovakirdan/tflap/internal/config"
	"github.com/vovakirdan/tflap/internal/storage"
)

// highScoreStore is the local high score in whichever backend is
// configured.
type highScoreStore interface {
	Load() (int, error)
	Save(score int) error
	Reset() error
	Close() error
	Location() string
}

type fileBackend struct {
	*storage.FileStore
}

func (fileBackend) Close() error { return nil }

func (b fileBackend) Location() string { return b.Path() }

type sqliteBackend struct {
	*storage.KeyGateway
	store *storage.SQLiteStore
	path  string
}

func (b sqliteBackend) Close() error { return b.store.Close() }

func (b sqliteBackend) Location() string {
	return fmt.Sprintf("%s (key %s)", b.path, b.Key())
}

// openHighScore opens the configured backend for the local player.
func openHighScore(cfg config.StorageConfig) (highScoreStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return sqliteBackend{
			KeyGateway: store.Gateway(storage.LocalKey),
			store:      store,
			path:       cfg.DBPath,
		}, nil
	default:
		fs, err := storage.NewFileStore(cfg.HighScoreFile)
		if err != nil {
			return nil, err
		}
		return fileBackend{fs}, nil
	}
}
