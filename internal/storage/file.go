// Package storage persists the high score. FileStore keeps it as a decimal
// integer in a text file; SQLiteStore keeps one score per key in a table
// using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/tflap/internal/config"
	"github.com/vovakirdan/tflap/internal/flappy"
)

// DefaultHighScoreFile is the file used when no path is configured.
const DefaultHighScoreFile = "~/.tflap_highscore"

// ErrCorrupt is returned when the stored value is not a valid score.
var ErrCorrupt = errors.New("storage: corrupt high score")

// FileStore reads and writes the high score as a single decimal integer.
type FileStore struct {
	path string
}

var _ flappy.Gateway = (*FileStore)(nil)

// NewFileStore creates a store for the file at path. A leading ~ is
// expanded to the home directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = DefaultHighScoreFile
	}
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored score. A missing file is a score of 0.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %q in %s", ErrCorrupt, text, s.path)
	}
	return score, nil
}

// Save overwrites the stored score. The value is written to a temporary
// file first and renamed into place so a crash never leaves a torn file.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: refusing to save negative score %d", score)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Reset removes the stored score.
func (s *FileStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove %s: %w", s.path, err)
	}
	return nil
}
