package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	for _, score := range []int{0, 7, 1234} {
		if err := store.Save(score); err != nil {
			t.Fatalf("Save(%d) failed: %v", score, err)
		}
		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if got != score {
			t.Errorf("Load() = %d, expected %d", got, score)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "1234" {
		t.Errorf("file contents = %q, expected plain decimal", data)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store, _ := NewFileStore(filepath.Join(t.TempDir(), "absent"))

	got, err := store.Load()
	if err != nil || got != 0 {
		t.Errorf("Load() = %d, %v; expected 0, nil", got, err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		corrupt bool
	}{
		{"trailing newline", "42\n", 42, false},
		{"surrounding space", "  9 ", 9, false},
		{"empty", "", 0, false},
		{"text", "lots", 0, true},
		{"negative", "-3", 0, true},
		{"float", "3.5", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			store, _ := NewFileStore(path)

			got, err := store.Load()
			if tc.corrupt {
				if !errors.Is(err, ErrCorrupt) {
					t.Errorf("Load() error = %v, expected ErrCorrupt", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("Load() = %d, %v; expected %d, nil", got, err, tc.want)
			}
		})
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "highscore")
	store, _ := NewFileStore(path)

	if err := store.Save(5); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("high score file not created: %v", err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewFileStore(filepath.Join(dir, "highscore"))

	for i := 1; i <= 3; i++ {
		if err := store.Save(i); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the high score file, found %s", strings.Join(names, ", "))
	}
}

func TestFileStoreReset(t *testing.T) {
	store, _ := NewFileStore(filepath.Join(t.TempDir(), "highscore"))

	if err := store.Reset(); err != nil {
		t.Errorf("Reset() on missing file failed: %v", err)
	}

	store.Save(10)
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if got, _ := store.Load(); got != 0 {
		t.Errorf("Load() after reset = %d, expected 0", got)
	}
}

func TestFileStoreRejectsNegative(t *testing.T) {
	store, _ := NewFileStore(filepath.Join(t.TempDir(), "highscore"))

	if err := store.Save(-1); err == nil {
		t.Error("Save(-1) should fail")
	}
}
