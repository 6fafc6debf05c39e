// Package ledger records issued IDs on disk so that `nanoid reserve` never
// hands out the same ID twice for a directory.
//
// Each reserved ID is a marker file under <dir>/ids named by the hex
// SHA-256 of the ID and holding the ID itself, so IDs of any length and
// alphabet map to portable, fixed-length file names. Writers serialize on
// <dir>/lock.
package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrExists is returned by Add when the ID is already recorded.
var ErrExists = errors.New("id already reserved")

const (
	idsDir   = "ids"
	lockFile = "lock"
)

// Store is the marker-file store rooted at Dir.
type Store struct {
	Dir string
}

// Init creates the ledger directories if needed.
func (s *Store) Init(_ context.Context) error {
	dir := filepath.Join(s.Dir, idsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger directory %s: %w", dir, err)
	}
	return nil
}

// LockPath returns the path of the ledger's lock file.
func (s *Store) LockPath() string {
	return filepath.Join(s.Dir, lockFile)
}

func markerName(id string) string {
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

func (s *Store) markerPath(id string) string {
	return filepath.Join(s.Dir, idsDir, markerName(id))
}

// Has reports whether id has been recorded.
func (s *Store) Has(_ context.Context, id string) (bool, error) {
	_, err := os.Stat(s.markerPath(id))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking reservation %q: %w", id, err)
}

// Add records id. It fails with ErrExists if id is already present, even
// when another process without the lock raced to create it.
func (s *Store) Add(_ context.Context, id string) error {
	path := s.markerPath(id)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrExists
		}
		return fmt.Errorf("recording reservation %q: %w", id, err)
	}
	_, werr := f.WriteString(id)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		// The marker exists, so the ID stays reserved.
		return fmt.Errorf("recording reservation %q: %w", id, werr)
	}
	return nil
}

// List returns every recorded ID in sorted order. Files that are not
// markers, or whose body does not match their name, are ignored.
func (s *Store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.Dir, idsDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading ledger %s: %w", s.Dir, err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if len(name) != 2*sha256.Size {
			continue
		}
		body, err := os.ReadFile(filepath.Join(s.Dir, idsDir, name))
		if err != nil {
			return nil, fmt.Errorf("reading ledger %s: %w", s.Dir, err)
		}
		if markerName(string(body)) != name {
			continue
		}
		ids = append(ids, string(body))
	}
	sort.Strings(ids)
	return ids, nil
}
