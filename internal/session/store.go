// Package session persists the logged-in user's identifier between runs,
// the way a browser keeps it in localStorage.
package session

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// slotName is the single key the store manages.
const slotName = "user_id"

// Store keeps at most one user id on disk. Writes replace the slot
// wholesale; a malformed slot reads as absent rather than failing.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore binds a store to a directory. The directory is created lazily on
// the first Save.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, slotName)}
}

// Save persists the user id as decimal text, overwriting any prior value.
// Callers treat failures as best-effort; the session simply won't survive
// the process.
func (s *Store) Save(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(strconv.FormatInt(id, 10)), 0o600)
}

// Load returns the persisted user id. The second result is false when
// nothing was stored, the slot was cleared, or the stored text is not a
// well-formed non-negative integer.
func (s *Store) Load() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// Clear removes the persisted id. Clearing an empty store is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	os.Remove(s.path) // nolint:errcheck
}
