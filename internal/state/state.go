// Package state persists per-document reading positions so a reopened
// document resumes where the reader left off. Documents are keyed by a
// content hash, so moving or renaming a file keeps its position.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	stateFileName = "reading_positions.json"
	hashBytes     = 8192 // the content hash covers the first 8KB
	retention     = 365 * 24 * time.Hour
)

// Position is the resume point for a single document: the page and the
// word the cursor was on.
type Position struct {
	Page int `json:"page"`
	Word int `json:"word"`
}

type entry struct {
	Position
	SavedAt time.Time `json:"saved_at"`
}

// Store holds the positions of every document this viewer has opened.
// Entries untouched for a year are dropped on the next write.
type Store struct {
	path string
	data map[string]entry
	mu   sync.RWMutex
	now  func() time.Time
}

// NewStore opens the store under XDG_STATE_HOME/goviewer, creating the
// directory if needed. A missing or corrupt file starts an empty store.
func NewStore() (*Store, error) {
	dir := stateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	s := &Store{
		path: filepath.Join(dir, stateFileName),
		data: make(map[string]entry),
		now:  time.Now,
	}
	if err := s.load(); err != nil {
		s.data = make(map[string]entry)
	}
	return s, nil
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "goviewer")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "goviewer")
}

// ComputeHash identifies a document by the sha256 of its leading bytes.
func ComputeHash(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, hashBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}

	hash := sha256.Sum256(buf[:n])
	return hex.EncodeToString(hash[:16]), nil
}

// Get returns the saved position for a document, or the zero position.
func (s *Store) Get(hash string) Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[hash].Position
}

// Set saves the position for a document and stamps it as recently read.
func (s *Store) Set(hash string, pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[hash] = entry{Position: pos, SavedAt: s.now()}
	s.prune()
	return s.save()
}

// Clear removes the saved position for a document.
func (s *Store) Clear(hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, hash)
	return s.save()
}

// prune drops documents not opened within the retention window.
func (s *Store) prune() {
	cutoff := s.now().Add(-retention)
	for hash, e := range s.data {
		if e.SavedAt.Before(cutoff) {
			delete(s.data, hash)
		}
	}
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

// save writes through a temp file and renames it into place, so an
// interrupted write never truncates the position file.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), stateFileName+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
