package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore keeps one high score per difficulty in a small JSON file of the
// form {"Easy":0,"Medium":0,"Hard":0,"Extreme":0}.
type JSONStore struct {
	path string

	mu     sync.Mutex
	scores map[string]int
}

// OpenJSON loads the high score file at path. A missing file starts every
// difficulty at zero; it is created on the first new high score.
func OpenJSON(path string) (*JSONStore, error) {
	path, err := prepare(path)
	if err != nil {
		return nil, err
	}

	s := &JSONStore{path: path, scores: emptyHighScores()}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", path, err)
	}

	var loaded map[string]int
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("storage: cannot parse %s: %w", path, err)
	}
	for k, v := range loaded {
		if name, err := checkDifficulty(k); err == nil {
			s.scores[name] = max(v, 0)
		}
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *JSONStore) Path() string {
	return s.path
}

// HighScores returns a copy of the stored high scores.
func (s *JSONStore) HighScores() (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.scores), nil
}

// Record keeps score if it beats the stored high score and reports whether it did.
func (s *JSONStore) Record(difficulty string, score int) (bool, error) {
	difficulty, err := checkDifficulty(difficulty)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.scores[difficulty] {
		return false, nil
	}
	prev := s.scores[difficulty]
	s.scores[difficulty] = score
	if err := s.save(); err != nil {
		s.scores[difficulty] = prev
		return false, err
	}
	return true, nil
}

// Reset sets every high score to zero.
func (s *JSONStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = emptyHighScores()
	return s.save()
}

// save writes the scores through a temporary file renamed over the target.
func (s *JSONStore) save() error {
	return WriteHighScores(s.path, s.scores)
}

// WriteHighScores atomically writes a high score file.
func WriteHighScores(path string, scores map[string]int) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("storage: cannot encode high scores: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".highscores-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", path, err)
	}
	return nil
}
