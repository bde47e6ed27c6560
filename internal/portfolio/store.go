package portfolio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store persists the whole project collection as one JSON array on disk.
// Saves overwrite the file in a single write: last writer wins, no merging,
// no version checks. Concurrent saves race at the filesystem level.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the full collection. A missing file is an empty portfolio, not an
// error: a fresh deployment starts with zero projects.
func (s *Store) Load() ([]Project, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []Project{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read portfolio file %s: %w", s.path, err)
	}

	var projects []Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("parse portfolio file %s: %w", s.path, err)
	}
	if projects == nil {
		projects = []Project{}
	}

	return projects, nil
}

// SaveAll serializes the ordered collection and overwrites the file.
func (s *Store) SaveAll(projects []Project) error {
	if projects == nil {
		projects = []Project{}
	}

	data, err := json.MarshalIndent(projects, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal portfolio: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write portfolio file %s: %w", s.path, err)
	}

	return nil
}
