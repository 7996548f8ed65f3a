// Package store persists past analyses as JSON files keyed by the content
// hash of their source text, so re-submitting the same text finds the
// existing analysis instead of re-extracting.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/argmapio/argmap/internal/argmap"
)

// Store is a directory of analysis files, one per content hash.
type Store struct {
	dir string
}

// New opens (creating if needed) a store rooted at dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Put saves the graph and returns its content-hash key.
func (s *Store) Put(g *argmap.ArgumentGraph) (string, error) {
	key := argmap.ContentHash(g.SourceText)

	jsonData, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(s.path(key), jsonData, 0o644); err != nil {
		return "", err
	}
	return key, nil
}

// Get loads a previously stored analysis. ok is false when the key is
// unknown.
func (s *Store) Get(key string) (g *argmap.ArgumentGraph, ok bool, err error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	g = &argmap.ArgumentGraph{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, false, fmt.Errorf("corrupt analysis %s: %w", key, err)
	}
	return g, true, nil
}

// GetByText looks an analysis up by its source text.
func (s *Store) GetByText(sourceText string) (*argmap.ArgumentGraph, bool, error) {
	return s.Get(argmap.ContentHash(sourceText))
}

// List returns the keys of all stored analyses.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
