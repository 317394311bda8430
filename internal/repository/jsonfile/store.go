package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/alphav1/to-do-list/internal/domain"
)

// Store implements domain.Store on top of a single JSON file, the same
// layout lowdb writes: {"users": [...], "todos": [...]} with two-space
// indentation.
//
// An RWMutex guards the whole read-validate-mutate-persist cycle: mutations
// serialize, reads share. Nothing is cached between calls; every View and
// Update re-reads the file.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New opens the store at the given path. If the backing file does not exist
// it is created with the seed dataset before any read. A file that exists
// but cannot be parsed or fails schema validation is rejected here rather
// than on first use.
func New(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.save(Seed()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", domain.ErrStorage, path, err)
	}

	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// View runs fn with a freshly loaded document under a shared lock.
func (s *Store) View(ctx context.Context, fn func(doc *domain.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn with a freshly loaded document under the exclusive lock and
// persists the result. If fn fails nothing is written.
func (s *Store) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) load() (*domain.Document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, s.path, err)
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrStorage, s.path, err)
	}
	if err := documentSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: invalid document %s: %v", domain.ErrStorage, s.path, err)
	}

	doc := &domain.Document{}
	if err := json.Unmarshal(b, doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorage, s.path, err)
	}
	if doc.Users == nil {
		doc.Users = []domain.User{}
	}
	if doc.Todos == nil {
		doc.Todos = []domain.Todo{}
	}
	return doc, nil
}

// save atomically replaces the whole file: write a sibling temp file, then
// rename over the target so a crash cannot leave a torn document.
func (s *Store) save(doc *domain.Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal document: %v", domain.ErrStorage, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", domain.ErrStorage, tmp, err)
	}
	return nil
}
