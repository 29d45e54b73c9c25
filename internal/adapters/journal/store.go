// Package journal implements the load journal as a flat JSON file.
package journal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.grampus.dev/grampus/internal/core/domain"
	"go.grampus.dev/grampus/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LoadJournal = (*Store)(nil)

// Store implements ports.LoadJournal using a flat JSON file keyed by
// document source.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.LoadRecord
}

// NewStore creates a journal backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.LoadRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrJournalReadFailed.Error())
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, domain.ErrJournalUnmarshalFailed.Error())
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrJournalMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, domain.ErrJournalWriteFailed.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, domain.ErrJournalWriteFailed.Error())
	}

	return nil
}

// Get retrieves the record for a document source.
func (s *Store) Get(source string) (*domain.LoadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[source]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record and writes the journal through to disk.
func (s *Store) Put(rec domain.LoadRecord) error {
	s.mu.Lock()
	s.cache[rec.Source] = rec
	s.mu.Unlock()

	return s.save()
}

var _ ports.JournalFactory = (*Factory)(nil)

// Factory implements ports.JournalFactory over NewStore.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns the journal backed by the file at path.
func (f *Factory) Open(path string) (ports.LoadJournal, error) {
	return NewStore(path)
}
