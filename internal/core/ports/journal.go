package ports

import "go.grampus.dev/grampus/internal/core/domain"

// LoadJournal records which documents have been applied to a target.
//
//go:generate mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type LoadJournal interface {
	// Get retrieves the record for a document source.
	// Returns nil, nil if not found.
	Get(source string) (*domain.LoadRecord, error)

	// Put stores the record.
	Put(rec domain.LoadRecord) error
}

// JournalFactory opens a LoadJournal at a path chosen at run time.
type JournalFactory interface {
	// Open returns the journal backed by the file at path.
	Open(path string) (LoadJournal, error)
}
