package ports

import (
	"context"

	"go.grampus.dev/grampus/internal/core/domain"
)

// DocumentLoader reads and parses graph documents.
//
//go:generate mockgen -source=document_loader.go -destination=mocks/mock_document_loader.go -package=mocks
type DocumentLoader interface {
	// Load reads one document from a file path or http(s) URL.
	Load(ctx context.Context, source string) (*domain.Document, error)

	// LoadAll reads several documents, possibly concurrently, and returns
	// them in argument order. Parsing may be concurrent; applying the
	// documents to a target stays the caller's, strictly serial, concern.
	LoadAll(ctx context.Context, sources []string) ([]*domain.Document, error)
}
