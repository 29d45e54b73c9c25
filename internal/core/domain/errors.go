package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingGraphSection is returned when a document has no graph section.
	// This is a configuration error raised before any graph mutation.
	ErrMissingGraphSection = zerr.New("missing required graph section")

	// ErrInvalidEdgeTarget is returned when an edge target is an arbitrary
	// mapping rather than a vertex name or a list of vertex names.
	ErrInvalidEdgeTarget = zerr.New("edge target may not be an arbitrary map")

	// ErrNoDocumentsSpecified is returned when the load command is invoked
	// without any document sources.
	ErrNoDocumentsSpecified = zerr.New("no documents specified")

	// ErrDocumentReadFailed is returned when a document source cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrDocumentParseFailed is returned when a document cannot be parsed as YAML.
	ErrDocumentParseFailed = zerr.New("failed to parse document")

	// ErrDocumentFetchFailed is returned when fetching a document over HTTP fails.
	ErrDocumentFetchFailed = zerr.New("failed to fetch document")

	// ErrStoreOpenFailed is returned when the target graph store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open graph store")

	// ErrStoreWriteFailed is returned when a mutation of the target graph store fails.
	ErrStoreWriteFailed = zerr.New("failed to write to graph store")

	// ErrStoreReadFailed is returned when a lookup against the target graph store fails.
	ErrStoreReadFailed = zerr.New("failed to read from graph store")

	// ErrJournalReadFailed is returned when the load journal cannot be read.
	ErrJournalReadFailed = zerr.New("failed to read load journal")

	// ErrJournalWriteFailed is returned when the load journal cannot be written.
	ErrJournalWriteFailed = zerr.New("failed to write load journal")

	// ErrJournalMarshalFailed is returned when journal records cannot be marshaled.
	ErrJournalMarshalFailed = zerr.New("failed to marshal load journal")

	// ErrJournalUnmarshalFailed is returned when journal records cannot be unmarshaled.
	ErrJournalUnmarshalFailed = zerr.New("failed to unmarshal load journal")
)
