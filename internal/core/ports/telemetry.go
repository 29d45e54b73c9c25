package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans around document loads.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Close flushes and closes the recording session.
	Close() error
}

// Span represents one unit of work, typically a single document load.
type Span interface {
	io.Writer

	// End completes the span. A nil error marks it successful.
	End(err error)

	// Cached marks the span as satisfied by previous work.
	Cached()
}
