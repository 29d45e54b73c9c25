package progrock

import (
	"github.com/vito/progrock"
	"go.grampus.dev/grampus/internal/core/ports"
)

var _ ports.Span = (*Span)(nil)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
}

// Write records output on the span's stdout stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// End marks the span as finished, successfully or with an error.
func (s *Span) End(err error) {
	s.vertex.Done(err)
}

// Cached marks the span as satisfied by previous work.
func (s *Span) Cached() {
	s.vertex.Cached()
}
