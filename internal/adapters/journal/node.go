package journal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.grampus.dev/grampus/internal/core/ports"
)

// NodeID is the unique identifier for the journal factory Graft node.
const NodeID graft.ID = "adapter.journal_factory"

func init() {
	graft.Register(graft.Node[ports.JournalFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.JournalFactory, error) {
			return NewFactory(), nil
		},
	})
}
