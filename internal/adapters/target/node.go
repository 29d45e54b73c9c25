package target

import (
	"context"

	"github.com/grindlemire/graft"
	"go.grampus.dev/grampus/internal/core/ports"
)

// NodeID is the unique identifier for the target factory Graft node.
const NodeID graft.ID = "adapter.target_factory"

func init() {
	graft.Register(graft.Node[ports.TargetFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TargetFactory, error) {
			return NewFactory(), nil
		},
	})
}
