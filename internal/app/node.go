package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.grampus.dev/grampus/internal/adapters/document" //nolint:depguard // Wired in app layer
	"go.grampus.dev/grampus/internal/adapters/journal"  //nolint:depguard // Wired in app layer
	"go.grampus.dev/grampus/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.grampus.dev/grampus/internal/adapters/target"   //nolint:depguard // Wired in app layer
	"go.grampus.dev/grampus/internal/adapters/telemetry/progrock"
	"go.grampus.dev/grampus/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the main App Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			document.NodeID,
			target.NodeID,
			journal.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.DocumentLoader](ctx)
	if err != nil {
		return nil, err
	}

	targets, err := graft.Dep[ports.TargetFactory](ctx)
	if err != nil {
		return nil, err
	}

	journals, err := graft.Dep[ports.JournalFactory](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, targets, journals, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
