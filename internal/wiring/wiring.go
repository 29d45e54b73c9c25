// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.grampus.dev/grampus/internal/adapters/document"
	_ "go.grampus.dev/grampus/internal/adapters/journal"
	_ "go.grampus.dev/grampus/internal/adapters/logger"
	_ "go.grampus.dev/grampus/internal/adapters/target"
	_ "go.grampus.dev/grampus/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.grampus.dev/grampus/internal/app"
)
