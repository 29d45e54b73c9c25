package app

import "go.grampus.dev/grampus/internal/core/ports"

// Components bundles the application object with the ports the CLI layer
// needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}
