// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/compositor"
	_ "github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/config"
	_ "github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/logger"
	_ "github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/app"
)
