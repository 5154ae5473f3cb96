package telemetry

import (
	"context"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/telemetry/progrock"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			return progrock.New(), nil
		},
	})
}
