package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/compositor" //nolint:depguard // Wired in app layer
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the main App Graft node.
	NodeID graft.ID = "app.main"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
			compositor.NativeNodeID,
			compositor.MagickNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			rules, err := graft.Dep[*config.RulesLoader](ctx)
			if err != nil {
				return nil, err
			}

			native, err := graft.Dep[*compositor.Native](ctx)
			if err != nil {
				return nil, err
			}

			magick, err := graft.Dep[*compositor.Magick](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, tel, rules, native, magick), nil
		},
	})
}
