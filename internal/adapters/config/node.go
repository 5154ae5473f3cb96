package config

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.rules_loader"

func init() {
	graft.Register(graft.Node[*RulesLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*RulesLoader, error) {
			return NewRulesLoader(), nil
		},
	})
}
