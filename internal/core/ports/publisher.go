package ports

import (
	"context"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

// Publisher materializes a completed build's cache state into one
// distributable form. Publishers are one-shot; they hold no state across
// runs beyond what they write to their target.
type Publisher interface {
	Publish(ctx context.Context, state *domain.ExportState) error
}
