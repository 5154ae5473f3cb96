// Package telemetry provides telemetry implementations for the pipeline.
package telemetry

import (
	"context"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry, used in silent mode and
// in tests.
type NoOp struct{}

// NewNoOp creates a new no-op telemetry sink.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// StartPhase returns a phase that discards everything.
func (t *NoOp) StartPhase(_ context.Context, _ string) ports.Phase {
	return noopPhase{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noopPhase struct{}

func (noopPhase) Log(_ string)     {}
func (noopPhase) Cached()          {}
func (noopPhase) Complete(_ error) {}
