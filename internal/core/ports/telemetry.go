package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry reports run phases to a progress sink.
type Telemetry interface {
	// StartPhase begins recording a named phase of the run.
	StartPhase(ctx context.Context, name string) Phase
	// Close flushes and closes the recording session.
	Close() error
}

// Phase is one recorded unit of the run.
type Phase interface {
	// Log records a progress message for the phase.
	Log(msg string)
	// Cached marks the phase as having done no new work.
	Cached()
	// Complete finishes the phase, successfully or with an error.
	Complete(err error)
}
