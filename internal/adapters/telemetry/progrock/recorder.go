// Package progrock provides the Progrock implementation of the telemetry
// adapter.
package progrock

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

// Recorder implements ports.Telemetry using the vito/progrock library. When
// backed by a tape it renders the final phase tree to out on Close.
type Recorder struct {
	w    progrock.Writer
	rec  *progrock.Recorder
	tape *progrock.Tape
	out  io.Writer
}

var _ ports.Telemetry = (*Recorder)(nil)

// New creates a Recorder that renders its tape to stderr when closed.
func New() *Recorder {
	return NewTapeRecorder(progrock.NewTape(), os.Stderr)
}

// NewTapeRecorder creates a Recorder over tape, rendering to out on Close.
func NewTapeRecorder(tape *progrock.Tape, out io.Writer) *Recorder {
	return &Recorder{
		w:    tape,
		rec:  progrock.NewRecorder(tape),
		tape: tape,
		out:  out,
	}
}

// NewRecorder creates a Recorder over an arbitrary status writer, such as an
// RPC sink. Nothing is rendered locally on Close.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// StartPhase begins recording a named run phase as a vertex.
func (r *Recorder) StartPhase(_ context.Context, name string) ports.Phase {
	d := digest.FromString(name)
	return &Phase{vertex: r.rec.Vertex(d, name)}
}

// Close flushes the recording session and renders the completed tape.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			return zerr.Wrap(err, "failed to close telemetry writer")
		}
	}
	if r.tape != nil {
		if err := r.tape.Render(r.out, progrock.DefaultUI()); err != nil {
			return zerr.Wrap(err, "failed to render telemetry tape")
		}
	}
	return nil
}

// Phase implements ports.Phase wrapping *progrock.VertexRecorder.
type Phase struct {
	vertex *progrock.VertexRecorder
}

// Log records a progress message for the phase.
func (p *Phase) Log(msg string) {
	_, _ = fmt.Fprintln(p.vertex.Stdout(), msg)
}

// Cached marks the phase as a cache hit.
func (p *Phase) Cached() {
	p.vertex.Cached()
}

// Complete marks the phase as finished.
func (p *Phase) Complete(err error) {
	p.vertex.Done(err)
}
