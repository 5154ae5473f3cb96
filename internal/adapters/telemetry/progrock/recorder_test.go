package progrock_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"

	recorder "github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/telemetry/progrock"
)

func TestRecorder_RendersPhasesOnClose(t *testing.T) {
	var buf bytes.Buffer
	rec := recorder.NewTapeRecorder(progrock.NewTape(), &buf)

	phase := rec.StartPhase(context.Background(), "load static data")
	phase.Log("build 123")
	phase.Complete(nil)

	require.NoError(t, rec.Close())
	assert.Contains(t, buf.String(), "load static data")
}

func TestRecorder_RendersFailedPhase(t *testing.T) {
	var buf bytes.Buffer
	rec := recorder.NewTapeRecorder(progrock.NewTape(), &buf)

	phase := rec.StartPhase(context.Background(), "publish output")
	phase.Complete(assert.AnError)

	require.NoError(t, rec.Close())
	assert.Contains(t, buf.String(), "publish output")
}
