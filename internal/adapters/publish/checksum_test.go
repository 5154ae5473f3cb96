package publish_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/publish"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

func TestChecksum_Stable(t *testing.T) {
	state := &domain.ExportState{Files: []string{"bp;1a.png", "icon;2b.png"}}

	var first, second bytes.Buffer
	require.NoError(t, publish.NewChecksum("", &first).Publish(context.Background(), state))
	require.NoError(t, publish.NewChecksum("", &second).Publish(context.Background(), state))

	assert.Equal(t, first.String(), second.String())
	assert.Len(t, first.String(), 17) // 16 hex digits plus newline
}

func TestChecksum_ChangesWithIndex(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, publish.NewChecksum("", &a).Publish(context.Background(), &domain.ExportState{Files: []string{"icon;2b.png"}}))
	require.NoError(t, publish.NewChecksum("", &b).Publish(context.Background(), &domain.ExportState{Files: []string{"icon;3c.png"}}))
	assert.NotEqual(t, a.String(), b.String())
}

func TestChecksum_WritesFile(t *testing.T) {
	state := &domain.ExportState{Files: []string{"icon;2b.png"}}
	out := filepath.Join(t.TempDir(), "checksum.txt")

	var printed bytes.Buffer
	require.NoError(t, publish.NewChecksum(out, &printed).Publish(context.Background(), state))
	assert.Zero(t, printed.Len())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, publish.Digest(state)+"\n", string(data))
}
