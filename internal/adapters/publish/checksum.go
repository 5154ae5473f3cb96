package publish

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Checksum emits a stable digest of the cache index. Two runs over identical
// cache contents print identical digests, so downstream consumers can poll
// the checksum to detect new icon data without fetching anything.
type Checksum struct {
	// Out is the file to write the digest to; empty writes to W instead.
	Out string
	W   io.Writer
}

// NewChecksum returns a checksum publisher. With an empty out the digest is
// written to w.
func NewChecksum(out string, w io.Writer) *Checksum {
	return &Checksum{Out: out, W: w}
}

// Digest computes the index digest for an export state.
func Digest(state *domain.ExportState) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(domain.EncodeIndex(state.Files)))
}

func (p *Checksum) Publish(_ context.Context, state *domain.ExportState) error {
	digest := Digest(state)
	if p.Out == "" {
		if _, err := fmt.Fprintln(p.W, digest); err != nil {
			return zerr.Wrap(err, "failed to write checksum")
		}
		return nil
	}
	if err := os.WriteFile(p.Out, []byte(digest+"\n"), 0o644); err != nil { //nolint:gosec // public digest
		return zerr.Wrap(err, "failed to write checksum file")
	}
	return nil
}
