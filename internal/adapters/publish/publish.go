// Package publish implements the four output publishers that materialize the
// icon cache into a distributable form: the service bundle zip, the legacy
// IEC zip, the synchronized web directory, and the index checksum.
package publish

import (
	"io"
	"os"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"go.trai.ch/zerr"
)

// New selects the publisher for the given output mode.
func New(mode domain.OutputMode, log ports.Logger) ports.Publisher {
	switch mode.Kind {
	case domain.OutputIEC:
		return &IEC{Out: mode.Out, log: log}
	case domain.OutputWeb:
		return &WebDir{Out: mode.Out, Linker: LinkerFor(mode), log: log}
	case domain.OutputChecksum:
		return &Checksum{Out: mode.Out, W: os.Stdout}
	default:
		return &ServiceBundle{Out: mode.Out, log: log}
	}
}

// copyFile copies src to dst byte for byte.
func copyFile(srcPath, dstPath string) error {
	src, err := os.Open(srcPath) //nolint:gosec // paths are cache files and publish targets
	if err != nil {
		return zerr.Wrap(err, "failed to open source file")
	}
	defer src.Close() //nolint:errcheck // Best effort close in defer

	dst, err := os.Create(dstPath) //nolint:gosec // paths are cache files and publish targets
	if err != nil {
		return zerr.Wrap(err, "failed to create destination file")
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return zerr.Wrap(err, "failed to copy file")
	}
	if err := dst.Close(); err != nil {
		return zerr.Wrap(err, "failed to flush destination file")
	}
	return nil
}
