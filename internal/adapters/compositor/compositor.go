// Package compositor implements the pixel operations that assemble final
// icon images. Two interchangeable backends exist: Native decodes and
// composites in-process, Magick shells out to ImageMagick. Both produce
// visually equivalent output; the backend is chosen once at startup.
package compositor

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Icon geometry shared by both backends. The tech-tier badge is forcibly
// sized to 16x16; structure tier art is not square but is squashed the same
// way in-game.
const (
	iconSize = 64
	techSize = 16
)

// sameFormat reports whether two paths share a file extension, in which case
// a byte copy replaces a decode/re-encode round trip.
func sameFormat(srcPath, dstPath string) bool {
	return strings.EqualFold(filepath.Ext(srcPath), filepath.Ext(dstPath))
}

// copyFile copies src to dst byte for byte.
func copyFile(srcPath, dstPath string) error {
	src, err := os.Open(srcPath) //nolint:gosec // paths come from the resource store and cache
	if err != nil {
		return zerr.Wrap(err, "failed to open source file")
	}
	defer src.Close() //nolint:errcheck // Best effort close in defer

	dst, err := os.Create(dstPath) //nolint:gosec // paths come from the resource store and cache
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
