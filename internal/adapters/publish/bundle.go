package publish

import (
	"archive/zip"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"go.trai.ch/zerr"
)

// MetadataFilename is the name of the metadata entry in a service bundle.
const MetadataFilename = "service_metadata.json"

// ServiceBundle writes every cached icon plus the type-to-filename metadata
// into a single zip archive. Image entries are stored uncompressed since PNG
// and JPEG data doesn't deflate; the metadata entry is compressed.
type ServiceBundle struct {
	Out string
	log ports.Logger
}

// NewServiceBundle returns a service bundle publisher writing to out.
func NewServiceBundle(out string, log ports.Logger) *ServiceBundle {
	return &ServiceBundle{Out: out, log: log}
}

// Publish writes the bundle archive. The output file is replaced atomically
// on a best-effort basis: the archive is assembled in a temp file next to the
// target and renamed into place once complete.
func (p *ServiceBundle) Publish(ctx context.Context, state *domain.ExportState) error {
	tmp, err := os.CreateTemp(filepath.Dir(p.Out), ".bundle-*.zip")
	if err != nil {
		return zerr.Wrap(err, "failed to create bundle temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Best effort cleanup

	if err := p.write(ctx, tmp, state); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to flush bundle temp file")
	}
	if err := os.Rename(tmpName, p.Out); err != nil {
		return zerr.Wrap(err, "failed to move bundle into place")
	}
	p.log.Info("wrote service bundle: " + p.Out)
	return nil
}

func (p *ServiceBundle) write(ctx context.Context, w io.Writer, state *domain.ExportState) error {
	zw := zip.NewWriter(w)

	for _, name := range state.Files {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "bundle write cancelled")
		}
		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Store,
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create bundle entry"), "entry", name)
		}
		if err := copyInto(entry, filepath.Join(state.CacheDir, name)); err != nil {
			return zerr.With(err, "entry", name)
		}
	}

	meta, err := zw.CreateHeader(&zip.FileHeader{
		Name:   MetadataFilename,
		Method: zip.Deflate,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to create metadata entry")
	}
	enc := json.NewEncoder(meta)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state.Metadata); err != nil {
		return zerr.Wrap(err, "failed to encode bundle metadata")
	}

	if err := zw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize bundle archive")
	}
	return nil
}

func copyInto(dst io.Writer, srcPath string) error {
	src, err := os.Open(srcPath) //nolint:gosec // cache files only
	if err != nil {
		return zerr.Wrap(err, "failed to open cache file")
	}
	defer src.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(dst, src); err != nil {
		return zerr.Wrap(err, "failed to copy cache file into archive")
	}
	return nil
}
