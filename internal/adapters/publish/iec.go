package publish

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"go.trai.ch/zerr"
)

// IEC writes the legacy "Image Export Collection" archive layout: one entry
// per type and variant, named after the type id. Types sharing a cached file
// get their bytes duplicated; legacy consumers expect plain per-type entries.
type IEC struct {
	Out string
	log ports.Logger
}

// NewIEC returns an IEC archive publisher writing to out.
func NewIEC(out string, log ports.Logger) *IEC {
	return &IEC{Out: out, log: log}
}

// iecEntryName returns the archive entry name for a type's variant, or ""
// for variants the legacy layout doesn't carry.
func iecEntryName(typeID int32, kind domain.IconKind) string {
	switch kind {
	case domain.KindIcon:
		return fmt.Sprintf("%d_64.png", typeID)
	case domain.KindBlueprintCopy:
		return fmt.Sprintf("%d_bpc_64.png", typeID)
	case domain.KindRender:
		return fmt.Sprintf("%d_512.jpg", typeID)
	default:
		return ""
	}
}

// Publish writes the archive, assembling it in a temp file and renaming it
// into place once complete.
func (p *IEC) Publish(ctx context.Context, state *domain.ExportState) error {
	tmp, err := os.CreateTemp(filepath.Dir(p.Out), ".iec-*.zip")
	if err != nil {
		return zerr.Wrap(err, "failed to create archive temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Best effort cleanup

	if err := p.write(ctx, tmp, state); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to flush archive temp file")
	}
	if err := os.Rename(tmpName, p.Out); err != nil {
		return zerr.Wrap(err, "failed to move archive into place")
	}
	p.log.Info("wrote image export collection: " + p.Out)
	return nil
}

func (p *IEC) write(ctx context.Context, w io.Writer, state *domain.ExportState) error {
	zw := zip.NewWriter(w)

	for _, typeID := range state.Metadata.SortedTypeIDs() {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "archive write cancelled")
		}
		kinds := state.Metadata[typeID]
		for _, kind := range domain.Kinds() {
			cached, ok := kinds[kind]
			if !ok {
				continue
			}
			name := iecEntryName(typeID, kind)
			if name == "" {
				continue
			}
			entry, err := zw.CreateHeader(&zip.FileHeader{
				Name:   name,
				Method: zip.Store,
			})
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create archive entry"), "entry", name)
			}
			if err := copyInto(entry, filepath.Join(state.CacheDir, cached)); err != nil {
				return zerr.With(err, "entry", name)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize archive")
	}
	return nil
}
