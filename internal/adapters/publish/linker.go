package publish

import (
	"os"
	"path/filepath"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"go.trai.ch/zerr"
)

// Linker places a cached file at a destination path. Implementations trade
// disk usage against portability: symlinks are free but need a filesystem
// that supports them, hardlinks need the cache and output on one volume,
// copies always work.
type Linker interface {
	Place(src, dst string) error
	Name() string
}

// LinkerFor selects the link strategy for a web directory output mode.
func LinkerFor(mode domain.OutputMode) Linker {
	switch {
	case mode.CopyFiles:
		return copyLinker{}
	case mode.HardLink:
		return hardLinker{}
	default:
		return symLinker{}
	}
}

type symLinker struct{}

func (symLinker) Name() string { return "symlink" }

func (symLinker) Place(src, dst string) error {
	abs, err := filepath.Abs(src)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve cache file path")
	}
	if err := os.Symlink(abs, dst); err != nil {
		return zerr.Wrap(err, "failed to create symlink")
	}
	return nil
}

type hardLinker struct{}

func (hardLinker) Name() string { return "hardlink" }

func (hardLinker) Place(src, dst string) error {
	if err := os.Link(src, dst); err != nil {
		return zerr.Wrap(err, "failed to create hardlink")
	}
	return nil
}

type copyLinker struct{}

func (copyLinker) Name() string { return "copy" }

func (copyLinker) Place(src, dst string) error {
	return copyFile(src, dst)
}
