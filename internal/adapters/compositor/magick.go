package compositor

import (
	"fmt"
	"os/exec"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"go.trai.ch/zerr"
)

// Magick composites images by shelling out to the ImageMagick `magick`
// binary. Requires ImageMagick 7 on PATH.
type Magick struct {
	binary string
}

var _ ports.Compositor = (*Magick)(nil)

// NewMagick creates the external-tool compositor backend.
func NewMagick() *Magick {
	return &Magick{binary: "magick"}
}

// CompositeTech resizes the icon to 64x64 and overlays the 16x16 tech-tier
// badge at the origin.
func (m *Magick) CompositeTech(iconPath, techPath, outPath string) error {
	return m.run(
		iconPath,
		"-resize", fmt.Sprintf("%dx%d", iconSize, iconSize),
		"(", techPath, "-resize", fmt.Sprintf("%dx%d!", techSize, techSize), ")",
		"-composite",
		outPath,
	)
}

// CompositeBlueprint layers the icon over the background, additively blends
// the decoration overlay, then applies the optional tech badge.
func (m *Magick) CompositeBlueprint(backgroundPath, overlayPath, iconPath, techPath, outPath string) error {
	args := []string{
		backgroundPath,
		iconPath,
		"-resize", fmt.Sprintf("%dx%d", iconSize, iconSize),
		"-composite",
		"-compose", "plus",
		overlayPath,
	}
	if techPath != "" {
		args = append(args,
			"-composite",
			"-compose", "over",
			"(", techPath, "-resize", fmt.Sprintf("%dx%d!", techSize, techSize), ")",
		)
	}
	args = append(args, "-composite", outPath)
	return m.run(args...)
}

// Convert copies src to dst, re-encoding via ImageMagick when the extensions
// differ.
func (m *Magick) Convert(srcPath, dstPath string) error {
	if sameFormat(srcPath, dstPath) {
		return copyFile(srcPath, dstPath)
	}
	return m.run(srcPath, dstPath)
}

func (m *Magick) run(args ...string) error {
	cmd := exec.Command(m.binary, args...) //nolint:gosec // fixed binary, arguments are file paths
	output, err := cmd.CombinedOutput()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "image magick invocation failed"), "output", string(output))
	}
	return nil
}
