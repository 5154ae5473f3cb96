package compositor

import (
	"image"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"github.com/disintegration/imaging"
	"go.trai.ch/zerr"
)

// Native composites images in-process using the imaging library with Lanczos
// resampling, matching the external ImageMagick backend.
type Native struct{}

var _ ports.Compositor = (*Native)(nil)

// NewNative creates the in-process compositor backend.
func NewNative() *Native {
	return &Native{}
}

// CompositeTech resizes the icon to 64x64 and overlays the 16x16 tech-tier
// badge at the origin.
func (n *Native) CompositeTech(iconPath, techPath, outPath string) error {
	icon, err := openResized(iconPath, iconSize)
	if err != nil {
		return err
	}
	badge, err := openResized(techPath, techSize)
	if err != nil {
		return err
	}

	out := imaging.Overlay(icon, badge, image.Pt(0, 0), 1.0)
	return save(out, outPath)
}

// CompositeBlueprint layers the icon over the background, additively blends
// the decoration overlay, then applies the optional tech badge.
func (n *Native) CompositeBlueprint(backgroundPath, overlayPath, iconPath, techPath, outPath string) error {
	background, err := open(backgroundPath)
	if err != nil {
		return err
	}
	icon, err := openResized(iconPath, iconSize)
	if err != nil {
		return err
	}
	overlay, err := open(overlayPath)
	if err != nil {
		return err
	}

	out := imaging.Overlay(background, icon, image.Pt(0, 0), 1.0)
	blendAdd(out, overlay)

	if techPath != "" {
		badge, err := openResized(techPath, techSize)
		if err != nil {
			return err
		}
		out = imaging.Overlay(out, badge, image.Pt(0, 0), 1.0)
	}

	return save(out, outPath)
}

// Convert copies src to dst, re-encoding when the extensions differ.
func (n *Native) Convert(srcPath, dstPath string) error {
	if sameFormat(srcPath, dstPath) {
		return copyFile(srcPath, dstPath)
	}
	img, err := open(srcPath)
	if err != nil {
		return err
	}
	return save(img, dstPath)
}

func open(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode image"), "path", path)
	}
	return imaging.Clone(img), nil
}

// openResized decodes and resizes to a square of the given size, ignoring the
// source aspect ratio.
func openResized(path string, size int) (*image.NRGBA, error) {
	img, err := open(path)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}

func save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode image"), "path", path)
	}
	return nil
}

// blendAdd merges overlay into base with per-channel saturating addition,
// scaled by the overlay's alpha. Used to punch highlight decorations through
// a blueprint background.
func blendAdd(base *image.NRGBA, overlay *image.NRGBA) {
	bounds := base.Bounds().Intersect(overlay.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			bi := base.PixOffset(x, y)
			oi := overlay.PixOffset(x, y)
			alpha := uint32(overlay.Pix[oi+3])
			for c := 0; c < 3; c++ {
				sum := uint32(base.Pix[bi+c]) + uint32(overlay.Pix[oi+c])*alpha/0xff
				if sum > 0xff {
					sum = 0xff
				}
				base.Pix[bi+c] = uint8(sum)
			}
		}
	}
}
