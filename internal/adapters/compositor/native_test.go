package compositor_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/adapters/compositor"
)

// writePNG writes a uniformly colored square to dir and returns its path.
func writePNG(t *testing.T, dir, name string, size int, fill color.NRGBA) string {
	t.Helper()
	img := imaging.New(size, size, fill)
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(img, path))
	return path
}

func loadImage(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	img, err := imaging.Open(path)
	require.NoError(t, err)
	return imaging.Clone(img)
}

func TestNative_CompositeTech(t *testing.T) {
	dir := t.TempDir()
	icon := writePNG(t, dir, "icon.png", 128, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	badge := writePNG(t, dir, "badge.png", 32, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	out := filepath.Join(dir, "out.png")

	require.NoError(t, compositor.NewNative().CompositeTech(icon, badge, out))

	result := loadImage(t, out)
	assert.Equal(t, 64, result.Bounds().Dx())
	assert.Equal(t, 64, result.Bounds().Dy())

	// Badge covers the origin, icon shows through elsewhere.
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, result.NRGBAAt(4, 4))
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 255, A: 255}, result.NRGBAAt(40, 40))
}

func TestNative_CompositeBlueprint(t *testing.T) {
	dir := t.TempDir()
	background := writePNG(t, dir, "bg.png", 64, color.NRGBA{R: 0, G: 0, B: 100, A: 255})
	// Transparent icon so the background stays visible for the blend check.
	icon := writePNG(t, dir, "icon.png", 64, color.NRGBA{})
	overlay := writePNG(t, dir, "overlay.png", 64, color.NRGBA{R: 50, G: 60, B: 200, A: 255})
	out := filepath.Join(dir, "out.png")

	require.NoError(t, compositor.NewNative().CompositeBlueprint(background, overlay, icon, "", out))

	result := loadImage(t, out)
	assert.Equal(t, 64, result.Bounds().Dx())

	// Additive blend: channels sum and saturate at 255, alpha is kept.
	assert.Equal(t, color.NRGBA{R: 50, G: 60, B: 255, A: 255}, result.NRGBAAt(32, 32))
}

func TestNative_CompositeBlueprintWithTech(t *testing.T) {
	dir := t.TempDir()
	background := writePNG(t, dir, "bg.png", 64, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	icon := writePNG(t, dir, "icon.png", 64, color.NRGBA{})
	overlay := writePNG(t, dir, "overlay.png", 64, color.NRGBA{A: 255})
	badge := writePNG(t, dir, "badge.png", 16, color.NRGBA{R: 255, G: 255, B: 0, A: 255})
	out := filepath.Join(dir, "out.png")

	require.NoError(t, compositor.NewNative().CompositeBlueprint(background, overlay, icon, badge, out))

	result := loadImage(t, out)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 0, A: 255}, result.NRGBAAt(4, 4))
	assert.Equal(t, color.NRGBA{R: 10, G: 10, B: 10, A: 255}, result.NRGBAAt(40, 40))
}

func TestNative_ConvertSameFormatCopies(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "src.png", 8, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	dst := filepath.Join(dir, "dst.png")

	require.NoError(t, compositor.NewNative().Convert(src, dst))

	assert.Equal(t, loadImage(t, src), loadImage(t, dst))
}

func TestNative_ConvertReencodes(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "src.png", 8, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	dst := filepath.Join(dir, "dst.jpg")

	require.NoError(t, compositor.NewNative().Convert(src, dst))

	result := loadImage(t, dst)
	assert.Equal(t, 8, result.Bounds().Dx())
}

func TestNative_MissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	err := compositor.NewNative().CompositeTech(filepath.Join(dir, "absent.png"), filepath.Join(dir, "absent.png"), filepath.Join(dir, "out.png"))
	assert.Error(t, err)
}
