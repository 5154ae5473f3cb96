package ports

//go:generate mockgen -source=compositor.go -destination=mocks/mock_compositor.go -package=mocks

// Compositor assembles final icon images from source resource files. It has
// no knowledge of item semantics; callers pass resolved local paths. Any
// failure is fatal for the run, never a silent partial output.
type Compositor interface {
	// CompositeTech resizes the icon to 64x64 and overlays the 16x16
	// tech-tier badge at the origin.
	CompositeTech(iconPath, techPath, outPath string) error
	// CompositeBlueprint layers the icon (resized to 64x64) over the
	// background, additively blends the decoration overlay, then applies the
	// optional tech badge. techPath may be empty.
	CompositeBlueprint(backgroundPath, overlayPath, iconPath, techPath, outPath string) error
	// Convert copies src to dst, re-encoding when the file extensions differ.
	Convert(srcPath, dstPath string) error
}
