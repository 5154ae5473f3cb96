package domain

// OutputKind selects which publisher materializes the cache after a build.
type OutputKind int

const (
	// OutputServiceBundle produces a zip of every cache file plus the service
	// metadata document.
	OutputServiceBundle OutputKind = iota
	// OutputIEC produces the legacy bulk export zip with per-type filenames.
	OutputIEC
	// OutputWeb synchronizes a web directory of per-type manifests and links.
	OutputWeb
	// OutputChecksum emits a digest over the index, for cheap change checks.
	OutputChecksum
)

// OutputMode is the publisher selection for a run, chosen once and immutable.
type OutputMode struct {
	Kind OutputKind
	// Out is the target path: archive file, directory, or checksum file.
	// For OutputChecksum an empty Out prints the digest to standard output.
	Out string
	// CopyFiles makes the web publisher copy cache files instead of linking.
	CopyFiles bool
	// HardLink makes the web publisher hard-link instead of symlinking.
	HardLink bool
}
