package ports

//go:generate mockgen -source=content_cache.go -destination=mocks/mock_content_cache.go -package=mocks

// ContentCache is the content-addressed icon cache: a directory of files whose
// names derive from their input hashes, plus the persisted index of the last
// completed run.
type ContentCache interface {
	// IsUpToDate registers filename into the current run's set and reports
	// whether the existing cache file can be reused. Callers must invoke this
	// exactly once per live filename, whether or not they rebuild it.
	IsUpToDate(filename string) bool
	// FilePath returns the on-disk path for a cache filename.
	FilePath(filename string) string
	// Dir returns the cache directory.
	Dir() string
	// Files returns the current run's filenames, sorted.
	Files() []string
	// Added returns filenames present this run but absent from the persisted
	// index.
	Added() []string
	// Removed returns filenames in the persisted index that this run no
	// longer produces.
	Removed() []string
	// Persist writes the current set as the new index. Called exactly once,
	// after every type has been processed.
	Persist() error
	// SweepRemoved deletes stale cache files. Only valid after Persist.
	SweepRemoved(log Logger) error
}
