// Package iconcache implements the content-addressed icon cache: a directory
// of image files whose names derive from their input hashes, plus a persisted
// index of which files the last completed run produced.
package iconcache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"go.trai.ch/zerr"
)

// IndexFilename is the flat index record inside the cache directory.
const IndexFilename = "cache_index.txt"

// Cache tracks the old (persisted) and new (current run) filename sets.
// Because filenames are pure functions of their input hashes, membership in
// the old set is the entire freshness check.
type Cache struct {
	dir          string
	forceRebuild bool

	mu      sync.Mutex
	old     map[string]bool
	current map[string]bool
}

// Open loads the persisted index from dir, creating the directory if needed.
// A corrupt index is fatal: the prior cache state cannot be trusted.
func Open(dir string, forceRebuild bool) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create icon cache directory")
	}

	c := &Cache{
		dir:          dir,
		forceRebuild: forceRebuild,
		old:          make(map[string]bool),
		current:      make(map[string]bool),
	}

	data, err := os.ReadFile(filepath.Join(dir, IndexFilename)) //nolint:gosec // path is the configured cache directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, zerr.Wrap(err, "failed to read cache index")
	}

	entries, err := domain.DecodeIndex(data)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		c.old[entry] = true
	}
	return c, nil
}

// IsUpToDate registers filename into the current run's set and reports
// whether the existing cache file can be reused. A filename already
// registered this run was materialized by an identical recipe and is always
// reusable, even under a forced rebuild.
func (c *Cache) IsUpToDate(filename string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current[filename] {
		return true
	}
	c.current[filename] = true
	return c.old[filename] && !c.forceRebuild
}

// FilePath returns the on-disk path for a cache filename.
func (c *Cache) FilePath(filename string) string {
	return filepath.Join(c.dir, filename)
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Files returns the current run's filenames, sorted.
func (c *Cache) Files() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	files := make([]string, 0, len(c.current))
	for name := range c.current {
		files = append(files, name)
	}
	sort.Strings(files)
	return files
}

// Added returns the filenames present this run but absent from the persisted
// index.
func (c *Cache) Added() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var added []string
	for name := range c.current {
		if !c.old[name] {
			added = append(added, name)
		}
	}
	sort.Strings(added)
	return added
}

// Removed returns the filenames in the persisted index that this run no
// longer produces.
func (c *Cache) Removed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var removed []string
	for name := range c.old {
		if !c.current[name] {
			removed = append(removed, name)
		}
	}
	sort.Strings(removed)
	return removed
}

// Persist writes the current set as the new index. Called exactly once, after
// every type has been processed; a run that fails earlier leaves the prior
// index authoritative.
func (c *Cache) Persist() error {
	data := domain.EncodeIndex(c.Files())
	if err := os.WriteFile(filepath.Join(c.dir, IndexFilename), data, 0o644); err != nil { //nolint:gosec // index lists public filenames
		return zerr.Wrap(err, "failed to write cache index")
	}
	return nil
}

// SweepRemoved deletes stale cache files. Run only after Persist, never
// mid-run: entries may be shared by types processed later in the same pass.
func (c *Cache) SweepRemoved(log ports.Logger) error {
	for _, name := range c.Removed() {
		log.Info("removing stale cache file: " + name)
		if err := os.Remove(c.FilePath(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(err, "failed to remove stale cache file")
		}
	}
	return nil
}
