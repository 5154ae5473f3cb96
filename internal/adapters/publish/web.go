package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// LinkIndexFilename is the state file WebDir keeps in its output directory to
// diff against on the next run.
const LinkIndexFilename = "link_index.json"

// WebDir synchronizes a browsable directory tree with the icon cache. Each
// type gets a subdirectory with one link per variant and a small manifest;
// a top-level manifest lists all types. Links point into the cache via the
// configured Linker. The previous run's state is kept in a link index so a
// run over unchanged data touches nothing.
type WebDir struct {
	Out    string
	Linker Linker
	log    ports.Logger
}

// NewWebDir returns a web directory publisher writing to out.
func NewWebDir(out string, linker Linker, log ports.Logger) *WebDir {
	return &WebDir{Out: out, Linker: linker, log: log}
}

// linkIndex records what the previous run placed: link targets by relative
// path, and manifest content digests by relative path.
type linkIndex struct {
	Links     map[string]string `json:"links"`
	Manifests map[string]string `json:"manifests"`
}

func (p *WebDir) Publish(ctx context.Context, state *domain.ExportState) error {
	if err := os.MkdirAll(p.Out, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}

	old, err := p.readIndex()
	if err != nil {
		return err
	}

	links, manifests := p.desired(state)

	placed, removed := 0, 0
	for _, rel := range sortedKeys(links) {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "directory sync cancelled")
		}
		src := links[rel]
		if old.Links[rel] == src {
			continue
		}
		dst := filepath.Join(p.Out, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create type directory"), "path", rel)
		}
		if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to replace stale link"), "path", rel)
		}
		if err := p.Linker.Place(filepath.Join(state.CacheDir, src), dst); err != nil {
			return zerr.With(err, "path", rel)
		}
		placed++
	}
	for _, rel := range sortedKeys(old.Links) {
		if _, ok := links[rel]; ok {
			continue
		}
		if err := p.removeEntry(rel); err != nil {
			return err
		}
		removed++
	}

	for _, rel := range sortedKeys(manifests) {
		content := manifests[rel]
		if old.Manifests[rel] == digestOf(content) {
			continue
		}
		dst := filepath.Join(p.Out, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create type directory"), "path", rel)
		}
		if err := os.WriteFile(dst, []byte(content), 0o644); err != nil { //nolint:gosec // public manifest
			return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", rel)
		}
	}
	for _, rel := range sortedKeys(old.Manifests) {
		if _, ok := manifests[rel]; ok {
			continue
		}
		if err := p.removeEntry(rel); err != nil {
			return err
		}
	}

	if err := p.writeIndex(links, manifests); err != nil {
		return err
	}
	p.log.Info(fmt.Sprintf("synchronized web directory (%s, %d placed, %d removed): %s", p.Linker.Name(), placed, removed, p.Out))
	return nil
}

// desired computes the link and manifest sets for the current export state.
func (p *WebDir) desired(state *domain.ExportState) (links, manifests map[string]string) {
	links = make(map[string]string)
	manifests = make(map[string]string)

	typeIDs := state.Metadata.SortedTypeIDs()
	for _, typeID := range typeIDs {
		kinds := state.Metadata[typeID]
		entry := make(map[string]string, len(kinds))
		for _, kind := range domain.Kinds() {
			cached, ok := kinds[kind]
			if !ok {
				continue
			}
			name := kind.Tag() + kind.Ext()
			links[filepath.Join(strconv.Itoa(int(typeID)), name)] = cached
			entry[kind.Tag()] = name
		}
		manifests[filepath.Join(strconv.Itoa(int(typeID)), "index.json")] = mustJSON(entry)
	}
	manifests["index.json"] = mustJSON(map[string]any{"types": typeIDs})
	return links, manifests
}

func (p *WebDir) removeEntry(rel string) error {
	dst := filepath.Join(p.Out, rel)
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove stale entry"), "path", rel)
	}
	// Drop the per-type directory once its last entry is gone.
	_ = os.Remove(filepath.Dir(dst))
	return nil
}

func (p *WebDir) readIndex() (linkIndex, error) {
	idx := linkIndex{Links: map[string]string{}, Manifests: map[string]string{}}
	data, err := os.ReadFile(filepath.Join(p.Out, LinkIndexFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return idx, zerr.Wrap(err, "failed to read link index")
	}
	if err := json.Unmarshal(data, &idx); err != nil {
		return idx, zerr.Wrap(err, "failed to parse link index")
	}
	if idx.Links == nil {
		idx.Links = map[string]string{}
	}
	if idx.Manifests == nil {
		idx.Manifests = map[string]string{}
	}
	return idx, nil
}

func (p *WebDir) writeIndex(links, manifests map[string]string) error {
	idx := linkIndex{Links: links, Manifests: make(map[string]string, len(manifests))}
	for rel, content := range manifests {
		idx.Manifests[rel] = digestOf(content)
	}
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode link index")
	}
	if err := os.WriteFile(filepath.Join(p.Out, LinkIndexFilename), data, 0o644); err != nil { //nolint:gosec // public state file
		return zerr.Wrap(err, "failed to write link index")
	}
	return nil
}

func digestOf(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
