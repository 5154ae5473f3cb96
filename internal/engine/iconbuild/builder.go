package iconbuild

import (
	"context"
	"fmt"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder drives one icon build: classify every type, derive cache filenames,
// composite whatever is stale, and settle the cache index.
type Builder struct {
	data  *domain.IconBuildData
	rules *domain.RuleSet
	store ports.ResourceStore
	cache ports.ContentCache
	comp  ports.Compositor
	log   ports.Logger
}

// NewBuilder assembles a builder for one run.
func NewBuilder(
	data *domain.IconBuildData,
	rules *domain.RuleSet,
	store ports.ResourceStore,
	cache ports.ContentCache,
	comp ports.Compositor,
	log ports.Logger,
) *Builder {
	return &Builder{data: data, rules: rules, store: store, cache: cache, comp: comp, log: log}
}

// Run processes every type in ascending id order and returns the resulting
// export state. The index is persisted only after all types succeed, and
// stale files are swept only after the index is persisted, so an aborted run
// leaves the prior cache fully intact.
func (b *Builder) Run(ctx context.Context) (*domain.ExportState, error) {
	classifier := NewClassifier(b.data, b.rules, b.store, b.log)
	metadata := make(domain.ServiceMetadata)

	composited, reused := 0, 0
	for _, typeID := range b.data.SortedTypeIDs() {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "icon build cancelled")
		}

		variants, err := classifier.Classify(typeID, b.data.Types[typeID])
		if err != nil {
			return nil, err
		}

		for _, variant := range variants {
			key, err := variant.Recipe.Key(b.store.HashOf)
			if err != nil {
				return nil, zerr.With(err, "type_id", typeID)
			}
			filename := key.Filename()

			if b.cache.IsUpToDate(filename) {
				reused++
			} else {
				if err := b.execute(variant.Recipe, b.cache.FilePath(filename)); err != nil {
					return nil, zerr.With(zerr.With(err, "type_id", typeID), "file", filename)
				}
				composited++
			}

			for _, kind := range variant.Kinds {
				metadata.Set(typeID, kind, filename)
			}
		}
	}

	if err := b.cache.Persist(); err != nil {
		return nil, err
	}

	state := &domain.ExportState{
		CacheDir: b.cache.Dir(),
		Files:    b.cache.Files(),
		Metadata: metadata,
		Added:    len(b.cache.Added()),
		Removed:  len(b.cache.Removed()),
	}

	if err := b.cache.SweepRemoved(b.log); err != nil {
		return nil, err
	}

	b.log.Info(fmt.Sprintf(
		"icon build complete: %d files (%d composited, %d reused, %d added, %d removed)",
		len(state.Files), composited, reused, state.Added, state.Removed,
	))
	return state, nil
}

// execute materializes one recipe at outPath. Every consulted resource is
// resolved through the store, which downloads on demand.
func (b *Builder) execute(recipe domain.Recipe, outPath string) error {
	srcPath, err := b.store.PathOf(recipe.Source)
	if err != nil {
		return err
	}

	techPath := ""
	if recipe.TechOverlay != "" {
		techPath, err = b.store.PathOf(recipe.TechOverlay)
		if err != nil {
			return err
		}
	}

	switch recipe.Op {
	case domain.OpCopy:
		return b.comp.Convert(srcPath, outPath)
	case domain.OpTechComposite:
		if techPath == "" {
			return b.comp.Convert(srcPath, outPath)
		}
		return b.comp.CompositeTech(srcPath, techPath, outPath)
	case domain.OpBlueprintComposite:
		bgPath, err := b.store.PathOf(recipe.Background)
		if err != nil {
			return err
		}
		overlayPath, err := b.store.PathOf(recipe.Overlay)
		if err != nil {
			return err
		}
		return b.comp.CompositeBlueprint(bgPath, overlayPath, srcPath, techPath, outPath)
	default:
		return zerr.With(zerr.New("unhandled recipe operation"), "op", int(recipe.Op))
	}
}
