// Package iconbuild implements the icon classification and build engine: it
// decides which icon variants each item type gets, derives content-addressed
// cache filenames for them, and drives the compositor for stale entries.
package iconbuild

import (
	"fmt"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports"
	"go.trai.ch/zerr"
)

// Blueprint-style backgrounds and their additive corner decorations. The
// reaction background reuses the blueprint-original decoration; there is no
// dedicated reaction overlay in the client resources.
const (
	bpoBackground      = "res:/ui/texture/icons/bpo.png"
	bpcBackground      = "res:/ui/texture/icons/bpc.png"
	relicBackground    = "res:/ui/texture/icons/relic.png"
	reactionBackground = "res:/ui/texture/icons/reaction.png"

	bpoOverlay   = "res:/ui/texture/icons/bpo_overlay.png"
	bpcOverlay   = "res:/ui/texture/icons/bpc_overlay.png"
	relicOverlay = "res:/ui/texture/icons/relic_overlay.png"
)

// skinIconKey returns the resource key for a skin material's icon.
func skinIconKey(materialID int32) string {
	return fmt.Sprintf("res:/ui/texture/classes/skins/icons/%d.png", materialID)
}

// Classifier maps one item type to the icon variants it gets. All lookups are
// read-only; a Classifier is safe for concurrent use.
type Classifier struct {
	data  *domain.IconBuildData
	rules *domain.RuleSet
	store ports.ResourceStore
	log   ports.Logger
}

// NewClassifier returns a classifier over one run's build data.
func NewClassifier(data *domain.IconBuildData, rules *domain.RuleSet, store ports.ResourceStore, log ports.Logger) *Classifier {
	return &Classifier{data: data, rules: rules, store: store, log: log}
}

// Classify produces the variants for one type, or none when the type has no
// icon. A group without a category or an icon id without a file entry means
// the data export is inconsistent and fails the run; a resource key that the
// store simply doesn't carry is logged and skipped.
func (c *Classifier) Classify(typeID int32, info domain.TypeInfo) ([]domain.Variant, error) {
	categoryID, ok := c.data.GroupCategories[info.GroupID]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownGroup, "classify type"), "type_id", typeID), "group_id", info.GroupID)
	}

	if info.IconID == 0 && info.GraphicID == 0 && categoryID != domain.CategorySkin {
		return nil, nil
	}

	switch categoryID {
	case domain.CategoryBlueprint, domain.CategoryReaction:
		return c.classifyBlueprint(typeID, info, categoryID)
	case domain.CategorySkin:
		return c.classifySkin(typeID), nil
	default:
		return c.classifyRegular(typeID, info)
	}
}

// classifyBlueprint handles blueprint and reaction categories. Modern
// blueprint art ships pre-rendered in the graphic folder; older types fall
// back to compositing the flat icon over a background.
func (c *Classifier) classifyBlueprint(typeID int32, info domain.TypeInfo, categoryID int32) ([]domain.Variant, error) {
	tech := c.rules.TechOverlayFor(info.MetaGroupID)

	if folder, ok := c.data.GraphicFolders[info.GraphicID]; ok && !c.rules.FlatIconGroups[info.GroupID] {
		bpKey := fmt.Sprintf("%s/%d_64_bp.png", folder, info.GraphicID)
		if c.store.HasResource(bpKey) {
			variants := []domain.Variant{{
				Kinds: []domain.IconKind{domain.KindIcon, domain.KindBlueprint},
				Recipe: domain.Recipe{
					Op:          domain.OpTechComposite,
					Tag:         "bp",
					Source:      bpKey,
					TechOverlay: tech,
					Ext:         ".png",
				},
			}}
			bpcKey := fmt.Sprintf("%s/%d_64_bpc.png", folder, info.GraphicID)
			if c.store.HasResource(bpcKey) {
				variants = append(variants, domain.Variant{
					Kinds: []domain.IconKind{domain.KindBlueprintCopy},
					Recipe: domain.Recipe{
						Op:          domain.OpTechComposite,
						Tag:         "bpc",
						Source:      bpcKey,
						TechOverlay: tech,
						Ext:         ".png",
					},
				})
			}
			return variants, nil
		}
	}

	if info.IconID == 0 {
		return nil, nil
	}
	iconKey, ok := c.data.IconFiles[info.IconID]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownIcon, "classify type"), "type_id", typeID), "icon_id", info.IconID)
	}
	if !c.store.HasResource(iconKey) {
		c.log.Warn(fmt.Sprintf("icon resource missing from store, skipping type %d: %s", typeID, iconKey))
		return nil, nil
	}

	switch {
	case categoryID == domain.CategoryReaction:
		return []domain.Variant{{
			Kinds: []domain.IconKind{domain.KindIcon, domain.KindRelic},
			Recipe: domain.Recipe{
				Op:          domain.OpBlueprintComposite,
				Tag:         "relic",
				Source:      iconKey,
				Background:  relicBackground,
				Overlay:     relicOverlay,
				TechOverlay: tech,
				Ext:         ".png",
			},
		}}, nil
	case c.rules.ReactionGroups[info.GroupID]:
		return []domain.Variant{{
			Kinds: []domain.IconKind{domain.KindIcon, domain.KindReaction, domain.KindBlueprint},
			Recipe: domain.Recipe{
				Op:          domain.OpBlueprintComposite,
				Tag:         "reaction",
				Source:      iconKey,
				Background:  reactionBackground,
				Overlay:     bpoOverlay,
				TechOverlay: tech,
				Ext:         ".png",
			},
		}}, nil
	default:
		return []domain.Variant{
			{
				Kinds: []domain.IconKind{domain.KindIcon, domain.KindBlueprint},
				Recipe: domain.Recipe{
					Op:          domain.OpBlueprintComposite,
					Tag:         "bpo",
					Source:      iconKey,
					Background:  bpoBackground,
					Overlay:     bpoOverlay,
					TechOverlay: tech,
					Ext:         ".png",
				},
			},
			{
				Kinds: []domain.IconKind{domain.KindBlueprintCopy},
				Recipe: domain.Recipe{
					Op:          domain.OpBlueprintComposite,
					Tag:         "bpc",
					Source:      iconKey,
					Background:  bpcBackground,
					Overlay:     bpcOverlay,
					TechOverlay: tech,
					Ext:         ".png",
				},
			},
		}, nil
	}
}

// classifySkin resolves a skin license to its material icon. Licenses
// referencing skins absent from the current data are expected and yield
// nothing.
func (c *Classifier) classifySkin(typeID int32) []domain.Variant {
	materialID, ok := c.data.SkinMaterials[typeID]
	if !ok {
		return nil
	}
	key := skinIconKey(materialID)
	if !c.store.HasResource(key) {
		c.log.Warn(fmt.Sprintf("skin material icon missing from store, skipping type %d: %s", typeID, key))
		return nil
	}
	return []domain.Variant{{
		Kinds: []domain.IconKind{domain.KindIcon},
		Recipe: domain.Recipe{
			Op:     domain.OpCopy,
			Tag:    "icon",
			Source: key,
			Ext:    ".png",
		},
	}}
}

// classifyRegular handles every other category: prefer the rendered 64x64
// from the graphic folder, fall back to the flat icon, and add a 512x512
// render variant when the folder carries one.
func (c *Classifier) classifyRegular(typeID int32, info domain.TypeInfo) ([]domain.Variant, error) {
	tech := c.rules.TechOverlayFor(info.MetaGroupID)
	folder, hasFolder := c.data.GraphicFolders[info.GraphicID]

	var variants []domain.Variant

	source := ""
	if hasFolder {
		key := fmt.Sprintf("%s/%d_64.png", folder, info.GraphicID)
		if c.store.HasResource(key) && !c.rules.FlatIconGroups[info.GroupID] {
			source = key
		}
	}
	if source == "" && info.IconID != 0 {
		iconKey, ok := c.data.IconFiles[info.IconID]
		if !ok {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownIcon, "classify type"), "type_id", typeID), "icon_id", info.IconID)
		}
		if c.store.HasResource(iconKey) {
			source = iconKey
		} else {
			c.log.Warn(fmt.Sprintf("icon resource missing from store, skipping type %d: %s", typeID, iconKey))
		}
	}

	if source == "" {
		// No 64px art at all: a render on its own is never published.
		return nil, nil
	}

	op, tag := domain.OpCopy, "icon"
	if tech != "" {
		op = domain.OpTechComposite
	}
	variants = append(variants, domain.Variant{
		Kinds: []domain.IconKind{domain.KindIcon},
		Recipe: domain.Recipe{
			Op:          op,
			Tag:         tag,
			Source:      source,
			TechOverlay: tech,
			Ext:         ".png",
		},
	})

	if hasFolder {
		renderKey := fmt.Sprintf("%s/%d_512.jpg", folder, info.GraphicID)
		if c.store.HasResource(renderKey) {
			variants = append(variants, domain.Variant{
				Kinds: []domain.IconKind{domain.KindRender},
				Recipe: domain.Recipe{
					Op:     domain.OpCopy,
					Tag:    "render",
					Source: renderKey,
					Ext:    ".jpg",
				},
			})
		}
	}

	return variants, nil
}
