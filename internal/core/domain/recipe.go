package domain

import "strings"

// CacheKeySeparator joins cache-key components into a filename. Resource
// hashes are hex strings and variant tags are fixed words, so the separator
// cannot occur inside a component.
const CacheKeySeparator = ";"

// CacheKey is the ordered component tuple a cache filename derives from: a
// variant tag followed by the content hash of every resource the recipe
// consults. Identical keys always name identical visual results, regardless
// of which type id produced them.
type CacheKey struct {
	Components []string
	Ext        string
}

// Filename is the canonical serialization of the key.
func (k CacheKey) Filename() string {
	return strings.Join(k.Components, CacheKeySeparator) + k.Ext
}

// RecipeOp selects the compositing procedure for a recipe.
type RecipeOp int

const (
	// OpCopy copies the source resource, re-encoding if the format differs.
	OpCopy RecipeOp = iota
	// OpTechComposite resizes the source to 64x64 and overlays the 16x16
	// tech-tier badge at the origin.
	OpTechComposite
	// OpBlueprintComposite layers the source icon over a background, blends
	// the decoration overlay additively, then applies the optional tech badge.
	OpBlueprintComposite
)

// Recipe describes how to produce one cache file from store resources. Which
// fields are meaningful depends on Op; Source is always set.
type Recipe struct {
	Op  RecipeOp
	Tag string // variant tag, first cache-key component

	Source      string // primary icon resource
	Background  string // OpBlueprintComposite: 64x64 background resource
	Overlay     string // OpBlueprintComposite: additive decoration resource
	TechOverlay string // tech-tier badge resource, empty when none
	Ext         string // target extension including the dot
}

// Key builds the recipe's cache key using hashOf to resolve resource content
// hashes. Component order is fixed: tag, background, overlay, source, tech
// overlay. Blueprint composites keep constant arity by emitting an empty
// component for an absent tech overlay; the other ops simply omit it.
func (r Recipe) Key(hashOf func(resource string) (string, error)) (CacheKey, error) {
	components := []string{r.Tag}

	if r.Op == OpBlueprintComposite {
		for _, res := range []string{r.Background, r.Overlay} {
			hash, err := hashOf(res)
			if err != nil {
				return CacheKey{}, err
			}
			components = append(components, hash)
		}
	}

	hash, err := hashOf(r.Source)
	if err != nil {
		return CacheKey{}, err
	}
	components = append(components, hash)

	if r.TechOverlay != "" {
		hash, err := hashOf(r.TechOverlay)
		if err != nil {
			return CacheKey{}, err
		}
		components = append(components, hash)
	} else if r.Op == OpBlueprintComposite {
		components = append(components, "")
	}

	return CacheKey{Components: components, Ext: r.Ext}, nil
}

// Variant pairs the icon kinds a recipe serves with the recipe itself. A
// single cache file can back several kinds of the same type, such as Icon and
// Blueprint for graphic-folder blueprints.
type Variant struct {
	Kinds  []IconKind
	Recipe Recipe
}
