package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

// hashByKey returns a hash function resolving from a fixed table.
func hashByKey(hashes map[string]string) func(string) (string, error) {
	return func(resource string) (string, error) {
		return hashes[resource], nil
	}
}

func TestRecipeKey_Copy(t *testing.T) {
	recipe := domain.Recipe{
		Op:     domain.OpCopy,
		Tag:    "render",
		Source: "res:/dx9/model/ship/42_512.jpg",
		Ext:    ".jpg",
	}

	key, err := recipe.Key(hashByKey(map[string]string{"res:/dx9/model/ship/42_512.jpg": "aabb"}))
	require.NoError(t, err)
	assert.Equal(t, "render;aabb.jpg", key.Filename())
}

func TestRecipeKey_TechComposite(t *testing.T) {
	hashes := map[string]string{
		"res:/icon.png": "1111",
		"res:/tech.png": "2222",
	}

	withTech := domain.Recipe{
		Op:          domain.OpTechComposite,
		Tag:         "icon",
		Source:      "res:/icon.png",
		TechOverlay: "res:/tech.png",
		Ext:         ".png",
	}
	key, err := withTech.Key(hashByKey(hashes))
	require.NoError(t, err)
	assert.Equal(t, "icon;1111;2222.png", key.Filename())

	// Without a tech overlay the component is omitted entirely.
	withoutTech := withTech
	withoutTech.Tag = "bp"
	withoutTech.TechOverlay = ""
	key, err = withoutTech.Key(hashByKey(hashes))
	require.NoError(t, err)
	assert.Equal(t, "bp;1111.png", key.Filename())
}

func TestRecipeKey_BlueprintConstantArity(t *testing.T) {
	hashes := map[string]string{
		"res:/bg.png":   "b1",
		"res:/over.png": "o1",
		"res:/icon.png": "i1",
		"res:/tech.png": "t1",
	}

	recipe := domain.Recipe{
		Op:         domain.OpBlueprintComposite,
		Tag:        "bpo",
		Source:     "res:/icon.png",
		Background: "res:/bg.png",
		Overlay:    "res:/over.png",
		Ext:        ".png",
	}

	// An absent tech overlay keeps its slot as an empty component, so the
	// filename arity never changes.
	key, err := recipe.Key(hashByKey(hashes))
	require.NoError(t, err)
	assert.Equal(t, "bpo;b1;o1;i1;.png", key.Filename())

	recipe.TechOverlay = "res:/tech.png"
	key, err = recipe.Key(hashByKey(hashes))
	require.NoError(t, err)
	assert.Equal(t, "bpo;b1;o1;i1;t1.png", key.Filename())
}

func TestRecipeKey_ContentAddressed(t *testing.T) {
	// Two different resource keys with identical content hashes must yield
	// the same filename.
	first := domain.Recipe{Op: domain.OpCopy, Tag: "icon", Source: "res:/a.png", Ext: ".png"}
	second := domain.Recipe{Op: domain.OpCopy, Tag: "icon", Source: "res:/b.png", Ext: ".png"}

	hashes := map[string]string{"res:/a.png": "same", "res:/b.png": "same"}

	keyA, err := first.Key(hashByKey(hashes))
	require.NoError(t, err)
	keyB, err := second.Key(hashByKey(hashes))
	require.NoError(t, err)
	assert.Equal(t, keyA.Filename(), keyB.Filename())
}

func TestRecipeKey_HashError(t *testing.T) {
	recipe := domain.Recipe{Op: domain.OpCopy, Tag: "icon", Source: "res:/a.png", Ext: ".png"}

	_, err := recipe.Key(func(string) (string, error) {
		return "", assert.AnError
	})
	assert.Error(t, err)
}
