package iconbuild_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/ports/mocks"
	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/engine/iconbuild"
)

// storeWith returns a mock resource store that reports exactly the given keys
// as present.
func storeWith(ctrl *gomock.Controller, keys ...string) *mocks.MockResourceStore {
	present := make(map[string]bool, len(keys))
	for _, key := range keys {
		present[key] = true
	}
	store := mocks.NewMockResourceStore(ctrl)
	store.EXPECT().HasResource(gomock.Any()).DoAndReturn(func(key string) bool {
		return present[key]
	}).AnyTimes()
	return store
}

func permissiveLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func kindsOf(variants []domain.Variant) []domain.IconKind {
	var kinds []domain.IconKind
	for _, v := range variants {
		kinds = append(kinds, v.Kinds...)
	}
	return kinds
}

func TestClassify_NoIconData(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{
		GroupCategories: map[int32]int32{25: 6},
	}
	c := iconbuild.NewClassifier(data, domain.DefaultRules(), storeWith(ctrl), permissiveLogger(ctrl))

	variants, err := c.Classify(587, domain.TypeInfo{GroupID: 25})
	require.NoError(t, err)
	assert.Empty(t, variants)
}

func TestClassify_UnknownGroupIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{GroupCategories: map[int32]int32{}}
	c := iconbuild.NewClassifier(data, domain.DefaultRules(), storeWith(ctrl), permissiveLogger(ctrl))

	_, err := c.Classify(587, domain.TypeInfo{GroupID: 25, IconID: 1})
	assert.True(t, errors.Is(err, domain.ErrUnknownGroup))
}

func TestClassify_UnknownIconIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{
		GroupCategories: map[int32]int32{25: 6},
		IconFiles:       map[int32]string{},
	}
	c := iconbuild.NewClassifier(data, domain.DefaultRules(), storeWith(ctrl), permissiveLogger(ctrl))

	_, err := c.Classify(587, domain.TypeInfo{GroupID: 25, IconID: 33})
	assert.True(t, errors.Is(err, domain.ErrUnknownIcon))
}

func TestClassify_BlueprintGraphicRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{
		GroupCategories: map[int32]int32{105: domain.CategoryBlueprint},
		GraphicFolders:  map[int32]string{55: "bp"},
	}

	t.Run("bp and bpc present", func(t *testing.T) {
		store := storeWith(ctrl, "bp/55_64_bp.png", "bp/55_64_bpc.png")
		c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

		variants, err := c.Classify(100, domain.TypeInfo{GroupID: 105, GraphicID: 55})
		require.NoError(t, err)
		require.Len(t, variants, 2)
		assert.ElementsMatch(t,
			[]domain.IconKind{domain.KindIcon, domain.KindBlueprint, domain.KindBlueprintCopy},
			kindsOf(variants))
		assert.Equal(t, "bp", variants[0].Recipe.Tag)
		assert.Equal(t, "bp/55_64_bp.png", variants[0].Recipe.Source)
		assert.Equal(t, "bpc", variants[1].Recipe.Tag)
		assert.Equal(t, "bp/55_64_bpc.png", variants[1].Recipe.Source)
	})

	t.Run("bp only", func(t *testing.T) {
		store := storeWith(ctrl, "bp/55_64_bp.png")
		c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

		variants, err := c.Classify(100, domain.TypeInfo{GroupID: 105, GraphicID: 55})
		require.NoError(t, err)
		require.Len(t, variants, 1)
		assert.ElementsMatch(t,
			[]domain.IconKind{domain.KindIcon, domain.KindBlueprint},
			kindsOf(variants))
	})
}

func TestClassify_BlueprintIconFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{
		GroupCategories: map[int32]int32{105: domain.CategoryBlueprint},
		IconFiles:       map[int32]string{7: "res:/ui/texture/icons/7_64_1.png"},
	}
	store := storeWith(ctrl, "res:/ui/texture/icons/7_64_1.png")
	c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

	variants, err := c.Classify(100, domain.TypeInfo{GroupID: 105, IconID: 7})
	require.NoError(t, err)
	require.Len(t, variants, 2)

	original := variants[0].Recipe
	assert.Equal(t, domain.OpBlueprintComposite, original.Op)
	assert.Equal(t, "bpo", original.Tag)
	assert.Equal(t, "res:/ui/texture/icons/bpo.png", original.Background)
	assert.ElementsMatch(t, []domain.IconKind{domain.KindIcon, domain.KindBlueprint}, variants[0].Kinds)

	bpCopy := variants[1].Recipe
	assert.Equal(t, "bpc", bpCopy.Tag)
	assert.Equal(t, "res:/ui/texture/icons/bpc.png", bpCopy.Background)
	assert.Equal(t, []domain.IconKind{domain.KindBlueprintCopy}, variants[1].Kinds)
}

func TestClassify_ReactionGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{
		GroupCategories: map[int32]int32{1888: domain.CategoryBlueprint},
		IconFiles:       map[int32]string{7: "res:/ui/texture/icons/7_64_1.png"},
	}
	store := storeWith(ctrl, "res:/ui/texture/icons/7_64_1.png")
	c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

	variants, err := c.Classify(100, domain.TypeInfo{GroupID: 1888, IconID: 7, MetaGroupID: 2})
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.ElementsMatch(t,
		[]domain.IconKind{domain.KindIcon, domain.KindReaction, domain.KindBlueprint},
		variants[0].Kinds)
	assert.Equal(t, "reaction", variants[0].Recipe.Tag)
	assert.Equal(t, "res:/ui/texture/icons/reaction.png", variants[0].Recipe.Background)
	assert.Equal(t, "res:/ui/texture/icons/73_16_242.png", variants[0].Recipe.TechOverlay)
}

func TestClassify_RelicCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{
		GroupCategories: map[int32]int32{966: domain.CategoryReaction},
		IconFiles:       map[int32]string{7: "res:/ui/texture/icons/7_64_1.png"},
	}
	store := storeWith(ctrl, "res:/ui/texture/icons/7_64_1.png")
	c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

	variants, err := c.Classify(100, domain.TypeInfo{GroupID: 966, IconID: 7, MetaGroupID: 2})
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.ElementsMatch(t, []domain.IconKind{domain.KindIcon, domain.KindRelic}, variants[0].Kinds)
	assert.Equal(t, "relic", variants[0].Recipe.Tag)
	assert.Equal(t, "res:/ui/texture/icons/relic.png", variants[0].Recipe.Background)
	assert.Equal(t, "res:/ui/texture/icons/73_16_242.png", variants[0].Recipe.TechOverlay)
}

func TestClassify_MissingResourceIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{
		GroupCategories: map[int32]int32{105: domain.CategoryBlueprint},
		IconFiles:       map[int32]string{7: "res:/ui/texture/icons/7_64_1.png"},
	}
	store := storeWith(ctrl) // nothing present
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)
	c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, log)

	variants, err := c.Classify(100, domain.TypeInfo{GroupID: 105, IconID: 7})
	require.NoError(t, err)
	assert.Empty(t, variants)
}

func TestClassify_Skin(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{
		GroupCategories: map[int32]int32{1950: domain.CategorySkin},
		SkinMaterials:   map[int32]int32{100: 77},
	}

	t.Run("material known", func(t *testing.T) {
		store := storeWith(ctrl, "res:/ui/texture/classes/skins/icons/77.png")
		c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

		variants, err := c.Classify(100, domain.TypeInfo{GroupID: 1950})
		require.NoError(t, err)
		require.Len(t, variants, 1)
		assert.Equal(t, []domain.IconKind{domain.KindIcon}, variants[0].Kinds)
		assert.Equal(t, domain.OpCopy, variants[0].Recipe.Op)
	})

	t.Run("material unknown yields nothing", func(t *testing.T) {
		store := storeWith(ctrl)
		c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

		variants, err := c.Classify(999, domain.TypeInfo{GroupID: 1950})
		require.NoError(t, err)
		assert.Empty(t, variants)
	})
}

func TestClassify_RegularItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	data := &domain.IconBuildData{
		GroupCategories: map[int32]int32{25: 6},
		GraphicFolders:  map[int32]string{42: "res:/dx9/model/ship/frigate"},
		IconFiles:       map[int32]string{9: "res:/ui/texture/icons/9_64_1.png"},
	}

	t.Run("prefers graphic folder and adds render", func(t *testing.T) {
		store := storeWith(ctrl,
			"res:/dx9/model/ship/frigate/42_64.png",
			"res:/dx9/model/ship/frigate/42_512.jpg",
		)
		c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

		variants, err := c.Classify(587, domain.TypeInfo{GroupID: 25, GraphicID: 42, IconID: 9, MetaGroupID: 2})
		require.NoError(t, err)
		require.Len(t, variants, 2)

		icon := variants[0].Recipe
		assert.Equal(t, domain.OpTechComposite, icon.Op)
		assert.Equal(t, "res:/dx9/model/ship/frigate/42_64.png", icon.Source)
		assert.Equal(t, "res:/ui/texture/icons/73_16_242.png", icon.TechOverlay)

		render := variants[1].Recipe
		assert.Equal(t, domain.OpCopy, render.Op)
		assert.Equal(t, "res:/dx9/model/ship/frigate/42_512.jpg", render.Source)
		assert.Equal(t, []domain.IconKind{domain.KindRender}, variants[1].Kinds)
	})

	t.Run("falls back to flat icon when graphic missing", func(t *testing.T) {
		store := storeWith(ctrl, "res:/ui/texture/icons/9_64_1.png")
		c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

		variants, err := c.Classify(587, domain.TypeInfo{GroupID: 25, GraphicID: 42, IconID: 9})
		require.NoError(t, err)
		require.Len(t, variants, 1)
		assert.Equal(t, "res:/ui/texture/icons/9_64_1.png", variants[0].Recipe.Source)
		assert.Equal(t, domain.OpCopy, variants[0].Recipe.Op)
	})

	t.Run("render alone yields nothing", func(t *testing.T) {
		store := storeWith(ctrl, "res:/dx9/model/ship/frigate/42_512.jpg")
		c := iconbuild.NewClassifier(data, domain.DefaultRules(), store, permissiveLogger(ctrl))

		variants, err := c.Classify(587, domain.TypeInfo{GroupID: 25, GraphicID: 42})
		require.NoError(t, err)
		assert.Empty(t, variants)
	})

	t.Run("flat icon override group ignores graphic", func(t *testing.T) {
		overrideData := &domain.IconBuildData{
			GroupCategories: map[int32]int32{12: 2},
			GraphicFolders:  data.GraphicFolders,
			IconFiles:       data.IconFiles,
		}
		store := storeWith(ctrl,
			"res:/dx9/model/ship/frigate/42_64.png",
			"res:/ui/texture/icons/9_64_1.png",
		)
		c := iconbuild.NewClassifier(overrideData, domain.DefaultRules(), store, permissiveLogger(ctrl))

		variants, err := c.Classify(587, domain.TypeInfo{GroupID: 12, GraphicID: 42, IconID: 9})
		require.NoError(t, err)
		require.Len(t, variants, 1)
		assert.Equal(t, "res:/ui/texture/icons/9_64_1.png", variants[0].Recipe.Source)
	})
}
