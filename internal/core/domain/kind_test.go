package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

func TestIconKind_Table(t *testing.T) {
	tests := []struct {
		kind domain.IconKind
		name string
		tag  string
		ext  string
	}{
		{domain.KindIcon, "Icon", "icon", ".png"},
		{domain.KindBlueprint, "Blueprint", "bp", ".png"},
		{domain.KindBlueprintCopy, "BlueprintCopy", "bpc", ".png"},
		{domain.KindReaction, "Reaction", "reaction", ".png"},
		{domain.KindRelic, "Relic", "relic", ".png"},
		{domain.KindRender, "Render", "render", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.tag, tt.kind.Tag())
			assert.Equal(t, tt.ext, tt.kind.Ext())
		})
	}
}

func TestIconKind_UniqueTags(t *testing.T) {
	seen := map[string]bool{}
	for _, kind := range domain.Kinds() {
		assert.False(t, seen[kind.Tag()], "duplicate tag %q", kind.Tag())
		seen[kind.Tag()] = true
	}
}

func TestServiceMetadata_JSONKeys(t *testing.T) {
	meta := make(domain.ServiceMetadata)
	meta.Set(100, domain.KindIcon, "icon;abc.png")
	meta.Set(100, domain.KindBlueprintCopy, "bpc;def.png")

	data, err := json.Marshal(meta)
	require.NoError(t, err)
	assert.JSONEq(t, `{"100":{"icon":"icon;abc.png","bpc":"bpc;def.png"}}`, string(data))
}
