package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

func TestServiceMetadata_Set(t *testing.T) {
	meta := make(domain.ServiceMetadata)
	meta.Set(200, domain.KindIcon, "icon;a.png")
	meta.Set(100, domain.KindIcon, "bp;b.png")
	meta.Set(100, domain.KindBlueprint, "bp;b.png")

	assert.Equal(t, []int32{100, 200}, meta.SortedTypeIDs())
	assert.Equal(t, "bp;b.png", meta[100][domain.KindBlueprint])
}

func TestExportState_Fresh(t *testing.T) {
	assert.True(t, (&domain.ExportState{}).Fresh())
	assert.False(t, (&domain.ExportState{Added: 1}).Fresh())
	assert.False(t, (&domain.ExportState{Removed: 2}).Fresh())
}
