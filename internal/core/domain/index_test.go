package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SentientTurtle/EVE-3rd-party-dev-tools/internal/core/domain"
)

func TestIndex_RoundTrip(t *testing.T) {
	files := []string{"icon;aa.png", "bp;bb;cc.png", "render;dd.jpg"}

	decoded, err := domain.DecodeIndex(domain.EncodeIndex(files))
	require.NoError(t, err)
	assert.ElementsMatch(t, files, decoded)
}

func TestEncodeIndex_Deterministic(t *testing.T) {
	a := domain.EncodeIndex([]string{"b.png", "a.png", "c.png"})
	b := domain.EncodeIndex([]string{"c.png", "a.png", "b.png"})
	assert.Equal(t, a, b)
}

func TestEncodeIndex_Empty(t *testing.T) {
	decoded, err := domain.DecodeIndex(domain.EncodeIndex(nil))
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecodeIndex_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty entry", "a.png\x1e\x1eb.png"},
		{"invalid utf8", "a.png\x1e\xff\xfe"},
		{"path separator", "a.png\x1e../../etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.DecodeIndex([]byte(tt.data))
			assert.True(t, errors.Is(err, domain.ErrCorruptIndex))
		})
	}
}
