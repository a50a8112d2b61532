package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID_RoundTrip(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
	}{
		{"all", KindSystem},
		{"favorites", KindSystem},
		{"purchases", KindSystem},
		{"trash", KindSystem},
		{"smart:1234", KindSmart},
		{"f-abc", KindPhysical},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id := ParseID(tt.raw)
			assert.Equal(t, tt.kind, id.Kind())
			assert.Equal(t, tt.raw, id.String())
		})
	}
}

func TestParseID_EmptyIsAll(t *testing.T) {
	id := ParseID("")
	assert.True(t, id.IsAll())
	assert.Equal(t, "all", id.String())
}

func TestSystemLabels(t *testing.T) {
	assert.Equal(t, "All files", SystemAll.Label())
	assert.Equal(t, "Favorites", SystemFavorites.Label())
	assert.Equal(t, "Purchases", SystemPurchases.Label())
	assert.Equal(t, "Trash", SystemTrash.Label())
}
