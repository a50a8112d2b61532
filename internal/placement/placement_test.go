package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curioapp/curio/internal/catalog"
)

func existsIn(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestEffectiveFolder(t *testing.T) {
	exists := existsIn("f-a", "f-b")
	o := Overrides{"2": "f-b"}

	tests := []struct {
		name  string
		asset catalog.Asset
		want  string
	}{
		{"override wins", catalog.Asset{ID: "2", FolderID: "f-a"}, "f-b"},
		{"base folder", catalog.Asset{ID: "1", FolderID: "f-a"}, "f-a"},
		{"unfiled falls to all", catalog.Asset{ID: "3"}, All},
		{"dangling base falls to all", catalog.Asset{ID: "4", FolderID: "f-gone"}, All},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveFolder(tt.asset, o, exists))
		})
	}
}

func TestEffectiveFolder_DanglingOverride(t *testing.T) {
	o := Overrides{"1": "f-deleted"}
	a := catalog.Asset{ID: "1", FolderID: "f-live"}

	// The override target no longer exists: the asset resolves to all,
	// it never disappears and the stale entry is left in place.
	got := EffectiveFolder(a, o, existsIn("f-live"))
	assert.Equal(t, All, got)
	_, still := o.Get("1")
	assert.True(t, still)
}

func TestEffectiveFolder_SystemTargets(t *testing.T) {
	o := Overrides{"1": Trash, "2": Purchases}
	exists := existsIn()
	assert.Equal(t, Trash, EffectiveFolder(catalog.Asset{ID: "1"}, o, exists))
	assert.Equal(t, Purchases, EffectiveFolder(catalog.Asset{ID: "2"}, o, exists))
}

func TestEffectiveFolder_Idempotent(t *testing.T) {
	o := Overrides{"1": "f-b"}
	a := catalog.Asset{ID: "1", FolderID: "f-a"}
	exists := existsIn("f-a", "f-b")

	first := EffectiveFolder(a, o, exists)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, EffectiveFolder(a, o, exists))
	}
}

func TestFavoriteSet_Toggle(t *testing.T) {
	s := NewFavoriteSet([]string{"a"})

	assert.False(t, s.Toggle("a"))
	assert.True(t, s.Toggle("a"))
	assert.True(t, s.Toggle("b"))
	assert.ElementsMatch(t, []string{"a", "b"}, s.IDs())
}

func TestOverrides_Clone(t *testing.T) {
	o := Overrides{"1": "f-a"}
	c := o.Clone()
	c.Set("1", "f-b")
	got, _ := o.Get("1")
	assert.Equal(t, "f-a", got)
}
