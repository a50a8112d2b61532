package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioapp/curio/internal/catalog"
	"github.com/curioapp/curio/internal/search"
	"github.com/curioapp/curio/internal/smart"
)

func memSlices() Slices {
	return Slices{S: NewMemStore()}
}

func TestSlices_RoundTripFavoritesAndCovers(t *testing.T) {
	s := memSlices()

	require.NoError(t, s.SaveFavorites([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, s.LoadFavorites())

	require.NoError(t, s.SaveCovers(map[string]string{"f-1": "asset-9"}))
	assert.Equal(t, map[string]string{"f-1": "asset-9"}, s.LoadCovers())
}

func TestSlices_MalformedFallsBackToDefault(t *testing.T) {
	s := memSlices()
	st := s.S

	tests := []struct {
		key   string
		value string
		check func(t *testing.T)
	}{
		{KeyFavorites, "{not json", func(t *testing.T) { assert.Nil(t, s.LoadFavorites()) }},
		{KeyFolderTree, "42", func(t *testing.T) { assert.Empty(t, s.LoadTree().Roots) }},
		{KeyOverrides, `["array"]`, func(t *testing.T) { assert.Empty(t, s.LoadOverrides()) }},
		{KeySort, "by-vibes", func(t *testing.T) { assert.Equal(t, search.DefaultSort, s.LoadSort()) }},
		{KeyViewMode, "mosaic", func(t *testing.T) { assert.Equal(t, DefaultViewMode, s.LoadViewMode()) }},
		{KeyThumbnailSize, "-3", func(t *testing.T) { assert.Equal(t, DefaultThumbnailSize, s.LoadThumbnailSize()) }},
		{KeyThumbnailSize, "huge", func(t *testing.T) { assert.Equal(t, DefaultThumbnailSize, s.LoadThumbnailSize()) }},
		{KeySidebarWidth, "", func(t *testing.T) { assert.Equal(t, DefaultSidebarWidth, s.LoadSidebarWidth()) }},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			require.NoError(t, st.Set(tt.key, tt.value))
			tt.check(t)
		})
	}
}

// A value that fails mid-decode must not leak its decoded prefix: the whole
// slice falls back, not just the bad entry.
func TestSlices_PartialDecodeDiscarded(t *testing.T) {
	s := memSlices()

	require.NoError(t, s.S.Set(KeyOverrides, `{"a":"f-1","b":5}`))
	assert.Empty(t, s.LoadOverrides())

	require.NoError(t, s.S.Set(KeyFolderCovers, `{"f-1":"a","f-2":7}`))
	assert.Empty(t, s.LoadCovers())

	require.NoError(t, s.S.Set(KeyFavorites, `["a",5]`))
	assert.Nil(t, s.LoadFavorites())
}

func TestSlices_TreeRoundTripAndValidation(t *testing.T) {
	s := memSlices()

	// Whitelist validation: nodes without id or name are dropped, children
	// recursively.
	require.NoError(t, s.S.Set(KeyFolderTree,
		`[{"id":"f-1","name":"Keep","children":[{"id":"","name":"drop"},{"id":"f-2","name":"Child"}]},{"id":"f-3","name":""}]`))

	tree := s.LoadTree()
	require.Len(t, tree.Roots, 1)
	assert.Equal(t, "f-1", tree.Roots[0].ID)
	require.Len(t, tree.Roots[0].Children, 1)
	assert.Equal(t, "f-2", tree.Roots[0].Children[0].ID)

	require.NoError(t, s.SaveTree(tree))
	again := s.LoadTree()
	assert.Equal(t, tree.Roots[0].ID, again.Roots[0].ID)
}

func TestSlices_SmartDefinitionsValidation(t *testing.T) {
	s := memSlices()
	defs := []smart.Definition{
		{ID: smart.MintID(), Name: "Wide", Rules: []smart.Rule{{Field: smart.FieldRatio, Op: smart.OpIs, Value: "16/9"}}},
	}
	require.NoError(t, s.SaveSmartDefinitions(defs))
	assert.Equal(t, defs, s.LoadSmartDefinitions())

	// Definitions outside the smart namespace are dropped on load.
	require.NoError(t, s.S.Set(KeySmartDefinitions, `[{"id":"f-sneaky","name":"x"},{"id":"","name":"y"}]`))
	assert.Nil(t, s.LoadSmartDefinitions())
}

func TestSlices_ImportedAssetsNeedSourceURI(t *testing.T) {
	s := memSlices()
	require.NoError(t, s.S.Set(KeyImportedAssets,
		`[{"id":"1","sourceUri":"uri/a"},{"id":"2"},{"id":"3","sourceUri":"uri/b"}]`))

	got := s.LoadImportedAssets()
	require.Len(t, got, 2)
	assert.Equal(t, "uri/a", got[0].SourceURI)
	assert.Equal(t, "uri/b", got[1].SourceURI)
}

func TestSlices_FiltersEnvelope(t *testing.T) {
	s := memSlices()

	t.Run("round trip", func(t *testing.T) {
		f := search.Filters{Colors: []string{"#fff"}, Orientation: search.OrientPortrait}
		require.NoError(t, s.SaveFilters(f))
		assert.Equal(t, f, s.LoadFilters())

		// Saved shape is the versioned envelope.
		raw, ok := s.S.Get(KeyFilters)
		require.True(t, ok)
		assert.Contains(t, raw, `"version":1`)
	})

	t.Run("legacy bare object accepted", func(t *testing.T) {
		require.NoError(t, s.S.Set(KeyFilters, `{"colors":["#abc"],"favoritesOnly":true}`))
		f := s.LoadFilters()
		assert.Equal(t, []string{"#abc"}, f.Colors)
		assert.True(t, f.FavoritesOnly)
	})

	t.Run("invalid fields dropped not propagated", func(t *testing.T) {
		require.NoError(t, s.S.Set(KeyFilters,
			`{"version":1,"data":{"orientation":"diagonal","colors":["","#fff"]}}`))
		f := s.LoadFilters()
		assert.Equal(t, search.OrientAny, f.Orientation)
		assert.Equal(t, []string{"#fff"}, f.Colors)
	})

	t.Run("garbage falls back", func(t *testing.T) {
		require.NoError(t, s.S.Set(KeyFilters, "][")) //nolint
		assert.Equal(t, search.Filters{}, s.LoadFilters())
	})
}

func TestSlices_MissingKeysUseDefaults(t *testing.T) {
	s := memSlices()

	assert.Equal(t, "", s.LoadSelectedFolder())
	assert.Nil(t, s.LoadFavorites())
	assert.Empty(t, s.LoadCovers())
	assert.Empty(t, s.LoadTree().Roots)
	assert.Empty(t, s.LoadOverrides())
	assert.Nil(t, s.LoadSmartDefinitions())
	assert.Nil(t, s.LoadImportedAssets())
	assert.Equal(t, search.DefaultSort, s.LoadSort())
	assert.Equal(t, DefaultViewMode, s.LoadViewMode())
	assert.Equal(t, DefaultThumbnailSize, s.LoadThumbnailSize())
	assert.Equal(t, DefaultSidebarWidth, s.LoadSidebarWidth())
	assert.False(t, s.LoadSidebarCollapsed())
	assert.True(t, s.LoadSidebarOpen())
	assert.Equal(t, search.Filters{}, s.LoadFilters())
}

func TestSlices_ImportedAssetsRoundTrip(t *testing.T) {
	s := memSlices()
	assets := []catalog.Asset{{ID: "1", SourceURI: "uri/a", Title: "A"}}
	require.NoError(t, s.SaveImportedAssets(assets))
	assert.Equal(t, assets, s.LoadImportedAssets())
}
