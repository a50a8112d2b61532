package app

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 20 * time.Millisecond

func waitDebounce() {
	time.Sleep(5 * testDebounce)
}

func TestReadQuery_AliasPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   string
	}{
		{"canonical wins", url.Values{"q": {"a"}, "query": {"b"}, "s": {"c"}}, "a"},
		{"second alias", url.Values{"query": {"b"}, "s": {"c"}}, "b"},
		{"third alias", url.Values{"s": {"c"}}, "c"},
		{"empty canonical falls through", url.Values{"q": {""}, "query": {"b"}}, "b"},
		{"nothing", url.Values{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadQuery(tt.values))
		})
	}
}

// Rapid query edits within the debounce window collapse into exactly one
// location write carrying the final value.
func TestQueryEdited_DebounceCollapses(t *testing.T) {
	loc := NewMemLocation()
	c := NewLocationController(loc, testDebounce)

	c.QueryEdited("s", "all")
	c.QueryEdited("su", "all")
	c.QueryEdited("sun", "all")
	waitDebounce()

	require.Len(t, loc.History, 1)
	assert.Equal(t, "sun", loc.History[0].Get("q"))
}

func TestQueryEdited_PreservesFolderParam(t *testing.T) {
	loc := NewMemLocation()
	c := NewLocationController(loc, testDebounce)

	c.QueryEdited("beach", "f-1")
	waitDebounce()

	require.Len(t, loc.History, 1)
	assert.Equal(t, "beach", loc.History[0].Get("q"))
	assert.Equal(t, "f-1", loc.History[0].Get("folder"))
}

func TestFolderChanged_ImmediateAndClearsQuery(t *testing.T) {
	loc := NewMemLocation()
	loc.Write(url.Values{"q": {"old"}, "query": {"stale"}, "s": {"staler"}})
	loc.History = nil

	c := NewLocationController(loc, testDebounce)
	c.FolderChanged("f-2")

	require.Len(t, loc.History, 1)
	got := loc.History[0]
	assert.Equal(t, "f-2", got.Get("folder"))
	// Query cleared and every alias actively deleted.
	for _, alias := range []string{"q", "query", "s"} {
		assert.Empty(t, got.Get(alias))
	}
}

func TestFolderChanged_OmitsFolderForAll(t *testing.T) {
	loc := NewMemLocation()
	c := NewLocationController(loc, testDebounce)

	c.FolderChanged("all")
	require.Len(t, loc.History, 1)
	_, present := loc.History[0]["folder"]
	assert.False(t, present)
}

// An authoritative folder navigation cancels the pending query write.
func TestFolderChanged_CancelsPendingQueryWrite(t *testing.T) {
	loc := NewMemLocation()
	c := NewLocationController(loc, testDebounce)

	c.QueryEdited("typing", "all")
	c.FolderChanged("f-3")
	waitDebounce()

	require.Len(t, loc.History, 1)
	assert.Equal(t, "f-3", loc.History[0].Get("folder"))
	assert.Empty(t, loc.History[0].Get("q"))
}

func TestObserve_EchoSuppressedExactlyOnce(t *testing.T) {
	loc := NewMemLocation()
	c := NewLocationController(loc, testDebounce)

	var external []string
	c.OnExternal = func(query, folderID string) {
		external = append(external, query+"|"+folderID)
	}

	c.FolderChanged("f-1")
	written := loc.Read()

	// First observation of the exact written value is our echo: discarded.
	c.Observe(written)
	assert.Empty(t, external)

	// The same value observed again is genuine navigation.
	c.Observe(written)
	assert.Equal(t, []string{"|f-1"}, external)
}

func TestObserve_NonMatchingValueIsExternal(t *testing.T) {
	loc := NewMemLocation()
	c := NewLocationController(loc, testDebounce)

	var gotQuery, gotFolder string
	c.OnExternal = func(query, folderID string) {
		gotQuery, gotFolder = query, folderID
	}

	c.FolderChanged("f-1")
	// External navigation arrives before our echo: not suppressed.
	c.Observe(url.Values{"query": {"kites"}, "folder": {"f-9"}})
	assert.Equal(t, "kites", gotQuery)
	assert.Equal(t, "f-9", gotFolder)
}

func TestStop_CancelsPendingWrite(t *testing.T) {
	loc := NewMemLocation()
	c := NewLocationController(loc, testDebounce)

	c.QueryEdited("typing", "all")
	c.Stop()
	waitDebounce()

	assert.Empty(t, loc.History)
}

func TestWrite_PreservesUnrelatedParams(t *testing.T) {
	loc := NewMemLocation()
	loc.Write(url.Values{"tab": {"gallery"}})
	loc.History = nil

	c := NewLocationController(loc, testDebounce)
	c.FolderChanged("f-1")

	require.Len(t, loc.History, 1)
	assert.Equal(t, "gallery", loc.History[0].Get("tab"))
}
