package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	m := NewManager()
	require.NoError(t, m.Load(path))

	// File was written with defaults.
	_, err := os.Stat(path)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, "grid", cfg.UI.ViewMode)
	assert.Equal(t, 250, cfg.Sync.DebounceMs)
	assert.NoError(t, m.ParseError())
}

func TestLoad_ParseErrorFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	m := NewManager()
	require.NoError(t, m.Load(path))
	assert.Error(t, m.ParseError())
	assert.Equal(t, "grid", m.Get().UI.ViewMode)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	m := NewManager()
	require.NoError(t, m.Load(path))
	m.SetViewMode("list")
	m.SetLibraryRoot("/srv/photos")

	m2 := NewManager()
	require.NoError(t, m2.Load(path))
	cfg := m2.Get()
	assert.Equal(t, "list", cfg.UI.ViewMode)
	assert.Equal(t, "/srv/photos", cfg.Library.Root)
}

func TestDebounce_NonPositiveFallsBack(t *testing.T) {
	m := NewManager()
	m.config.Sync.DebounceMs = 0
	assert.Equal(t, 250*time.Millisecond, m.Debounce())

	m.config.Sync.DebounceMs = 100
	assert.Equal(t, 100*time.Millisecond, m.Debounce())
}

func TestDBPath_FallsBackToDefault(t *testing.T) {
	m := NewManager()
	assert.Equal(t, DefaultDBPath(), m.DBPath())

	m.config.Library.DBPath = "/tmp/x.db"
	assert.Equal(t, "/tmp/x.db", m.DBPath())
}
