package store

import (
	"encoding/json"
	"strconv"

	"github.com/curioapp/curio/internal/catalog"
	"github.com/curioapp/curio/internal/debug"
	"github.com/curioapp/curio/internal/folder"
	"github.com/curioapp/curio/internal/search"
	"github.com/curioapp/curio/internal/smart"
)

// Persisted slice keys. Each slice is independent; relative write order
// across slices never affects correctness.
const (
	KeySelectedFolder   = "selected-folder"
	KeyFavorites        = "favorites"
	KeyFolderCovers     = "folder-covers"
	KeyFolderTree       = "folder-tree"
	KeyOverrides        = "asset-folder-overrides"
	KeySmartDefinitions = "smart-folder-definitions"
	KeyImportedAssets   = "imported-assets"
	KeySort             = "sort"
	KeyViewMode         = "view-mode"
	KeyThumbnailSize    = "thumbnail-size"
	KeySidebarWidth     = "sidebar-width"
	KeySidebarCollapsed = "sidebar-collapsed"
	KeySidebarOpen      = "sidebar-open"
	KeyFilters          = "filters"
)

// Slice defaults.
const (
	DefaultViewMode      = "grid"
	DefaultThumbnailSize = 120
	DefaultSidebarWidth  = 240
)

// filtersVersion is the current filters envelope version.
const filtersVersion = 1

// Slices wraps a Store with one typed accessor per persisted slice. Loads
// never fail: malformed values fall back to the slice default and the bad
// value is left for the next save to overwrite.
type Slices struct {
	S Store
}

// --- selected folder (plain string) ---

func (s Slices) LoadSelectedFolder() string {
	v, _ := s.S.Get(KeySelectedFolder)
	return v
}

func (s Slices) SaveSelectedFolder(id string) error {
	return s.S.Set(KeySelectedFolder, id)
}

// --- favorites (JSON array of asset ids) ---

func (s Slices) LoadFavorites() []string {
	var ids []string
	if !s.loadJSON(KeyFavorites, &ids) {
		return nil
	}
	return dropEmptyStrings(ids)
}

func (s Slices) SaveFavorites(ids []string) error {
	return s.saveJSON(KeyFavorites, ids)
}

// --- folder covers (JSON map folder id -> asset id) ---

func (s Slices) LoadCovers() map[string]string {
	var covers map[string]string
	if !s.loadJSON(KeyFolderCovers, &covers) || covers == nil {
		return make(map[string]string)
	}
	return covers
}

func (s Slices) SaveCovers(covers map[string]string) error {
	return s.saveJSON(KeyFolderCovers, covers)
}

// --- folder tree (JSON array of nodes) ---

func (s Slices) LoadTree() *folder.Tree {
	var roots []*folder.Node
	if !s.loadJSON(KeyFolderTree, &roots) {
		return folder.NewTree()
	}
	return folder.NewTreeFromRoots(validNodes(roots))
}

func (s Slices) SaveTree(t *folder.Tree) error {
	return s.saveJSON(KeyFolderTree, t.Roots)
}

// validNodes drops nodes without an id or name, recursively.
func validNodes(nodes []*folder.Node) []*folder.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n == nil || n.ID == "" || n.Name == "" {
			continue
		}
		n.Children = validNodes(n.Children)
		out = append(out, n)
	}
	return out
}

// --- placement overrides (JSON map asset id -> folder id) ---

func (s Slices) LoadOverrides() map[string]string {
	var ov map[string]string
	if !s.loadJSON(KeyOverrides, &ov) || ov == nil {
		return make(map[string]string)
	}
	for k, v := range ov {
		if k == "" || v == "" {
			delete(ov, k)
		}
	}
	return ov
}

func (s Slices) SaveOverrides(ov map[string]string) error {
	return s.saveJSON(KeyOverrides, ov)
}

// --- smart folder definitions (JSON array) ---

func (s Slices) LoadSmartDefinitions() []smart.Definition {
	var defs []smart.Definition
	if !s.loadJSON(KeySmartDefinitions, &defs) {
		return nil
	}
	out := defs[:0]
	for _, d := range defs {
		if d.ID == "" || !smart.IsSmartID(d.ID) {
			continue
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (s Slices) SaveSmartDefinitions(defs []smart.Definition) error {
	return s.saveJSON(KeySmartDefinitions, defs)
}

// --- imported assets (JSON array; a record needs at least a source uri) ---

func (s Slices) LoadImportedAssets() []catalog.Asset {
	var assets []catalog.Asset
	if !s.loadJSON(KeyImportedAssets, &assets) {
		return nil
	}
	out := assets[:0]
	for _, a := range assets {
		if a.SourceURI == "" {
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (s Slices) SaveImportedAssets(assets []catalog.Asset) error {
	return s.saveJSON(KeyImportedAssets, assets)
}

// --- sort (enum string) ---

func (s Slices) LoadSort() search.Sort {
	v, ok := s.S.Get(KeySort)
	if !ok || !search.ValidSort(search.Sort(v)) {
		return search.DefaultSort
	}
	return search.Sort(v)
}

func (s Slices) SaveSort(by search.Sort) error {
	return s.S.Set(KeySort, string(by))
}

// --- view mode (grid | list) ---

func (s Slices) LoadViewMode() string {
	v, _ := s.S.Get(KeyViewMode)
	if v != "grid" && v != "list" {
		return DefaultViewMode
	}
	return v
}

func (s Slices) SaveViewMode(mode string) error {
	return s.S.Set(KeyViewMode, mode)
}

// --- thumbnail size (numeric string) ---

func (s Slices) LoadThumbnailSize() int {
	return s.loadInt(KeyThumbnailSize, DefaultThumbnailSize)
}

func (s Slices) SaveThumbnailSize(px int) error {
	return s.S.Set(KeyThumbnailSize, strconv.Itoa(px))
}

// --- sidebar (width numeric, collapsed/open booleans) ---

func (s Slices) LoadSidebarWidth() int {
	return s.loadInt(KeySidebarWidth, DefaultSidebarWidth)
}

func (s Slices) SaveSidebarWidth(px int) error {
	return s.S.Set(KeySidebarWidth, strconv.Itoa(px))
}

func (s Slices) LoadSidebarCollapsed() bool {
	v, _ := s.S.Get(KeySidebarCollapsed)
	return v == "true"
}

func (s Slices) SaveSidebarCollapsed(collapsed bool) error {
	return s.S.Set(KeySidebarCollapsed, strconv.FormatBool(collapsed))
}

func (s Slices) LoadSidebarOpen() bool {
	v, ok := s.S.Get(KeySidebarOpen)
	if !ok {
		return true
	}
	return v != "false"
}

func (s Slices) SaveSidebarOpen(open bool) error {
	return s.S.Set(KeySidebarOpen, strconv.FormatBool(open))
}

// --- filters (versioned envelope, legacy bare object accepted) ---

// filtersEnvelope is the on-disk shape: {version, data}.
type filtersEnvelope struct {
	Version int            `json:"version"`
	Data    search.Filters `json:"data"`
}

// LoadFilters accepts both the current envelope and the legacy bare-object
// shape, whitelist-validates every field, and drops anything invalid.
func (s Slices) LoadFilters() search.Filters {
	raw, ok := s.S.Get(KeyFilters)
	if !ok || raw == "" {
		return search.Filters{}
	}

	var env filtersEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Version > 0 {
		return env.Data.Sanitize()
	}

	// Legacy shape: the filters object stored bare, no envelope.
	var legacy search.Filters
	if err := json.Unmarshal([]byte(raw), &legacy); err == nil {
		return legacy.Sanitize()
	}

	debug.Log(debug.STORE, "filters slice malformed, using defaults")
	return search.Filters{}
}

func (s Slices) SaveFilters(f search.Filters) error {
	return s.saveJSON(KeyFilters, filtersEnvelope{Version: filtersVersion, Data: f.Sanitize()})
}

// --- helpers ---

// loadJSON unmarshals the slice at key into dst. Reports whether a valid
// value was present. On malformed input dst may be partially written;
// callers must discard it unless loadJSON reports true.
func (s Slices) loadJSON(key string, dst interface{}) bool {
	raw, ok := s.S.Get(key)
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		debug.Log(debug.STORE, "slice %q malformed, using default: %v", key, err)
		return false
	}
	return true
}

func (s Slices) saveJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.S.Set(key, string(raw))
}

func (s Slices) loadInt(key string, def int) int {
	v, ok := s.S.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func dropEmptyStrings(vals []string) []string {
	out := vals[:0]
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
