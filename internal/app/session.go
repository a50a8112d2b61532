// Package app orchestrates the engine for one local session: it owns the
// folder tree, placement state, selection, and the location sync
// controller, applies every mutation synchronously in issued order, and
// writes each persisted slice through to the store immediately.
package app

import (
	"errors"
	"time"

	"github.com/curioapp/curio/internal/catalog"
	"github.com/curioapp/curio/internal/debug"
	"github.com/curioapp/curio/internal/folder"
	"github.com/curioapp/curio/internal/placement"
	"github.com/curioapp/curio/internal/search"
	"github.com/curioapp/curio/internal/smart"
	"github.com/curioapp/curio/internal/store"
	"github.com/curioapp/curio/internal/view"
)

// ErrInvalidTarget is returned when a bulk move or restore names a target
// that is not a live real folder. The selection is left untouched and no
// override is written.
var ErrInvalidTarget = errors.New("app: move target is not a real folder")

// Session is the single source of truth for one local session. All
// mutations go through Session methods; reads hand out resolved snapshots.
type Session struct {
	slices store.Slices
	base   []catalog.Asset // external catalog, read-only
	merged []catalog.Asset // imported subset merged ahead of base
	meta   catalog.Metadata

	tree      *folder.Tree
	idx       folder.Indexes
	overrides placement.Overrides
	favorites placement.FavoriteSet
	covers    placement.CoverMap
	smartDefs []smart.Definition

	selected view.ID
	query    string
	filters  search.Filters
	sort     search.Sort
	viewMode string
	thumb    int

	sidebarWidth int
	sidebarShut  bool
	sidebarOpen  bool

	selection  *Selection
	resolution *view.Resolution
	location   *LocationController
}

// Options configures session construction.
type Options struct {
	Store    store.Store
	Catalog  []catalog.Asset  // base catalog from the external collaborator
	Metadata catalog.Metadata // optional; nil degrades gracefully
	Location Location         // optional; nil disables location sync
	Debounce time.Duration    // zero means DefaultDebounce
}

// NewSession loads every persisted slice (malformed slices fall back to
// their defaults), merges imported assets ahead of the catalog, and
// resolves the initial view.
func NewSession(opts Options) *Session {
	slices := store.Slices{S: opts.Store}
	s := &Session{
		slices:       slices,
		base:         opts.Catalog,
		meta:         opts.Metadata,
		tree:         slices.LoadTree(),
		overrides:    slices.LoadOverrides(),
		favorites:    placement.NewFavoriteSet(slices.LoadFavorites()),
		covers:       slices.LoadCovers(),
		smartDefs:    slices.LoadSmartDefinitions(),
		selected:     view.ParseID(slices.LoadSelectedFolder()),
		filters:      slices.LoadFilters(),
		sort:         slices.LoadSort(),
		viewMode:     slices.LoadViewMode(),
		thumb:        slices.LoadThumbnailSize(),
		sidebarWidth: slices.LoadSidebarWidth(),
		sidebarShut:  slices.LoadSidebarCollapsed(),
		sidebarOpen:  slices.LoadSidebarOpen(),
		selection:    NewSelection(),
	}
	s.merged = catalog.Merge(slices.LoadImportedAssets(), s.base)
	s.idx = folder.BuildIndexes(s.tree)
	// Persisted selection may reference a since-deleted folder.
	if s.selected.Kind() == view.KindPhysical && !s.tree.Contains(s.selected.FolderID()) {
		s.selected = view.SystemView(view.SystemAll)
	}
	s.resolve()

	if opts.Location != nil {
		s.location = NewLocationController(opts.Location, opts.Debounce)
		s.location.OnExternal = s.applyExternalLocation
	}
	debug.Log(debug.APP, "session: %d assets, %d folders", len(s.merged), len(s.idx.ByID))
	return s
}

// Close cancels any pending location write.
func (s *Session) Close() {
	if s.location != nil {
		s.location.Stop()
	}
}

// resolve rebuilds the per-folder member lists. One pass over the merged
// catalog; called after every placement or favorite mutation.
func (s *Session) resolve() {
	s.resolution = view.Resolve(s.merged, s.overrides, s.favorites, s.tree.Contains)
}

// --- read side ---

// SelectedView returns the current view id.
func (s *Session) SelectedView() view.ID { return s.selected }

// Query returns the current free-text query.
func (s *Session) Query() string { return s.query }

// Selection exposes the tracked selection.
func (s *Session) Selection() *Selection { return s.selection }

// Resolution exposes the current resolution for count lookups.
func (s *Session) Resolution() *view.Resolution { return s.resolution }

// SmartDefinitions returns the saved smart folder definitions.
func (s *Session) SmartDefinitions() []smart.Definition { return s.smartDefs }

// Tree exposes the folder hierarchy for display.
func (s *Session) Tree() *folder.Tree { return s.tree }

// Items returns the fully processed item list for the selected view:
// resolved members (cover pinned for real folders), then the search and
// filter pipeline, then the persisted sort.
func (s *Session) Items() []catalog.Asset {
	resolved := s.resolution.Items(s.selected, s.smartDefs, s.covers)
	return search.Run(resolved, s.query, s.filters, s.sort, s.favorites, s.meta)
}

// EmptyState classifies what to show when Items is empty.
func (s *Session) EmptyState() search.EmptyKind {
	return search.EmptyState(s.selected, s.query, s.filters, len(s.Items()))
}

// Breadcrumbs returns the trail for the selected view.
func (s *Session) Breadcrumbs() view.Trail {
	return view.Breadcrumbs(s.selected, s.idx, s.smartNameLookup)
}

func (s *Session) smartNameLookup(id string) (string, bool) {
	for _, def := range s.smartDefs {
		if def.ID == id {
			return def.Name, true
		}
	}
	return "", false
}

// Subfolders lists the selected real folder's children with counts and
// covers; nil for non-physical views.
func (s *Session) Subfolders() []view.Subfolder {
	if s.selected.Kind() != view.KindPhysical {
		return nil
	}
	return s.resolution.Subfolders(s.selected.FolderID(), s.idx, s.covers)
}

// --- navigation & query ---

// SelectView navigates to a view. Folder navigation clears the query and
// the selection, persists the selected folder slice, and rewrites the
// location's folder parameter immediately (authoritative, cancels any
// pending query write).
func (s *Session) SelectView(id view.ID) {
	s.selected = id
	s.query = ""
	s.selection.Clear()
	s.persist(s.slices.SaveSelectedFolder(id.String()))
	if s.location != nil {
		s.location.FolderChanged(id.String())
	}
}

// SetQuery updates the free-text query. The folder parameter is preserved
// (scoped search); the location write is debounced.
func (s *Session) SetQuery(query string) {
	s.query = query
	if s.location != nil {
		s.location.QueryEdited(query, s.selected.String())
	}
}

// Escape clears the selection.
func (s *Session) Escape() {
	s.selection.Clear()
}

// applyExternalLocation handles genuine external navigation observed by the
// location controller.
func (s *Session) applyExternalLocation(query, folderID string) {
	debug.Log(debug.NAV, "external navigation: query=%q folder=%q", query, folderID)
	id := view.ParseID(folderID)
	if id.String() != s.selected.String() {
		s.selected = id
		s.selection.Clear()
		s.persist(s.slices.SaveSelectedFolder(id.String()))
	}
	s.query = query
}

// Location exposes the sync controller so the host can feed observed
// location changes into Observe. Nil when the session has no location.
func (s *Session) Location() *LocationController { return s.location }

// --- folder tree mutations ---

// CreateFolder creates a child under parentID ("" for top level), persists
// the tree, and rebuilds the indexes.
func (s *Session) CreateFolder(parentID, name string) (string, error) {
	id, err := s.tree.CreateChild(parentID, name)
	if err != nil {
		return "", err
	}
	s.afterTreeChange()
	return id, nil
}

// RenameFolder renames a folder and persists the tree.
func (s *Session) RenameFolder(id, name string) error {
	if err := s.tree.Rename(id, name); err != nil {
		return err
	}
	s.afterTreeChange()
	return nil
}

// DeleteFolder removes a folder subtree. Covers for removed folders are
// dropped; overrides pointing at them stay and resolve to "all" at read
// time; a selection viewing a removed folder falls back to the all view.
func (s *Session) DeleteFolder(id string) error {
	if err := s.tree.Delete(id); err != nil {
		return err
	}
	s.afterTreeChange()

	for folderID := range s.covers {
		if !s.tree.Contains(folderID) {
			delete(s.covers, folderID)
		}
	}
	s.persist(s.slices.SaveCovers(s.covers))

	if s.selected.Kind() == view.KindPhysical && !s.tree.Contains(s.selected.FolderID()) {
		s.SelectView(view.SystemView(view.SystemAll))
	}
	return nil
}

// afterTreeChange persists the tree, rebuilds the derived indexes, and
// re-resolves (effective folders depend on the live folder set).
func (s *Session) afterTreeChange() {
	s.persist(s.slices.SaveTree(s.tree))
	s.idx = folder.BuildIndexes(s.tree)
	s.resolve()
}

// --- smart folder mutations ---

// SaveSmartFolder inserts or replaces a definition and persists the slice.
func (s *Session) SaveSmartFolder(def smart.Definition) {
	for i, d := range s.smartDefs {
		if d.ID == def.ID {
			s.smartDefs[i] = def
			s.persist(s.slices.SaveSmartDefinitions(s.smartDefs))
			return
		}
	}
	s.smartDefs = append(s.smartDefs, def)
	s.persist(s.slices.SaveSmartDefinitions(s.smartDefs))
}

// DeleteSmartFolder removes a definition. A selection viewing it falls back
// to the all view.
func (s *Session) DeleteSmartFolder(id string) {
	out := s.smartDefs[:0]
	for _, d := range s.smartDefs {
		if d.ID != id {
			out = append(out, d)
		}
	}
	s.smartDefs = out
	s.persist(s.slices.SaveSmartDefinitions(s.smartDefs))
	if s.selected.Kind() == view.KindSmart && s.selected.SmartID() == id {
		s.SelectView(view.SystemView(view.SystemAll))
	}
}

// --- covers, sort, prefs ---

// SetCover assigns a folder's representative asset. Presentational only.
func (s *Session) SetCover(folderID, assetID string) {
	s.covers[folderID] = assetID
	s.persist(s.slices.SaveCovers(s.covers))
}

// SetSort updates and persists the sort order; invalid values are ignored.
func (s *Session) SetSort(by search.Sort) {
	if !search.ValidSort(by) {
		return
	}
	s.sort = by
	s.persist(s.slices.SaveSort(by))
}

// SetFilters replaces the facet state and persists the versioned envelope.
func (s *Session) SetFilters(f search.Filters) {
	s.filters = f.Sanitize()
	s.persist(s.slices.SaveFilters(s.filters))
}

// SetViewMode persists the grid/list toggle.
func (s *Session) SetViewMode(mode string) {
	if mode != "grid" && mode != "list" {
		return
	}
	s.viewMode = mode
	s.persist(s.slices.SaveViewMode(mode))
}

// ViewMode returns the persisted display mode.
func (s *Session) ViewMode() string { return s.viewMode }

// SetThumbnailSize persists the grid thumbnail size. Non-positive values
// are ignored.
func (s *Session) SetThumbnailSize(px int) {
	if px <= 0 {
		return
	}
	s.thumb = px
	s.persist(s.slices.SaveThumbnailSize(px))
}

// ThumbnailSize returns the persisted grid thumbnail size.
func (s *Session) ThumbnailSize() int { return s.thumb }

// SetSidebarWidth persists the sidebar width. Non-positive values are
// ignored.
func (s *Session) SetSidebarWidth(px int) {
	if px <= 0 {
		return
	}
	s.sidebarWidth = px
	s.persist(s.slices.SaveSidebarWidth(px))
}

// SidebarWidth returns the persisted sidebar width.
func (s *Session) SidebarWidth() int { return s.sidebarWidth }

// SetSidebarCollapsed persists the sidebar collapsed toggle.
func (s *Session) SetSidebarCollapsed(collapsed bool) {
	s.sidebarShut = collapsed
	s.persist(s.slices.SaveSidebarCollapsed(collapsed))
}

// SidebarCollapsed returns the persisted sidebar collapsed toggle.
func (s *Session) SidebarCollapsed() bool { return s.sidebarShut }

// SetSidebarOpen persists the mobile sidebar open state.
func (s *Session) SetSidebarOpen(open bool) {
	s.sidebarOpen = open
	s.persist(s.slices.SaveSidebarOpen(open))
}

// SidebarOpen returns the persisted mobile sidebar open state.
func (s *Session) SidebarOpen() bool { return s.sidebarOpen }

// persist logs store write failures; a failed write is not fatal to the
// in-memory session.
func (s *Session) persist(err error) {
	if err != nil {
		debug.Log(debug.STORE, "write-through failed: %v", err)
	}
}
