// Package placement tracks where assets live: explicit per-asset folder
// overrides, the favorite set, and folder cover assignments. Overrides
// supersede an asset's base folder; favorites and covers are orthogonal to
// placement.
package placement

import "github.com/curioapp/curio/internal/catalog"

// Well-known system folder ids an override or base folder may point at.
const (
	All       = "all"
	Favorites = "favorites"
	Purchases = "purchases"
	Trash     = "trash"
)

// IsSystemID reports whether id names one of the fixed system views.
func IsSystemID(id string) bool {
	switch id {
	case All, Favorites, Purchases, Trash:
		return true
	}
	return false
}

// Overrides maps asset id to folder id. Entries are written by move, drag,
// soft-delete, and restore, and are never auto-pruned: an override whose
// target folder has since been deleted stays in the map and is resolved to
// "all" at read time.
type Overrides map[string]string

// Set records an override for the asset.
func (o Overrides) Set(assetID, folderID string) {
	o[assetID] = folderID
}

// Get returns the override for the asset, if any.
func (o Overrides) Get(assetID string) (string, bool) {
	id, ok := o[assetID]
	return id, ok
}

// Clone returns a copy, so resolved snapshots are not aliased to live state.
func (o Overrides) Clone() Overrides {
	out := make(Overrides, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// EffectiveFolder resolves the folder an asset currently belongs to:
// the override when present, else the base folder, else "all". A pure
// function of {asset, overrides, live folder set}; folderExists reports
// whether an id names a live real folder, so dangling overrides and
// dangling base folders both degrade to "all" instead of losing the asset.
func EffectiveFolder(a catalog.Asset, o Overrides, folderExists func(string) bool) string {
	if id, ok := o[a.ID]; ok {
		return normalize(id, folderExists)
	}
	if a.FolderID != "" {
		return normalize(a.FolderID, folderExists)
	}
	return All
}

func normalize(id string, folderExists func(string) bool) string {
	if IsSystemID(id) {
		return id
	}
	if folderExists != nil && folderExists(id) {
		return id
	}
	return All
}

// FavoriteSet is the set of favorited asset ids.
type FavoriteSet map[string]bool

// NewFavoriteSet builds a set from a persisted id list.
func NewFavoriteSet(ids []string) FavoriteSet {
	s := make(FavoriteSet, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// Toggle flips membership for one asset and reports the new state.
func (s FavoriteSet) Toggle(assetID string) bool {
	if s[assetID] {
		delete(s, assetID)
		return false
	}
	s[assetID] = true
	return true
}

// IDs returns the favorited ids in unspecified order, for persistence.
func (s FavoriteSet) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// CoverMap maps folder id to the asset chosen to represent it. Purely
// presentational: no membership effect.
type CoverMap map[string]string
