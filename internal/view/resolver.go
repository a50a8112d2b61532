package view

import (
	"github.com/curioapp/curio/internal/catalog"
	"github.com/curioapp/curio/internal/debug"
	"github.com/curioapp/curio/internal/folder"
	"github.com/curioapp/curio/internal/placement"
	"github.com/curioapp/curio/internal/smart"
)

// Resolution is the result of one pass over the merged catalog: per concrete
// folder id (real folders and the four system views) the ordered member list
// and count. Smart folder sets are not precomputed; they fall out of the
// resolved "all" list on demand.
type Resolution struct {
	members map[string][]catalog.Asset
	counts  map[string]int
}

// Resolve walks the merged catalog once, applying placement overrides, and
// buckets every asset by its effective folder. Catalog order (imported
// first) is preserved within each bucket.
func Resolve(assets []catalog.Asset, ov placement.Overrides, favs placement.FavoriteSet, folderExists func(string) bool) *Resolution {
	r := &Resolution{
		members: make(map[string][]catalog.Asset),
		counts:  make(map[string]int),
	}
	for _, a := range assets {
		eff := placement.EffectiveFolder(a, ov, folderExists)

		if eff != placement.Trash {
			r.members[placement.All] = append(r.members[placement.All], a)
			if favs[a.ID] {
				r.members[placement.Favorites] = append(r.members[placement.Favorites], a)
			}
		}
		// The effective bucket itself: trash, purchases, or a real folder.
		// "all" is already covered above; favorites membership comes only
		// from the favorite set, never from an asset's folder id.
		if eff != placement.All && eff != placement.Favorites {
			r.members[eff] = append(r.members[eff], a)
		}
	}
	for id, list := range r.members {
		r.counts[id] = len(list)
	}
	debug.Log(debug.VIEW, "resolve: %d assets across %d buckets", len(assets), len(r.members))
	return r
}

// Count returns the member count for a concrete folder id.
func (r *Resolution) Count(id string) int {
	return r.counts[id]
}

// Members returns the ordered member list for a concrete folder id. The
// returned slice is shared; callers must not mutate it.
func (r *Resolution) Members(id string) []catalog.Asset {
	return r.members[id]
}

// Items computes the item list for the selected view.
//
// Physical folders apply cover pinning: when the folder's configured cover
// asset is present in the resolved list and not already first, it moves to
// index 0; otherwise catalog order is preserved. Smart folders filter the
// resolved "all" list through their definition. System views return their
// precomputed bucket.
func (r *Resolution) Items(id ID, defs []smart.Definition, covers placement.CoverMap) []catalog.Asset {
	switch id.Kind() {
	case KindPhysical:
		list := r.members[id.FolderID()]
		if cover, ok := covers[id.FolderID()]; ok {
			return pinFirst(list, cover)
		}
		return list
	case KindSmart:
		for _, def := range defs {
			if def.ID == id.SmartID() {
				return smart.Filter(r.members[placement.All], def)
			}
		}
		return nil
	case KindSystem:
		return r.members[id.String()]
	}
	return nil
}

// pinFirst moves the asset with the given id to the front, preserving the
// relative order of everything else. No-op when absent or already first.
func pinFirst(list []catalog.Asset, assetID string) []catalog.Asset {
	idx := -1
	for i, a := range list {
		if a.ID == assetID {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return list
	}
	out := make([]catalog.Asset, 0, len(list))
	out = append(out, list[idx])
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	return out
}

// Subfolder annotates an immediate tree child with its resolved count and
// optional cover asset.
type Subfolder struct {
	ID           string
	Name         string
	Count        int
	CoverAssetID string // empty when no cover is configured
}

// Subfolders lists the immediate children of a real folder, each annotated
// with its resolved member count and cover thumbnail reference.
func (r *Resolution) Subfolders(folderID string, idx folder.Indexes, covers placement.CoverMap) []Subfolder {
	node, ok := idx.ByID[folderID]
	if !ok {
		return nil
	}
	out := make([]Subfolder, 0, len(node.Children))
	for _, c := range node.Children {
		out = append(out, Subfolder{
			ID:           c.ID,
			Name:         c.Name,
			Count:        r.counts[c.ID],
			CoverAssetID: covers[c.ID],
		})
	}
	return out
}
