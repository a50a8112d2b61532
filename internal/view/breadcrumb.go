package view

import (
	"github.com/curioapp/curio/internal/folder"
)

// maxVisibleCrumbs is the chain length above which the middle collapses
// behind an ellipsis.
const maxVisibleCrumbs = 3

// Crumb is one navigable breadcrumb segment. FullLabel is the standalone
// label a segment shows when surfaced out of context (e.g. from an expanded
// ellipsis): "All files / <name>".
type Crumb struct {
	ID        ID
	Label     string
	FullLabel string
}

// Trail is the breadcrumb chain for a selected view. When Truncated, Crumbs
// holds first + last two and Hidden holds the collapsed middle segments,
// each independently navigable.
type Trail struct {
	Crumbs    []Crumb
	Truncated bool
	Hidden    []Crumb
}

// Breadcrumbs resolves the selected view id into its display trail.
//
// Real folders produce the full ancestor chain (root to self) from the path
// index. System views produce a fixed two-segment "All files / <view>"
// trail. The all view produces an empty trail. Smart folders are navigable
// like folders but have no ancestry, so they also get the two-segment form.
func Breadcrumbs(id ID, idx folder.Indexes, smartName func(string) (string, bool)) Trail {
	switch id.Kind() {
	case KindSystem:
		if id.IsAll() {
			return Trail{}
		}
		return twoSegment(id, id.Sys().Label())

	case KindSmart:
		name := id.SmartID()
		if smartName != nil {
			if n, ok := smartName(id.SmartID()); ok {
				name = n
			}
		}
		return twoSegment(id, name)

	case KindPhysical:
		path := idx.Paths[id.FolderID()]
		crumbs := make([]Crumb, 0, len(path))
		for _, fid := range path {
			name := idx.ByID[fid].Name
			crumbs = append(crumbs, Crumb{
				ID:        Physical(fid),
				Label:     name,
				FullLabel: "All files / " + name,
			})
		}
		return truncate(crumbs)
	}
	return Trail{}
}

func twoSegment(id ID, label string) Trail {
	return Trail{Crumbs: []Crumb{
		{ID: SystemView(SystemAll), Label: "All files", FullLabel: "All files"},
		{ID: id, Label: label, FullLabel: "All files / " + label},
	}}
}

// truncate keeps first + last two when the chain is longer than the visible
// budget; the hidden middle stays navigable behind the ellipsis.
func truncate(crumbs []Crumb) Trail {
	if len(crumbs) <= maxVisibleCrumbs {
		return Trail{Crumbs: crumbs}
	}
	visible := make([]Crumb, 0, maxVisibleCrumbs)
	visible = append(visible, crumbs[0])
	visible = append(visible, crumbs[len(crumbs)-2:]...)
	return Trail{
		Crumbs:    visible,
		Truncated: true,
		Hidden:    crumbs[1 : len(crumbs)-2],
	}
}
