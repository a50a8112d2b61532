// Package view computes, per selected view, the effective item set the
// caller displays. A view id is one of three disjoint kinds: a physical
// folder from the tree, a smart folder, or one of the four fixed system
// views. The kinds form an explicit tagged union so membership, labels and
// breadcrumbs are matched exhaustively instead of via string sniffing.
package view

import (
	"github.com/curioapp/curio/internal/placement"
	"github.com/curioapp/curio/internal/smart"
)

// Kind tags the view id union.
type Kind int

const (
	KindPhysical Kind = iota
	KindSmart
	KindSystem
)

// System enumerates the fixed pseudo-folders.
type System int

const (
	SystemAll System = iota
	SystemFavorites
	SystemPurchases
	SystemTrash
)

// ID identifies a navigable view.
type ID struct {
	kind Kind
	raw  string // physical folder id or full smart id
	sys  System
}

// Physical wraps a folder tree id.
func Physical(folderID string) ID {
	return ID{kind: KindPhysical, raw: folderID}
}

// Smart wraps a smart folder id.
func Smart(smartID string) ID {
	return ID{kind: KindSmart, raw: smartID}
}

// SystemView wraps a system view.
func SystemView(s System) ID {
	return ID{kind: KindSystem, sys: s}
}

// ParseID maps a raw id string to the union. The system view words and the
// smart prefix are reserved; everything else is a physical folder id.
func ParseID(s string) ID {
	switch s {
	case placement.All, "":
		return SystemView(SystemAll)
	case placement.Favorites:
		return SystemView(SystemFavorites)
	case placement.Purchases:
		return SystemView(SystemPurchases)
	case placement.Trash:
		return SystemView(SystemTrash)
	}
	if smart.IsSmartID(s) {
		return Smart(s)
	}
	return Physical(s)
}

// Kind returns the union tag.
func (id ID) Kind() Kind { return id.kind }

// Sys returns the system view; only meaningful when Kind is KindSystem.
func (id ID) Sys() System { return id.sys }

// FolderID returns the physical folder id; only meaningful for KindPhysical.
func (id ID) FolderID() string { return id.raw }

// SmartID returns the smart folder id; only meaningful for KindSmart.
func (id ID) SmartID() string { return id.raw }

// String renders the id back to its wire form. Round-trips with ParseID.
func (id ID) String() string {
	switch id.kind {
	case KindSmart, KindPhysical:
		return id.raw
	case KindSystem:
		switch id.sys {
		case SystemFavorites:
			return placement.Favorites
		case SystemPurchases:
			return placement.Purchases
		case SystemTrash:
			return placement.Trash
		default:
			return placement.All
		}
	}
	return placement.All
}

// IsAll reports whether this is the root "all items" view.
func (id ID) IsAll() bool {
	return id.kind == KindSystem && id.sys == SystemAll
}

// IsTrash reports whether this is the trash view.
func (id ID) IsTrash() bool {
	return id.kind == KindSystem && id.sys == SystemTrash
}

// Label returns the display name of a system view.
func (s System) Label() string {
	switch s {
	case SystemFavorites:
		return "Favorites"
	case SystemPurchases:
		return "Purchases"
	case SystemTrash:
		return "Trash"
	default:
		return "All files"
	}
}
