package app

import (
	"sort"

	"github.com/curioapp/curio/internal/debug"
)

// Selection is the tracked multi-select set. It is ephemeral: never
// persisted, cleared on explicit clear, Escape, folder navigation, and
// successful bulk move.
type Selection struct {
	ids map[string]bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]bool)}
}

// Toggle flips membership for one asset id.
func (s *Selection) Toggle(assetID string) {
	if s.ids[assetID] {
		delete(s.ids, assetID)
	} else {
		s.ids[assetID] = true
	}
	debug.Log(debug.APP, "selection: toggle %s (now %d)", assetID, len(s.ids))
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]bool)
}

// Has reports membership.
func (s *Selection) Has(assetID string) bool {
	return s.ids[assetID]
}

// Len returns the selection size.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids, sorted for deterministic iteration.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// TargetIDs implements the drag/click parity rule: acting on actedID while
// a non-empty selection exists applies to the whole selection when actedID
// is a member of it, otherwise to actedID alone.
func (s *Selection) TargetIDs(actedID string) []string {
	if len(s.ids) > 0 && s.ids[actedID] {
		return s.IDs()
	}
	return []string{actedID}
}
