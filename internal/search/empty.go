package search

import "github.com/curioapp/curio/internal/view"

// EmptyKind classifies what an empty result should display.
type EmptyKind int

const (
	// EmptyNone: the result is not empty, show it.
	EmptyNone EmptyKind = iota
	// EmptyNoResults: the generic "no results" message.
	EmptyNoResults
	// EmptyTrash: the trash view's contextual empty state.
	EmptyTrash
	// EmptyPurchases: the purchases view's contextual empty state.
	EmptyPurchases
)

// EmptyState decides which empty state to show for a filtered result.
// The contextual trash/purchases states take precedence over the generic
// message, but only when no query or filter is active: an empty filtered
// trash still reads "no results".
func EmptyState(id view.ID, query string, f Filters, resultLen int) EmptyKind {
	if resultLen > 0 {
		return EmptyNone
	}
	if query == "" && !f.Active() && id.Kind() == view.KindSystem {
		switch id.Sys() {
		case view.SystemTrash:
			return EmptyTrash
		case view.SystemPurchases:
			return EmptyPurchases
		}
	}
	return EmptyNoResults
}
