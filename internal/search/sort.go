package search

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/curioapp/curio/internal/catalog"
)

// Sort is the persisted sort order enum.
type Sort string

const (
	SortNameAsc  Sort = "name-asc"
	SortNameDesc Sort = "name-desc"
	SortIDAsc    Sort = "id-asc"
	SortIDDesc   Sort = "id-desc"
	SortHueAsc   Sort = "hue-asc"
	SortHueDesc  Sort = "hue-desc"
)

// DefaultSort is applied when nothing valid is persisted.
const DefaultSort = SortNameAsc

// ValidSort reports whether s is one of the known orders.
func ValidSort(s Sort) bool {
	switch s {
	case SortNameAsc, SortNameDesc, SortIDAsc, SortIDDesc, SortHueAsc, SortHueDesc:
		return true
	}
	return false
}

// sortAssets orders items in place, stably, strictly after filtering.
func sortAssets(items []catalog.Asset, by Sort) {
	var less func(a, b catalog.Asset) bool
	switch by {
	case SortNameDesc:
		less = func(a, b catalog.Asset) bool {
			return strings.ToLower(a.Title) > strings.ToLower(b.Title)
		}
	case SortIDAsc:
		less = func(a, b catalog.Asset) bool { return a.ID < b.ID }
	case SortIDDesc:
		less = func(a, b catalog.Asset) bool { return a.ID > b.ID }
	case SortHueAsc:
		less = func(a, b catalog.Asset) bool { return hueOf(a.Color) < hueOf(b.Color) }
	case SortHueDesc:
		less = func(a, b catalog.Asset) bool { return hueOf(a.Color) > hueOf(b.Color) }
	default: // SortNameAsc
		less = func(a, b catalog.Asset) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// hueOf maps a hex color to its HSV hue in degrees. Colorless or
// unparseable values sort last under ascending order.
func hueOf(hex string) float64 {
	if hex == "" {
		return 361
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 361
	}
	h, _, _ := c.Hsv()
	return h
}
