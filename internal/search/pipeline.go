// Package search implements the query + facet pipeline applied to a
// resolved item list. Facets AND together, values within one facet OR
// together, and a non-empty free-text query ANDs with the facet result.
// Sorting is applied strictly after filtering and is stable.
package search

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/curioapp/curio/internal/catalog"
	"github.com/curioapp/curio/internal/debug"
	"github.com/curioapp/curio/internal/placement"
)

// Orientation values for the single-select orientation facet.
const (
	OrientAny       = ""
	OrientLandscape = "landscape"
	OrientPortrait  = "portrait"
	OrientSquare    = "square"
)

// Filters is the fixed facet set. Zero value means no filtering.
type Filters struct {
	Colors        []string `json:"colors,omitempty"`
	Ratios        []string `json:"ratios,omitempty"`
	Orientation   string   `json:"orientation,omitempty"`
	FavoritesOnly bool     `json:"favoritesOnly,omitempty"`
	HasComments   bool     `json:"hasComments,omitempty"`
	HasTags       bool     `json:"hasTags,omitempty"`
}

// Active reports whether any facet is engaged.
func (f Filters) Active() bool {
	return len(f.Colors) > 0 || len(f.Ratios) > 0 || f.Orientation != OrientAny ||
		f.FavoritesOnly || f.HasComments || f.HasTags
}

// Sanitize drops invalid facet values instead of propagating them: unknown
// orientations reset to any, empty set entries are removed.
func (f Filters) Sanitize() Filters {
	switch f.Orientation {
	case OrientAny, OrientLandscape, OrientPortrait, OrientSquare:
	default:
		f.Orientation = OrientAny
	}
	f.Colors = dropEmpty(f.Colors)
	f.Ratios = dropEmpty(f.Ratios)
	return f
}

func dropEmpty(vals []string) []string {
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

// Run filters items by query and facets, then sorts. favs backs the
// favorites-only facet; meta may be nil, in which case the query never
// matches tags/comments and the has-comments/has-tags facets never match.
func Run(items []catalog.Asset, query string, f Filters, by Sort, favs placement.FavoriteSet, meta catalog.Metadata) []catalog.Asset {
	f = f.Sanitize()
	out := make([]catalog.Asset, 0, len(items))
	for _, a := range items {
		if !matchFacets(a, f, favs, meta) {
			continue
		}
		if query != "" && !matchQuery(a, query, meta) {
			continue
		}
		out = append(out, a)
	}
	debug.Log(debug.SEARCH, "run: %d of %d items match query=%q", len(out), len(items), query)
	sortAssets(out, by)
	return out
}

// matchQuery is a case-insensitive substring match over the title and the
// filename derived from the source uri, OR-ed with any tag or comment text.
func matchQuery(a catalog.Asset, query string, meta catalog.Metadata) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(filenameOf(a.SourceURI)), q) {
		return true
	}
	if meta != nil {
		for _, tag := range meta.Tags(a.ID) {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		for _, c := range meta.Comments(a.ID) {
			if strings.Contains(strings.ToLower(c), q) {
				return true
			}
		}
	}
	return false
}

// filenameOf extracts the last path segment of a source uri.
func filenameOf(uri string) string {
	if uri == "" {
		return ""
	}
	if u, err := url.Parse(uri); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(uri)
}

func matchFacets(a catalog.Asset, f Filters, favs placement.FavoriteSet, meta catalog.Metadata) bool {
	if len(f.Colors) > 0 && !containsFold(f.Colors, a.Color) {
		return false
	}
	if len(f.Ratios) > 0 && !containsFold(f.Ratios, a.Ratio) {
		return false
	}
	if f.Orientation != OrientAny && orientationOf(a.Ratio) != f.Orientation {
		return false
	}
	if f.FavoritesOnly && !favs[a.ID] {
		return false
	}
	if f.HasComments && (meta == nil || len(meta.Comments(a.ID)) == 0) {
		return false
	}
	if f.HasTags && (meta == nil || len(meta.Tags(a.ID)) == 0) {
		return false
	}
	return true
}

func containsFold(vals []string, v string) bool {
	for _, x := range vals {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

// orientationOf classifies a "W/H" ratio string. Unparseable ratios have no
// orientation and never match a set orientation facet.
func orientationOf(ratio string) string {
	w, h, ok := parseRatio(ratio)
	if !ok {
		return OrientAny
	}
	switch {
	case w > h:
		return OrientLandscape
	case h > w:
		return OrientPortrait
	default:
		return OrientSquare
	}
}

func parseRatio(ratio string) (w, h int, ok bool) {
	parts := strings.SplitN(ratio, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
