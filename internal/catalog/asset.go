// Package catalog provides the read-only asset catalog: the ordered list of
// assets the rest of the engine resolves views over. The engine never
// mutates the catalog; it only merges an imported subset ahead of it.
package catalog

// Asset is one catalog record. All fields are read-only from the engine's
// perspective.
type Asset struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	SourceURI string `json:"sourceUri"`
	Ratio     string `json:"ratio"`    // e.g. "16/9"
	FolderID  string `json:"folderId"` // base folder; empty means unfiled
	Color     string `json:"color"`    // hex, e.g. "#aabbcc"
}

// Metadata is the optional per-asset metadata collaborator. Tags and
// comments widen search matching and power the has-comments/has-tags
// facets. A nil Metadata must degrade gracefully: those facets simply
// never match.
type Metadata interface {
	Tags(assetID string) []string
	Comments(assetID string) []string
}

// Merge places imported assets ahead of the base catalog, deduplicated by
// source uri with imported winning. Order within each list is preserved.
func Merge(imported, base []Asset) []Asset {
	merged := make([]Asset, 0, len(imported)+len(base))
	seen := make(map[string]bool, len(imported))

	for _, a := range imported {
		if a.SourceURI != "" && seen[a.SourceURI] {
			continue
		}
		seen[a.SourceURI] = true
		merged = append(merged, a)
	}
	for _, a := range base {
		if a.SourceURI != "" && seen[a.SourceURI] {
			continue
		}
		merged = append(merged, a)
	}
	return merged
}

// MapMetadata is a map-backed Metadata implementation, handy for tests and
// for catalogs loaded from a sidecar file.
type MapMetadata struct {
	TagsByID     map[string][]string
	CommentsByID map[string][]string
}

func (m *MapMetadata) Tags(assetID string) []string {
	if m == nil {
		return nil
	}
	return m.TagsByID[assetID]
}

func (m *MapMetadata) Comments(assetID string) []string {
	if m == nil {
		return nil
	}
	return m.CommentsByID[assetID]
}
