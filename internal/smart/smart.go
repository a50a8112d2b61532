// Package smart implements rule-derived folders. A smart folder is a saved
// rule set producing dynamic membership over the catalog; it is not a tree
// node, but callers can navigate it exactly like a real folder.
package smart

import (
	"strings"

	"github.com/curioapp/curio/internal/catalog"
	"github.com/google/uuid"
)

// IDPrefix marks smart folder ids, keeping them disjoint from the folder
// tree and system view id spaces.
const IDPrefix = "smart:"

// Rule fields.
const (
	FieldRatio    = "ratio"
	FieldName     = "name"
	FieldKeywords = "keywords"
)

// Rule operators.
const (
	OpIs       = "is"       // case-sensitive exact match
	OpContains = "contains" // case-insensitive substring match
)

// Rule is a single field/operator/value predicate.
type Rule struct {
	Field string `json:"field"`
	Op    string `json:"operator"`
	Value string `json:"value"`
}

// Definition is a named, ordered rule list. Rules AND together.
type Definition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Rules []Rule `json:"rules"`
}

// MintID returns a fresh smart folder id.
func MintID() string {
	return IDPrefix + uuid.NewString()
}

// IsSmartID reports whether id lives in the smart folder namespace.
func IsSmartID(id string) bool {
	return strings.HasPrefix(id, IDPrefix)
}

// Matches reports whether the asset satisfies every rule of the definition.
// A definition with no rules matches everything.
func Matches(a catalog.Asset, def Definition) bool {
	for _, r := range def.Rules {
		if !evalRule(a, r) {
			return false
		}
	}
	return true
}

// Filter returns the assets matching the definition, preserving input order.
func Filter(assets []catalog.Asset, def Definition) []catalog.Asset {
	var out []catalog.Asset
	for _, a := range assets {
		if Matches(a, def) {
			out = append(out, a)
		}
	}
	return out
}

// evalRule evaluates one rule against one asset. Unknown fields never match.
func evalRule(a catalog.Asset, r Rule) bool {
	var subject string
	switch r.Field {
	case FieldRatio:
		subject = a.Ratio
	case FieldName, FieldKeywords:
		subject = a.Title
	default:
		return false
	}

	switch r.Op {
	case OpIs:
		return subject == r.Value
	case OpContains:
		return strings.Contains(strings.ToLower(subject), strings.ToLower(r.Value))
	default:
		return false
	}
}
