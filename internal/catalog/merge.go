// Package catalog merges the built-in reference lists (fuel companies, fuel
// types, expense and income categories) with a user's custom entries.
package catalog

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"autoledger/internal/models"
)

// PseudoIDPrefix marks identifiers of synthesized, never-persisted entries.
const PseudoIDPrefix = "predefined-"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug lowercases name and replaces each run of whitespace with a hyphen.
func Slug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// PseudoID returns the deterministic identifier of a synthesized entry.
func PseudoID(name string) string {
	return PseudoIDPrefix + Slug(name)
}

// IsPseudoID reports whether id denotes a synthesized entry.
func IsPseudoID(id string) bool {
	return strings.HasPrefix(id, PseudoIDPrefix)
}

// Pseudo builds the synthesized entry for a built-in name.
func Pseudo(kind models.CatalogKind, name, userID string) models.CatalogEntry {
	id := PseudoID(name)
	return models.CatalogEntry{
		Base:         models.Base{ObjectID: id, ID: id},
		UserID:       userID,
		Kind:         kind,
		Name:         name,
		IsPredefined: true,
		Active:       true,
	}
}

// MatchPredefined returns the built-in name equal to name, comparing
// case-insensitively when fold is set.
func MatchPredefined(name string, predefined []string, fold bool) (string, bool) {
	for _, p := range predefined {
		if sameName(p, name, fold) {
			return p, true
		}
	}
	return "", false
}

// Merge returns custom followed by a synthesized entry for every built-in
// name not already present, sorted by name. No two returned entries share a
// name (under the fold rule).
func Merge(kind models.CatalogKind, custom []models.CatalogEntry, predefined []string, userID string, fold bool) []models.CatalogEntry {
	seen := make(map[string]struct{}, len(custom)+len(predefined))
	out := make([]models.CatalogEntry, 0, len(custom)+len(predefined))

	for _, e := range custom {
		key := nameKey(e.Name, fold)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}

	for _, name := range predefined {
		key := nameKey(name, fold)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Pseudo(kind, name, userID))
	}

	SortByName(out)
	return out
}

// SortByName sorts entries by name using locale-aware collation.
func SortByName(entries []models.CatalogEntry) {
	// Collators are not safe for concurrent use.
	c := collate.New(language.English)
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Name, entries[j].Name) < 0
	})
}

func sameName(a, b string, fold bool) bool {
	if fold {
		return strings.EqualFold(a, b)
	}
	return a == b
}

func nameKey(name string, fold bool) string {
	if fold {
		return strings.ToLower(name)
	}
	return name
}
