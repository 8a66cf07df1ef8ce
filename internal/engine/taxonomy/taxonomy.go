// Package taxonomy defines the facility category table: an ordered sequence
// of (category, keywords) pairs. Ordering matters: categories are not
// mutually exclusive by content, and the first match in declaration order
// wins, so the table is a slice, never a map.
package taxonomy

import "strings"

// Unknown is returned for null, empty, and unmatched facility descriptions.
const Unknown = "unknown"

// Category is one entry of the table: a name and the substrings that
// trigger it.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy resolves free-text facility descriptions to category names.
type Taxonomy struct {
	categories []Category
}

// New creates a Taxonomy from an ordered category table.
func New(categories []Category) *Taxonomy {
	return &Taxonomy{categories: categories}
}

// Categories returns the table in declaration order.
func (t *Taxonomy) Categories() []Category {
	return append([]Category(nil), t.categories...)
}

// Categorize returns the first category whose keyword list has a substring
// match in the lowercased description, or Unknown.
func (t *Taxonomy) Categorize(description string) string {
	if description == "" {
		return Unknown
	}
	description = strings.ToLower(description)
	for _, c := range t.categories {
		for _, kw := range c.Keywords {
			if strings.Contains(description, kw) {
				return c.Name
			}
		}
	}
	return Unknown
}
