// Package textnorm holds the per-value text stages: normalization,
// categorical value consolidation, and literal label rewrites.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/scour/internal/fuzzy"
	"github.com/crimson-sun/scour/internal/model"
)

// The free-text columns subject to normalization, when present.
var textColumns = []string{
	"dba_name", "facility_type", "risk", "address", "city",
	"state", "inspection_type", "results", "violations",
}

var charReplacer = strings.NewReplacer(
	"\n", " ",
	"\t", " ",
	"/", " ",
	"-", " ",
)

// Normalize canonicalizes one text value: NFKC fold, lowercase, trim, and
// newline/tab/slash/hyphen to single spaces. No collapsing of repeated
// spaces; consecutive substitutions may leave runs of them. Idempotent.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	return charReplacer.Replace(s)
}

// Normalizer applies Normalize to every text column present in the schema.
// Pure per-value map: never changes the row count.
type Normalizer struct{}

// NewNormalizer creates the text-normalization stage.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func (n *Normalizer) Name() string { return "text_normalizer" }

func (n *Normalizer) Apply(ds *model.Dataset, _ *model.Diagnostics) *model.Dataset {
	for _, col := range textColumns {
		ds.MapColumn(col, func(v any) any {
			s, ok := v.(string)
			if !ok {
				return v // nulls and non-text cells pass through
			}
			return Normalize(s)
		})
	}
	return ds
}

// Consolidator remaps already-normalized categorical values: city by fuzzy
// match against a candidate set, risk by exact table lookup. Unmatched
// values pass through unchanged.
type Consolidator struct {
	cities []string
	cutoff float64
}

var riskLabels = map[string]string{
	"risk 1 high":   "high",
	"risk 2 medium": "medium",
	"risk 3 low":    "low",
}

// NewConsolidator creates the value-consolidation stage. candidates and
// cutoff come from configuration so deployments can tune them.
func NewConsolidator(candidates []string, cutoff float64) *Consolidator {
	return &Consolidator{cities: candidates, cutoff: cutoff}
}

func (c *Consolidator) Name() string { return "value_consolidator" }

func (c *Consolidator) Apply(ds *model.Dataset, diag *model.Diagnostics) *model.Dataset {
	remapped := 0
	ds.MapColumn("city", func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		if match, ok := fuzzy.ClosestMatch(s, c.cities, c.cutoff); ok && match != s {
			remapped++
			return match
		}
		return s
	})
	diag.Record(c.Name(), "remapped_city_values", remapped)

	ds.MapColumn("risk", func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		if mapped, ok := riskLabels[s]; ok {
			return mapped
		}
		return s
	})
	return ds
}

// Rewriter replaces a literal substring within one column. Runs after
// normalization, so patterns are matched against lowercased text. A no-op
// when the column is absent.
type Rewriter struct {
	column string
	old    string
	new    string
}

// NewRewriter creates a single-substitution label rewrite stage.
func NewRewriter(column, old, new string) *Rewriter {
	return &Rewriter{column: column, old: old, new: new}
}

func (r *Rewriter) Name() string { return "rewrite_" + r.column }

func (r *Rewriter) Apply(ds *model.Dataset, _ *model.Diagnostics) *model.Dataset {
	ds.MapColumn(r.column, func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}
		return strings.ReplaceAll(s, r.old, r.new)
	})
	return ds
}
