// Package categorize derives the facility_category column from the
// free-text facility_type description.
package categorize

import (
	"github.com/crimson-sun/scour/internal/engine/taxonomy"
	"github.com/crimson-sun/scour/internal/model"
)

// Categorizer maps facility_type values through the taxonomy table into a
// new facility_category column. Never drops rows.
type Categorizer struct {
	tax *taxonomy.Taxonomy
}

// New creates the categorization stage.
func New(tax *taxonomy.Taxonomy) *Categorizer {
	return &Categorizer{tax: tax}
}

func (c *Categorizer) Name() string { return "categorizer" }

func (c *Categorizer) Apply(ds *model.Dataset, diag *model.Diagnostics) *model.Dataset {
	values := make([]any, ds.NumRows())
	unknown := 0
	for i := range values {
		desc, _ := ds.Value(i, "facility_type").(string)
		cat := c.tax.Categorize(desc)
		if cat == taxonomy.Unknown {
			unknown++
		}
		values[i] = cat
	}
	ds.AddColumn(model.Column{Name: "facility_category", Kind: model.Text}, values)
	diag.Record(c.Name(), "uncategorized_facilities", unknown)
	return ds
}
