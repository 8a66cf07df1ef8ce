package categorize

import (
	"testing"

	"github.com/crimson-sun/scour/internal/engine/taxonomy"
	"github.com/crimson-sun/scour/internal/model"
)

func TestCategorizerAddsColumn(t *testing.T) {
	ds := model.New([]model.Column{{Name: "facility_type", Kind: model.Text}})
	for _, ft := range []any{"restaurant", "banquet hall", nil, "laundromat"} {
		ds.Append(model.Record{ft})
	}

	diag := model.NewDiagnostics()
	ds = New(taxonomy.New(taxonomy.DefaultCategories())).Apply(ds, diag)

	want := []string{"restaurant", "event", "unknown", "unknown"}
	for i, w := range want {
		if got := ds.Value(i, "facility_category"); got != w {
			t.Fatalf("row %d: got %v, want %q", i, got, w)
		}
	}
	if ds.NumRows() != 4 {
		t.Fatal("categorizer must not drop rows")
	}
	if ev := diag.Events()[0]; ev.Event != "uncategorized_facilities" || ev.Count != 2 {
		t.Fatalf("unexpected diagnostic: %+v", ev)
	}
}

func TestCategorizerMissingColumn(t *testing.T) {
	ds := model.New([]model.Column{{Name: "city", Kind: model.Text}})
	ds.Append(model.Record{"chicago"})

	ds = New(taxonomy.New(taxonomy.DefaultCategories())).Apply(ds, model.NewDiagnostics())
	if got := ds.Value(0, "facility_category"); got != "unknown" {
		t.Fatalf("absent facility_type should categorize as unknown, got %v", got)
	}
}
