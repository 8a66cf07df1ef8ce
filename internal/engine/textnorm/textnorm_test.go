package textnorm

import (
	"testing"

	"github.com/crimson-sun/scour/internal/model"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Pass w/ Conditions", "pass w  conditions"}, // slash leaves two spaces
		{"RISK 1 (HIGH)", "risk 1 (high)"},
		{"  Chicago \n", "chicago"},
		{"foo\tbar", "foo bar"},
		{"a/b-c", "a b c"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Pass w/ Conditions",
		"Risk 2 (Medium)",
		"TAQUERIA  EL  PASO",
		"3 4 employee must wash hands . 38 proper cooling",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestNormalizerStage(t *testing.T) {
	ds := model.New([]model.Column{
		{Name: "city", Kind: model.Text},
		{Name: "zip", Kind: model.Text}, // not a text column: untouched
	})
	ds.Append(model.Record{"CHICAGO", "60614"})
	ds.Append(model.Record{nil, "60615"})

	ds = NewNormalizer().Apply(ds, model.NewDiagnostics())
	if got := ds.Value(0, "city"); got != "chicago" {
		t.Fatalf("city = %v", got)
	}
	if got := ds.Value(1, "city"); got != nil {
		t.Fatalf("null should pass through, got %v", got)
	}
	if got := ds.Value(0, "zip"); got != "60614" {
		t.Fatalf("zip should be untouched, got %v", got)
	}
	if ds.NumRows() != 2 {
		t.Fatal("normalization must not change the row count")
	}
}

func TestConsolidatorCity(t *testing.T) {
	ds := model.New([]model.Column{{Name: "city", Kind: model.Text}})
	for _, c := range []any{"chicago", "chicagoo", "cchicago", "berwyn", "cicero", nil} {
		ds.Append(model.Record{c})
	}

	ds = NewConsolidator([]string{"chicago", "berwyn"}, 0.8).Apply(ds, model.NewDiagnostics())
	want := []any{"chicago", "chicago", "chicago", "berwyn", "cicero", nil}
	for i, w := range want {
		if got := ds.Value(i, "city"); got != w {
			t.Fatalf("row %d: got %v, want %v", i, got, w)
		}
	}
}

func TestConsolidatorRisk(t *testing.T) {
	ds := model.New([]model.Column{{Name: "risk", Kind: model.Text}})
	for _, r := range []any{"risk 1 high", "risk 2 medium", "risk 3 low", "all", nil} {
		ds.Append(model.Record{r})
	}

	ds = NewConsolidator([]string{"chicago"}, 0.8).Apply(ds, model.NewDiagnostics())
	want := []any{"high", "medium", "low", "all", nil}
	for i, w := range want {
		if got := ds.Value(i, "risk"); got != w {
			t.Fatalf("row %d: got %v, want %v", i, got, w)
		}
	}
}

func TestRewriter(t *testing.T) {
	ds := model.New([]model.Column{{Name: "inspection_type", Kind: model.Text}})
	for _, v := range []any{"license reinspection", "canvass", nil} {
		ds.Append(model.Record{v})
	}

	ds = NewRewriter("inspection_type", "license reinspection", "license").Apply(ds, model.NewDiagnostics())
	if got := ds.Value(0, "inspection_type"); got != "license" {
		t.Fatalf("got %v", got)
	}
	if got := ds.Value(1, "inspection_type"); got != "canvass" {
		t.Fatalf("got %v", got)
	}
	if got := ds.Value(2, "inspection_type"); got != nil {
		t.Fatalf("got %v", got)
	}
}

func TestRewriterAbsentColumn(t *testing.T) {
	ds := model.New([]model.Column{{Name: "other", Kind: model.Text}})
	ds.Append(model.Record{"x"})
	ds = NewRewriter("results", "pass w conditions", "pass_w_conditions").Apply(ds, model.NewDiagnostics())
	if ds.Value(0, "other") != "x" {
		t.Fatal("absent column rewrite must be a no-op")
	}
}
