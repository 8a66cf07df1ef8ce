package scour

import (
	"sort"

	"github.com/crimson-sun/scour/internal/engine"
	"github.com/crimson-sun/scour/internal/engine/taxonomy"
	"github.com/crimson-sun/scour/internal/model"
)

// Category is one entry of the facility taxonomy: a name and the substrings
// that trigger it. Entries are matched in order, first match wins.
type Category struct {
	Name     string
	Keywords []string
}

// Diagnostic is one observability event emitted by a cleaning stage.
type Diagnostic struct {
	Stage string
	Event string
	Count int
}

// Report summarizes one cleaning run.
type Report struct {
	RunID  string
	Events []Diagnostic
}

// Scour is the inspection-record cleaning engine.
// Safe for concurrent use.
type Scour struct {
	engine *engine.Engine
}

// New creates a Scour instance with the standard stage sequence.
func New(opts ...Option) *Scour {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := engine.Config{
		CityCandidates: o.cityCandidates,
		CityCutoff:     o.cityCutoff,
	}
	if o.categories != nil {
		cats := make([]taxonomy.Category, len(o.categories))
		for i, c := range o.categories {
			cats[i] = taxonomy.Category{Name: c.Name, Keywords: c.Keywords}
		}
		cfg.Categories = cats
	}
	return &Scour{engine: engine.Default(cfg)}
}

// Clean runs the full cleaning sequence over raw records given as
// name-to-value maps. String cells carry text, nil cells are nulls; numeric
// cells are accepted for the geographic columns. Returns the surviving
// records in input order together with a run report.
func (s *Scour) Clean(rows []map[string]any) ([]map[string]any, Report) {
	ds := datasetFromMaps(rows)
	cleaned, diag := s.engine.Clean(ds)

	out := make([]map[string]any, cleaned.NumRows())
	for i := range out {
		out[i] = cleaned.RowMap(i)
	}
	return out, reportFrom(diag)
}

// datasetFromMaps builds a text dataset over the sorted union of row keys.
func datasetFromMaps(rows []map[string]any) *model.Dataset {
	seen := map[string]bool{}
	for _, row := range rows {
		for k := range row {
			seen[k] = true
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)

	cols := make([]model.Column, len(names))
	for i, n := range names {
		cols[i] = model.Column{Name: n, Kind: model.Text}
	}
	ds := model.New(cols)
	for _, row := range rows {
		ds.AppendMap(row)
	}
	return ds
}

func reportFrom(diag *model.Diagnostics) Report {
	events := diag.Events()
	out := make([]Diagnostic, len(events))
	for i, ev := range events {
		out[i] = Diagnostic{Stage: ev.Stage, Event: ev.Event, Count: ev.Count}
	}
	return Report{RunID: diag.RunID(), Events: out}
}
