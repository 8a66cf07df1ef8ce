// Package engine runs the ordered cleaning stages over a dataset.
package engine

import (
	"github.com/crimson-sun/scour/internal/engine/categorize"
	"github.com/crimson-sun/scour/internal/engine/filter"
	"github.com/crimson-sun/scour/internal/engine/geo"
	"github.com/crimson-sun/scour/internal/engine/taxonomy"
	"github.com/crimson-sun/scour/internal/engine/textnorm"
	"github.com/crimson-sun/scour/internal/engine/violations"
	"github.com/crimson-sun/scour/internal/logging"
	"github.com/crimson-sun/scour/internal/model"
)

// Stage is one transformation pass over the full dataset. A stage owns the
// dataset it receives and returns the dataset for the next stage. Stages
// never fail: malformed cells coerce to null and are handled by filters.
type Stage interface {
	Name() string
	Apply(ds *model.Dataset, diag *model.Diagnostics) *model.Dataset
}

// Config holds the tunable knobs of the standard stage sequence.
type Config struct {
	CityCandidates []string            // consolidation targets for the city column
	CityCutoff     float64             // similarity cutoff in [0, 1]
	Categories     []taxonomy.Category // facility taxonomy; nil = built-in table
}

// DefaultConfig returns the knobs the upstream system ran with.
func DefaultConfig() Config {
	return Config{
		CityCandidates: []string{"chicago", "berwyn"},
		CityCutoff:     0.8,
	}
}

// Engine applies an ordered sequence of stages to a dataset.
type Engine struct {
	stages []Stage
}

// New creates an Engine from an explicit stage sequence.
func New(stages ...Stage) *Engine {
	return &Engine{stages: stages}
}

// Default creates an Engine with the standard nine-stage cleaning sequence.
func Default(cfg Config) *Engine {
	cats := cfg.Categories
	if cats == nil {
		cats = taxonomy.DefaultCategories()
	}
	return New(
		filter.NewDropper(),
		filter.NewIdentifier(),
		textnorm.NewNormalizer(),
		textnorm.NewConsolidator(cfg.CityCandidates, cfg.CityCutoff),
		categorize.New(taxonomy.New(cats)),
		textnorm.NewRewriter("inspection_type", "license reinspection", "license"),
		textnorm.NewRewriter("results", "pass w conditions", "pass_w_conditions"),
		geo.New(),
		violations.New(),
	)
}

// Clean runs every stage in order and returns the final dataset together
// with the diagnostics collected along the way. An empty input produces an
// empty output, not an error; degraded runs stay visible in the diagnostics.
func (e *Engine) Clean(ds *model.Dataset) (*model.Dataset, *model.Diagnostics) {
	diag := model.NewDiagnostics()
	log := logging.ForRun(diag.RunID())

	log.Info("cleaning started", "rows", ds.NumRows(), "columns", len(ds.Columns()))
	for _, s := range e.stages {
		before := ds.NumRows()
		ds = s.Apply(ds, diag)
		log.Debug("stage complete", "stage", s.Name(), "rows_in", before, "rows_out", ds.NumRows())
	}

	for _, ev := range diag.Events() {
		log.Info("stage diagnostic", "stage", ev.Stage, "event", ev.Event, "count", ev.Count)
	}
	log.Info("cleaning finished", "rows", ds.NumRows(), "columns", len(ds.Columns()))
	return ds, diag
}
