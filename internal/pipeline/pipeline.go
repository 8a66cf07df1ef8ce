package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/crimson-sun/scour/internal/connector"
	"github.com/crimson-sun/scour/internal/engine"
	"github.com/crimson-sun/scour/internal/model"
	"github.com/crimson-sun/scour/internal/output"
)

// Pipeline connects a source, the cleaning engine, and an output into one
// batch run: read the day's extract, clean it, write it.
type Pipeline struct {
	source connector.Source
	engine *engine.Engine
	output output.Output
}

// New creates a Pipeline from the given components.
func New(src connector.Source, eng *engine.Engine, out output.Output) *Pipeline {
	return &Pipeline{
		source: src,
		engine: eng,
		output: out,
	}
}

// Run executes one batch: read, clean, write. A missing input file skips the
// run with a warning instead of failing it; the day simply produced no data.
// Returns the diagnostics of the cleaning pass, nil when the run was skipped.
func (p *Pipeline) Run(ctx context.Context, cfg connector.Config) (*model.Diagnostics, error) {
	raw, err := p.source.Read(ctx, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("input missing, run skipped", "path", cfg.Path)
			return nil, nil
		}
		return nil, fmt.Errorf("pipeline read: %w", err)
	}

	cleaned, diag := p.engine.Clean(raw)

	if err := p.output.Write(ctx, cleaned); err != nil {
		return diag, fmt.Errorf("pipeline output: %w", err)
	}
	return diag, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
