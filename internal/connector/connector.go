// Package connector defines the dataset sources feeding the pipeline and a
// registry for resolving them by format name.
package connector

import (
	"context"

	"github.com/crimson-sun/scour/internal/model"
)

// Source reads one day of raw inspection records into a dataset. Sources
// perform all the pipeline's input I/O; the cleaning stages never touch
// storage.
type Source interface {
	// Read loads the records at cfg.Path into a dataset. A missing or
	// unreadable input is an error: the caller skips the whole run.
	Read(ctx context.Context, cfg Config) (*model.Dataset, error)
}

// Config holds source settings.
type Config struct {
	Path  string
	Extra map[string]string // format-specific settings, e.g. csv delimiter
}
