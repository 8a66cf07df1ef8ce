// Package stdout streams the cleaned dataset to standard output as NDJSON.
// Useful for piping into jq or a downstream loader during development.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/crimson-sun/scour/internal/model"
)

// Output writes one JSON object per row to a writer, stdout by default.
type Output struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a stdout output.
func New() *Output {
	return &Output{w: os.Stdout}
}

// NewWriter creates an output targeting an arbitrary writer. Tests use this.
func NewWriter(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) Write(ctx context.Context, ds *model.Dataset) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	enc := json.NewEncoder(o.w)
	for i := 0; i < ds.NumRows(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(ds.RowMap(i)); err != nil {
			return fmt.Errorf("stdout output: row %d: %w", i, err)
		}
	}
	return nil
}

func (o *Output) Close() error { return nil }
