// Package csvfile writes the cleaned dataset as a header-led CSV file.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/crimson-sun/scour/internal/model"
	"github.com/crimson-sun/scour/internal/output"
)

// Output writes rows in column order. Nulls become empty cells and
// int-list cells are JSON-encoded, mirroring what the csv source reads.
type Output struct {
	f *os.File
	w *csv.Writer
}

// New creates a csv output writing to the given path.
func New(path string) (*Output, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("csv output: open %s: %w", path, err)
	}
	return &Output{f: f, w: csv.NewWriter(f)}, nil
}

func (o *Output) Write(ctx context.Context, ds *model.Dataset) error {
	if err := o.w.Write(ds.ColumnNames()); err != nil {
		return fmt.Errorf("csv output: header: %w", err)
	}
	cells := make([]string, len(ds.Columns()))
	for i := 0; i < ds.NumRows(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := ds.Row(i)
		for j, v := range row {
			cells[j] = output.CellString(v)
		}
		if err := o.w.Write(cells); err != nil {
			return fmt.Errorf("csv output: row %d: %w", i, err)
		}
	}
	return nil
}

func (o *Output) Close() error {
	o.w.Flush()
	if err := o.w.Error(); err != nil {
		o.f.Close()
		return fmt.Errorf("csv output: flush: %w", err)
	}
	return o.f.Close()
}
