// Package csvfile reads a daily CSV extract into a dataset.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/scour/internal/connector"
	"github.com/crimson-sun/scour/internal/model"
)

func init() {
	connector.Register("csv", func() connector.Source { return &Source{} })
}

// Source reads header-led CSV. All columns load as text; empty cells are
// nulls. Type coercion belongs to the cleaning stages, not the reader.
type Source struct{}

func (s *Source) Read(ctx context.Context, cfg connector.Config) (*model.Dataset, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("csv source: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // short rows degrade to nulls
	if d, ok := cfg.Extra["delimiter"]; ok && len(d) > 0 {
		r.Comma = rune(d[0])
	}

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv source: %s is empty", cfg.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("csv source: read header: %w", err)
	}

	cols := make([]model.Column, len(header))
	for i, name := range header {
		cols[i] = model.Column{Name: name, Kind: model.Text}
	}
	ds := model.New(cols)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv source: read row: %w", err)
		}
		row := make(model.Record, len(rec))
		for i, v := range rec {
			if v != "" {
				row[i] = v
			}
		}
		ds.Append(row)
	}
	return ds, nil
}
