// Package ndjsonfile reads newline-delimited JSON records into a dataset.
package ndjsonfile

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/crimson-sun/scour/internal/connector"
	"github.com/crimson-sun/scour/internal/model"
)

func init() {
	connector.Register("ndjson", func() connector.Source { return &Source{} })
}

// Source reads one JSON object per line. JSON objects carry no key order,
// so the schema is the sorted union of keys across all records. Values keep
// their decoded types (string, float64, bool); JSON null is a null cell.
type Source struct{}

const maxLineBytes = 1 << 20 // violation narratives run long

func (s *Source) Read(ctx context.Context, cfg connector.Config) (*model.Dataset, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("ndjson source: %w", err)
	}
	defer f.Close()

	var rows []map[string]any
	keys := map[string]bool{}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(text), &m); err != nil {
			return nil, fmt.Errorf("ndjson source: line %d: %w", line, err)
		}
		rows = append(rows, m)
		for k := range m {
			keys[k] = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ndjson source: scan: %w", err)
	}

	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)

	cols := make([]model.Column, len(names))
	for i, name := range names {
		cols[i] = model.Column{Name: name, Kind: model.Text}
	}
	ds := model.New(cols)
	for _, m := range rows {
		ds.AppendMap(m)
	}
	return ds, nil
}
