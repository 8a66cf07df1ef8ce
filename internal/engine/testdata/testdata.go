// Package testdata ships a small embedded corpus of raw inspection rows,
// deliberately seeded with the defects the cleaning stages exist to handle:
// duplicates, malformed identifiers, missing narratives, misspelled cities,
// and unparseable coordinates.
package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/crimson-sun/scour/internal/model"
)

//go:embed inspections.json
var corpusJSON []byte

// RawColumns is the column schema of the daily extract, in feed order.
var RawColumns = []string{
	"inspection_id", "dba_name", "aka_name", "license_", "facility_type",
	"risk", "address", "city", "state", "zip", "inspection_date",
	"inspection_type", "results", "violations", "latitude", "longitude",
	"location",
}

// LoadRaw parses the embedded corpus into row maps.
func LoadRaw() ([]map[string]any, error) {
	var rows []map[string]any
	if err := json.Unmarshal(corpusJSON, &rows); err != nil {
		return nil, fmt.Errorf("parse inspections.json: %w", err)
	}
	return rows, nil
}

// Dataset builds a model.Dataset over the embedded corpus.
func Dataset() (*model.Dataset, error) {
	rows, err := LoadRaw()
	if err != nil {
		return nil, err
	}
	cols := make([]model.Column, len(RawColumns))
	for i, name := range RawColumns {
		cols[i] = model.Column{Name: name, Kind: model.Text}
	}
	ds := model.New(cols)
	for _, r := range rows {
		ds.AppendMap(r)
	}
	return ds, nil
}
