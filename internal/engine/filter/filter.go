// Package filter holds the row-dropping stages that run before any text
// transformation: the dedupe/null filter and the identifier validator.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/crimson-sun/scour/internal/model"
)

// Columns carried by the raw extract that add no value downstream.
var droppedColumns = []string{"aka_name", "license_", "location"}

// Results that make a missing violations narrative legitimate. Compared
// against the raw, pre-normalization string.
var passingResults = map[string]bool{
	"Pass":               true,
	"Pass w/ Conditions": true,
}

// Dropper removes low-value columns, exact-duplicate rows, rows with nulls
// outside the violations column, and null-violations rows that did not pass.
type Dropper struct{}

// NewDropper creates the dedupe/null-filter stage.
func NewDropper() *Dropper {
	return &Dropper{}
}

func (d *Dropper) Name() string { return "dedupe_null_filter" }

func (d *Dropper) Apply(ds *model.Dataset, diag *model.Diagnostics) *model.Dataset {
	ds.DropColumns(droppedColumns...)

	// Exact-duplicate rows over all remaining columns. First occurrence
	// survives; duplicates are assumed fully redundant.
	seen := make(map[string]bool, ds.NumRows())
	dup := ds.Filter(func(row model.Record) bool {
		key := fingerprint(row)
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
	diag.Record(d.Name(), "dropped_duplicate_rows", dup)

	// Nulls are fatal in every column except violations.
	violIdx := ds.ColumnIndex("violations")
	nulls := ds.Filter(func(row model.Record) bool {
		for i, v := range row {
			if i != violIdx && v == nil {
				return false
			}
		}
		return true
	})
	diag.Record(d.Name(), "dropped_null_rows", nulls)

	// A null violations narrative is only valid on a passed inspection.
	if violIdx >= 0 && ds.HasColumn("results") {
		resIdx := ds.ColumnIndex("results")
		missing := ds.Filter(func(row model.Record) bool {
			if row[violIdx] != nil {
				return true
			}
			res, _ := row[resIdx].(string)
			return passingResults[res]
		})
		diag.Record(d.Name(), "dropped_missing_violations", missing)
	}

	return ds
}

// fingerprint serializes a row for duplicate detection. The unit separator
// keeps adjacent cells from colliding.
func fingerprint(row model.Record) string {
	var b strings.Builder
	for _, v := range row {
		if v == nil {
			b.WriteByte(0x00)
		} else {
			fmt.Fprintf(&b, "%v", v)
		}
		b.WriteByte(0x1f)
	}
	return b.String()
}

var idPattern = regexp.MustCompile(`^\d{7}$`)

// Identifier enforces inspection_id uniqueness and format. Validation is
// strict on the raw string: no trimming, no type coercion.
type Identifier struct{}

// NewIdentifier creates the identifier-validation stage.
func NewIdentifier() *Identifier {
	return &Identifier{}
}

func (v *Identifier) Name() string { return "identifier_validator" }

func (v *Identifier) Apply(ds *model.Dataset, diag *model.Diagnostics) *model.Dataset {
	idx := ds.ColumnIndex("inspection_id")
	if idx < 0 {
		return ds
	}

	seen := make(map[string]bool, ds.NumRows())
	dup := ds.Filter(func(row model.Record) bool {
		key := fmt.Sprintf("%v", row[idx])
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
	diag.Record(v.Name(), "dropped_duplicate_ids", dup)

	bad := ds.Filter(func(row model.Record) bool {
		id, ok := row[idx].(string)
		return ok && idPattern.MatchString(id)
	})
	diag.Record(v.Name(), "dropped_invalid_ids", bad)

	return ds
}
