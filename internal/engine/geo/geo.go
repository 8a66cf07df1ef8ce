// Package geo validates postal codes and coordinates: non-strict type
// coercion (failures become null, never errors), then filtering, then
// precision rounding.
package geo

import (
	"math"
	"strconv"
	"strings"

	"github.com/crimson-sun/scour/internal/model"
)

const (
	zipWidth       = 5
	coordPrecision = 1e5 // 5 decimal places, ~1.1m
)

// Validator is the geolocation stage.
type Validator struct{}

// New creates the geolocation-validation stage.
func New() *Validator {
	return &Validator{}
}

func (g *Validator) Name() string { return "geolocation_validator" }

func (g *Validator) Apply(ds *model.Dataset, diag *model.Diagnostics) *model.Dataset {
	if ds.HasColumn("zip") {
		ds.MapColumn("zip", coerceZip)
		ds.SetKind("zip", model.Text)
		zipIdx := ds.ColumnIndex("zip")
		dropped := ds.Filter(func(row model.Record) bool {
			s, ok := row[zipIdx].(string)
			return ok && len([]rune(s)) == zipWidth
		})
		diag.Record(g.Name(), "dropped_invalid_zip", dropped)
	}

	coords := []string{"latitude", "longitude"}
	var idxs []int
	for _, col := range coords {
		if ds.HasColumn(col) {
			ds.MapColumn(col, coerceFloat)
			ds.SetKind(col, model.Float)
			idxs = append(idxs, ds.ColumnIndex(col))
		}
	}
	if len(idxs) > 0 {
		dropped := ds.Filter(func(row model.Record) bool {
			for _, i := range idxs {
				if row[i] == nil {
					return false
				}
			}
			return true
		})
		diag.Record(g.Name(), "dropped_invalid_coordinates", dropped)
	}
	for _, col := range coords {
		ds.MapColumn(col, func(v any) any {
			f, ok := v.(float64)
			if !ok {
				return v
			}
			return math.Round(f*coordPrecision) / coordPrecision
		})
	}

	return ds
}

// coerceZip renders any cell as a trimmed, left-zero-padded 5-char string.
// Unrenderable values become null; the length filter handles the rest.
func coerceZip(v any) any {
	var s string
	switch z := v.(type) {
	case nil:
		return nil
	case string:
		s = strings.TrimSpace(z)
	case int:
		s = strconv.Itoa(z)
	case int64:
		s = strconv.FormatInt(z, 10)
	case float64:
		// JSON numbers decode as float64; only whole values render.
		if math.IsNaN(z) || math.IsInf(z, 0) || z != math.Trunc(z) {
			return nil
		}
		s = strconv.FormatInt(int64(z), 10)
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	for len([]rune(s)) < zipWidth {
		s = "0" + s
	}
	return s
}

// coerceFloat parses any cell as a finite float64, or null.
func coerceFloat(v any) any {
	var f float64
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		f = x
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
