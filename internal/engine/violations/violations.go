// Package violations tokenizes inspection narrative text into violation
// codes and derives indicator features over fixed code groups.
package violations

import (
	"strconv"
	"unicode"

	"github.com/crimson-sun/scour/internal/model"
)

// Codes frequent enough to warrant an individual has_violation_<code> flag.
var highFrequencyCodes = []int64{1, 2, 3, 4, 6, 7, 38}

// codeGroup is one named indicator: the flag is set when any of the codes
// appears in the row's extracted list.
type codeGroup struct {
	column string
	codes  []int64
}

// Declaration order is the output column order.
var codeGroups = []codeGroup{
	{"has_supervision_violation", []int64{1, 2}},
	{"has_employee_health_violation", []int64{3, 4}},
	{"has_contamination_violation", []int64{23, 24, 25, 26, 27, 28}},
	{"has_temp_control_violation", []int64{18, 19, 20, 21, 22}},
	{"has_food_source_violation", []int64{11, 12, 13, 14}},
	{"has_equipment_violation", []int64{47, 49, 50, 51, 52}},
	{"has_hand_hygiene_violation", []int64{5, 9, 10, 33, 34, 36, 61}},
}

// Tokenizer is the violation feature-extraction stage. It adds columns and
// never drops rows.
type Tokenizer struct{}

// New creates the violation-tokenization stage.
func New() *Tokenizer {
	return &Tokenizer{}
}

func (t *Tokenizer) Name() string { return "violation_tokenizer" }

func (t *Tokenizer) Apply(ds *model.Dataset, diag *model.Diagnostics) *model.Dataset {
	n := ds.NumRows()
	codes := make([]any, n)
	counts := make([]any, n)
	empty := 0

	perRow := make([][]int64, n)
	for i := 0; i < n; i++ {
		text, _ := ds.Value(i, "violations").(string)
		extracted := ExtractCodes(text)
		perRow[i] = extracted
		codes[i] = extracted
		counts[i] = int64(len(extracted))
		if len(extracted) == 0 {
			empty++
		}
	}

	ds.AddColumn(model.Column{Name: "violation_codes", Kind: model.IntList}, codes)
	ds.AddColumn(model.Column{Name: "violation_count", Kind: model.Int}, counts)

	for _, code := range highFrequencyCodes {
		col := "has_violation_" + strconv.FormatInt(code, 10)
		ds.AddColumn(model.Column{Name: col, Kind: model.Int}, flags(perRow, []int64{code}))
	}
	for _, g := range codeGroups {
		ds.AddColumn(model.Column{Name: g.column, Kind: model.Int}, flags(perRow, g.codes))
	}

	diag.Record(t.Name(), "rows_without_codes", empty)
	return ds
}

// flags computes a boolean-as-integer column: 1 where any of the codes is
// present in the row's extracted list.
func flags(perRow [][]int64, group []int64) []any {
	members := make(map[int64]bool, len(group))
	for _, c := range group {
		members[c] = true
	}
	out := make([]any, len(perRow))
	for i, codes := range perRow {
		var hit int64
		for _, c := range codes {
			if members[c] {
				hit = 1
				break
			}
		}
		out[i] = hit
	}
	return out
}

// ExtractCodes pulls 1-2 digit codes out of narrative text. A code is a
// whitespace-delimited digit run: preceded by start-of-text or whitespace
// and followed by whitespace; end-of-text does not terminate a code. This
// is a heuristic: codes wrapped in punctuation are missed and stray small
// numbers are picked up. Appearance order and duplicates are preserved.
// An empty list is always non-nil so downstream encoders see [] not null.
func ExtractCodes(text string) []int64 {
	codes := []int64{}
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && !unicode.IsSpace(runes[j]) {
			j++
		}
		// Token runes[i:j]: must be all digits, 1-2 long, and followed by
		// an actual whitespace rune.
		if j < len(runes) && j-i <= 2 && allDigits(runes[i:j]) {
			v, err := strconv.ParseInt(string(runes[i:j]), 10, 64)
			if err == nil {
				codes = append(codes, v)
			}
		}
		i = j
	}
	return codes
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(rs) > 0
}
