package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoColumn() *Dataset {
	d := New([]Column{{Name: "a", Kind: Text}, {Name: "b", Kind: Text}})
	d.Append(Record{"x", "y"})
	d.Append(Record{nil, "z"})
	return d
}

func TestAppendPadsAndTruncates(t *testing.T) {
	d := New([]Column{{Name: "a"}, {Name: "b"}})
	d.Append(Record{"only"})
	d.Append(Record{"1", "2", "3"})

	require.Equal(t, 2, d.NumRows())
	assert.Nil(t, d.Value(0, "b"))
	assert.Equal(t, "2", d.Value(1, "b"))
	assert.Len(t, d.Row(1), 2)
}

func TestAppendMapIgnoresUnknownKeys(t *testing.T) {
	d := New([]Column{{Name: "a"}})
	d.AppendMap(map[string]any{"a": "v", "nope": "dropped"})

	require.Equal(t, 1, d.NumRows())
	assert.Equal(t, "v", d.Value(0, "a"))
	assert.Nil(t, d.Value(0, "nope"))
}

func TestDropColumns(t *testing.T) {
	d := twoColumn()
	d.DropColumns("a", "missing")

	assert.False(t, d.HasColumn("a"))
	require.True(t, d.HasColumn("b"))
	assert.Equal(t, "y", d.Value(0, "b"))
	assert.Equal(t, "z", d.Value(1, "b"))
}

func TestFilterPreservesOrder(t *testing.T) {
	d := New([]Column{{Name: "n", Kind: Int}})
	for _, v := range []int64{1, 2, 3, 4, 5} {
		d.Append(Record{v})
	}

	dropped := d.Filter(func(r Record) bool { return r[0].(int64)%2 == 1 })
	assert.Equal(t, 2, dropped)
	require.Equal(t, 3, d.NumRows())
	assert.Equal(t, int64(1), d.Value(0, "n"))
	assert.Equal(t, int64(3), d.Value(1, "n"))
	assert.Equal(t, int64(5), d.Value(2, "n"))
}

func TestMapColumnAbsentIsNoop(t *testing.T) {
	d := twoColumn()
	d.MapColumn("missing", func(any) any { return "boom" })
	assert.Equal(t, "x", d.Value(0, "a"))
}

func TestMapColumnSeesNulls(t *testing.T) {
	d := twoColumn()
	var sawNull bool
	d.MapColumn("a", func(v any) any {
		if v == nil {
			sawNull = true
		}
		return v
	})
	assert.True(t, sawNull)
}

func TestAddColumn(t *testing.T) {
	d := twoColumn()
	d.AddColumn(Column{Name: "c", Kind: Int}, []any{int64(1)})

	require.True(t, d.HasColumn("c"))
	assert.Equal(t, int64(1), d.Value(0, "c"))
	assert.Nil(t, d.Value(1, "c")) // unsupplied value is null
}

func TestAddColumnReplacesExisting(t *testing.T) {
	d := twoColumn()
	d.AddColumn(Column{Name: "b", Kind: Int}, []any{int64(7), int64(8)})

	assert.Len(t, d.Columns(), 2)
	assert.Equal(t, int64(8), d.Value(1, "b"))
}

func TestCloneDoesNotAliasLists(t *testing.T) {
	d := New([]Column{{Name: "codes", Kind: IntList}})
	codes := []int64{3, 4}
	d.Append(Record{codes})

	c := d.Clone()
	codes[0] = 99
	got := c.Value(0, "codes").([]int64)
	assert.Equal(t, int64(3), got[0])
}
