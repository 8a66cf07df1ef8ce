// Package parquet writes the cleaned dataset as a Parquet file via Arrow.
// This is the columnar encoding downstream analytics jobs read, so column
// order and declared kinds are preserved exactly.
package parquet

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apache/arrow/go/v10/arrow"
	"github.com/apache/arrow/go/v10/arrow/array"
	"github.com/apache/arrow/go/v10/arrow/memory"
	"github.com/apache/arrow/go/v10/parquet"
	"github.com/apache/arrow/go/v10/parquet/file"
	"github.com/apache/arrow/go/v10/parquet/pqarrow"

	"github.com/crimson-sun/scour/internal/model"
)

const chunkSize = 4096

// Output writes one dataset per call to a fresh file at path.
type Output struct {
	path string
}

// New creates a parquet output writing to the given path.
func New(path string) *Output {
	return &Output{path: path}
}

func arrowType(k model.Kind) arrow.DataType {
	switch k {
	case model.Float:
		return arrow.PrimitiveTypes.Float64
	case model.Int:
		return arrow.PrimitiveTypes.Int64
	case model.IntList:
		return arrow.ListOf(arrow.PrimitiveTypes.Int64)
	default:
		return arrow.BinaryTypes.String
	}
}

// Schema maps the dataset's columns onto an Arrow schema. Every field is
// nullable: stages may leave nulls in any column they do not filter on.
func Schema(ds *model.Dataset) *arrow.Schema {
	cols := ds.Columns()
	fields := make([]arrow.Field, len(cols))
	for i, c := range cols {
		fields[i] = arrow.Field{Name: c.Name, Type: arrowType(c.Kind), Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

func appendCell(b array.Builder, k model.Kind, v any) {
	if v == nil {
		b.AppendNull()
		return
	}
	switch k {
	case model.Float:
		if f, ok := v.(float64); ok {
			b.(*array.Float64Builder).Append(f)
			return
		}
	case model.Int:
		if n, ok := v.(int64); ok {
			b.(*array.Int64Builder).Append(n)
			return
		}
	case model.IntList:
		if codes, ok := v.([]int64); ok {
			lb := b.(*array.ListBuilder)
			lb.Append(true)
			vb := lb.ValueBuilder().(*array.Int64Builder)
			for _, c := range codes {
				vb.Append(c)
			}
			return
		}
	default:
		if s, ok := v.(string); ok {
			b.(*array.StringBuilder).Append(s)
			return
		}
	}
	// Cell does not match the declared kind; null is the least-wrong encoding.
	b.AppendNull()
}

func (o *Output) Write(ctx context.Context, ds *model.Dataset) error {
	mem := memory.NewGoAllocator()
	schema := Schema(ds)
	cols := ds.Columns()

	bld := array.NewRecordBuilder(mem, schema)
	defer bld.Release()
	for i := 0; i < ds.NumRows(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := ds.Row(i)
		for ci, c := range cols {
			appendCell(bld.Field(ci), c.Kind, row[ci])
		}
	}
	rec := bld.NewRecord()
	defer rec.Release()

	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("parquet output: open %s: %w", o.path, err)
	}

	props := parquet.NewWriterProperties(parquet.WithDictionaryDefault(false))
	arrProps := pqarrow.DefaultWriterProps()
	if err := pqarrow.WriteTable(tbl, f, chunkSize, props, arrProps); err != nil {
		f.Close()
		return fmt.Errorf("parquet output: write %s: %w", o.path, err)
	}
	// pqarrow.WriteTable closes f itself; only a close error other than
	// "already closed" is a real failure.
	if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

func (o *Output) Close() error { return nil }

// Read loads a Parquet file written by this package back into a dataset.
// Kinds are recovered from the Arrow types.
func Read(ctx context.Context, path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parquet read: open %s: %w", path, err)
	}
	defer f.Close()

	pf, err := file.NewParquetReader(f)
	if err != nil {
		return nil, fmt.Errorf("parquet read: %s: %w", path, err)
	}
	defer pf.Close()

	rdr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return nil, fmt.Errorf("parquet read: %s: %w", path, err)
	}
	tbl, err := rdr.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("parquet read: %s: %w", path, err)
	}
	defer tbl.Release()

	return fromTable(tbl)
}

func kindOf(t arrow.DataType) model.Kind {
	switch t.ID() {
	case arrow.FLOAT64:
		return model.Float
	case arrow.INT64:
		return model.Int
	case arrow.LIST:
		return model.IntList
	default:
		return model.Text
	}
}

func fromTable(tbl arrow.Table) (*model.Dataset, error) {
	schema := tbl.Schema()
	cols := make([]model.Column, len(schema.Fields()))
	for i, fld := range schema.Fields() {
		cols[i] = model.Column{Name: fld.Name, Kind: kindOf(fld.Type)}
	}
	ds := model.New(cols)

	n := int(tbl.NumRows())
	values := make([][]any, len(cols))
	for ci := range cols {
		values[ci] = make([]any, 0, n)
		for _, chunk := range tbl.Column(ci).Data().Chunks() {
			vals, err := chunkValues(chunk)
			if err != nil {
				return nil, fmt.Errorf("parquet read: column %s: %w", cols[ci].Name, err)
			}
			values[ci] = append(values[ci], vals...)
		}
	}

	for ri := 0; ri < n; ri++ {
		row := make(model.Record, len(cols))
		for ci := range cols {
			row[ci] = values[ci][ri]
		}
		ds.Append(row)
	}
	return ds, nil
}

func chunkValues(a arrow.Array) ([]any, error) {
	out := make([]any, a.Len())
	switch arr := a.(type) {
	case *array.String:
		for i := range out {
			if !arr.IsNull(i) {
				out[i] = arr.Value(i)
			}
		}
	case *array.Float64:
		for i := range out {
			if !arr.IsNull(i) {
				out[i] = arr.Value(i)
			}
		}
	case *array.Int64:
		for i := range out {
			if !arr.IsNull(i) {
				out[i] = arr.Value(i)
			}
		}
	case *array.List:
		vals, ok := arr.ListValues().(*array.Int64)
		if !ok {
			return nil, fmt.Errorf("unsupported list element type %s", arr.DataType())
		}
		offsets := arr.Offsets()
		for i := range out {
			if arr.IsNull(i) {
				continue
			}
			start, end := offsets[i], offsets[i+1]
			codes := make([]int64, 0, end-start)
			for j := start; j < end; j++ {
				codes = append(codes, vals.Value(int(j)))
			}
			out[i] = codes
		}
	default:
		return nil, fmt.Errorf("unsupported column type %s", a.DataType())
	}
	return out, nil
}
