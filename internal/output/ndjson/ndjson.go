// Package ndjson writes the cleaned dataset as newline-delimited JSON, the
// pipeline's row-oriented file encoding.
package ndjson

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/scour/internal/model"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures an ndjson Output.
type Option func(*Output)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output writes one JSON object per row with buffered I/O. The file is
// truncated on open: each run replaces the day's output.
type Output struct {
	w       *bufio.Writer
	f       *os.File
	mu      sync.Mutex
	path    string
	bufSize int
}

// New creates an ndjson output writing to the given path.
func New(path string, opts ...Option) (*Output, error) {
	o := &Output{path: path, bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(o)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("ndjson output: open %s: %w", path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	return o, nil
}

// Write appends every row as a JSON line. Keys marshal sorted; column
// order is carried by the column-oriented encoding, not this one.
func (o *Output) Write(ctx context.Context, ds *model.Dataset) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := 0; i < ds.NumRows(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := json.Marshal(ds.RowMap(i))
		if err != nil {
			return fmt.Errorf("ndjson output: marshal row %d: %w", i, err)
		}
		data = append(data, '\n')
		if _, err := o.w.Write(data); err != nil {
			return fmt.Errorf("ndjson output: write: %w", err)
		}
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("ndjson output: flush: %w", err)
	}
	return o.f.Close()
}
