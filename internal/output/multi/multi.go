// Package multi fans one cleaned dataset out to several outputs.
package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/scour/internal/model"
	"github.com/crimson-sun/scour/internal/output"
)

// Output writes to every child in order. A failing child never starves the
// ones after it: every child sees the dataset, and Write joins the errors.
type Output struct {
	outs []output.Output
}

// New creates a fan-out over the given outputs.
func New(outs ...output.Output) *Output {
	return &Output{outs: outs}
}

func (o *Output) Write(ctx context.Context, ds *model.Dataset) error {
	var errs []error
	for _, out := range o.outs {
		if err := out.Write(ctx, ds); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (o *Output) Close() error {
	var errs []error
	for _, out := range o.outs {
		if err := out.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
