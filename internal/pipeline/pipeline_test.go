package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/crimson-sun/scour/internal/connector"
	_ "github.com/crimson-sun/scour/internal/connector/csvfile"
	"github.com/crimson-sun/scour/internal/engine"
	"github.com/crimson-sun/scour/internal/model"
)

type captureOutput struct {
	ds     *model.Dataset
	closed bool
}

func (c *captureOutput) Write(ctx context.Context, ds *model.Dataset) error {
	c.ds = ds
	return nil
}

func (c *captureOutput) Close() error {
	c.closed = true
	return nil
}

const rawHeader = "inspection_id,dba_name,aka_name,license_,facility_type,risk," +
	"address,city,state,zip,inspection_date,inspection_type,results," +
	"violations,latitude,longitude,location"

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.csv")
	data := rawHeader + "\n" +
		`2345001,TACO HOUSE,TH,100,Restaurant,Risk 1 High,1 W MAIN,CHICAGO,IL,60614,2024-01-02,Canvass,Pass,3 4 comment ,41.887523456,-87.635412345,POINT` + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := connector.Get("csv")
	if err != nil {
		t.Fatal(err)
	}
	out := &captureOutput{}
	p := New(src(), engine.Default(engine.DefaultConfig()), out)

	diag, err := p.Run(context.Background(), connector.Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if diag == nil {
		t.Fatal("no diagnostics for a completed run")
	}
	if out.ds == nil {
		t.Fatal("output never written")
	}
	if out.ds.NumRows() != 1 {
		t.Fatalf("rows = %d", out.ds.NumRows())
	}
	if got := out.ds.Value(0, "violation_count"); got != int64(2) {
		t.Fatalf("violation_count = %v", got)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if !out.closed {
		t.Fatal("output not closed")
	}
}

func TestRunSkipsMissingInput(t *testing.T) {
	src, err := connector.Get("csv")
	if err != nil {
		t.Fatal(err)
	}
	out := &captureOutput{}
	p := New(src(), engine.Default(engine.DefaultConfig()), out)

	diag, err := p.Run(context.Background(), connector.Config{Path: "/nonexistent/day.csv"})
	if err != nil {
		t.Fatalf("missing input should skip, got %v", err)
	}
	if diag != nil {
		t.Fatal("skipped run should carry no diagnostics")
	}
	if out.ds != nil {
		t.Fatal("output written on a skipped run")
	}
}

type failOutput struct{ captureOutput }

func (f *failOutput) Write(ctx context.Context, ds *model.Dataset) error {
	return errors.New("disk full")
}

func TestRunOutputError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.csv")
	if err := os.WriteFile(path, []byte(rawHeader+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	src, _ := connector.Get("csv")
	p := New(src(), engine.Default(engine.DefaultConfig()), &failOutput{})
	diag, err := p.Run(context.Background(), connector.Config{Path: path})
	if err == nil {
		t.Fatal("expected output error")
	}
	if diag == nil {
		t.Fatal("diagnostics should survive an output failure")
	}
}
