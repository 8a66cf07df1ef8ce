package model

import "github.com/google/uuid"

// Diagnostic is one observability event emitted by a cleaning stage, e.g.
// the number of rows dropped by a filter. Diagnostics never affect the
// transformation itself.
type Diagnostic struct {
	Stage string `json:"stage"`
	Event string `json:"event"`
	Count int    `json:"count"`
}

// Diagnostics collects stage diagnostics for one pipeline run.
type Diagnostics struct {
	runID  string
	events []Diagnostic
}

// NewDiagnostics creates a sink with a fresh run ID.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{runID: uuid.NewString()}
}

// RunID returns the run identifier stamped on this sink.
func (d *Diagnostics) RunID() string {
	return d.runID
}

// Record appends a diagnostic event.
func (d *Diagnostics) Record(stage, event string, count int) {
	d.events = append(d.events, Diagnostic{Stage: stage, Event: event, Count: count})
}

// Events returns the recorded diagnostics in emission order.
func (d *Diagnostics) Events() []Diagnostic {
	return append([]Diagnostic(nil), d.events...)
}
