package connector

import (
	"fmt"
	"sort"
)

// Constructor creates a new Source instance.
type Constructor func() Source

var registry = map[string]Constructor{}

// Register adds a source constructor under a format name. File sources
// register themselves in init; the CLI pulls them in with blank imports.
func Register(format string, ctor Constructor) {
	registry[format] = ctor
}

// Get resolves a format name to its source constructor.
func Get(format string) (Constructor, error) {
	ctor, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown source format: %s", format)
	}
	return ctor, nil
}

// Formats returns the registered format names, sorted for stable display in
// error messages.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
