// Package scour provides the inspection-record cleaning engine as a library,
// for embedding the batch cleaner in other programs.
//
// Quick start:
//
//	s := scour.New()
//	cleaned, report := s.Clean(rows)
//	fmt.Println(len(cleaned), report.RunID)
//
// A Scour instance is stateless across calls and safe for concurrent use.
// Create once, reuse across batches.
package scour
