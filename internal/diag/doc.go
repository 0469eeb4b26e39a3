// Package diag defines the diagnostic model shared by the recognizer and
// the CLI.
//
//   - Severity, Code and Diagnostic are deterministic, serialisable records
//     of one finding against one input.
//   - Bag aggregates diagnostics with a cap, stable sorting and dedup.
//   - Reporter decouples producers (the recognizer driver) from storage and
//     formatting; BagReporter is the standard sink.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
package diag
