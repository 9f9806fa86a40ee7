// Package writers turns analysis results into serialized output.
//
// Design:
//   - Writers own all presentation choices (text blocks, TSV, JSON/JSONL).
//   - Analysis stays domain-only; the pipeline stays orchestration-only.
//   - A writer runs on its own goroutine, so analyzers never share the
//     output stream directly.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
