// Package pipeline moves sequences from one producer to K analyzers through
// a single shared queue and reports each analysis to a Sink.
//
// Termination is explicit: after its input is exhausted the Source puts one
// EndOfStream item per analyzer, and every Analyzer returns as soon as it
// takes one. Analyzers emit their own results; nothing is aggregated here.
package pipeline
