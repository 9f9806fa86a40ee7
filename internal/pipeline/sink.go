package pipeline

import (
	"context"

	"dnaflow/internal/analysis"
)

// Sink receives results. Emit is called concurrently by every analyzer.
type Sink interface {
	Emit(ctx context.Context, r analysis.Result) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, r analysis.Result) error

func (f SinkFunc) Emit(ctx context.Context, r analysis.Result) error { return f(ctx, r) }

// Discard drops every result.
var Discard Sink = SinkFunc(func(context.Context, analysis.Result) error { return nil })
