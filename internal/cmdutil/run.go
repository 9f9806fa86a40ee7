package cmdutil

import (
	"context"

	"dnaflow/internal/analysis"
	"dnaflow/internal/pipeline"
	"dnaflow/internal/seqio"
)

// RunStream runs the shared pipeline and streams every result via send.
// It returns the run statistics and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	r seqio.Reader,
	send func(analysis.Result) error,
) (pipeline.Stats, error) {
	return pipeline.Run(ctx, cfg, r, pipeline.SinkFunc(func(_ context.Context, res analysis.Result) error {
		return send(res)
	}))
}
