package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"dnaflow/internal/appcore"
	"dnaflow/internal/config"
	"dnaflow/internal/jsonutil"
	"dnaflow/internal/pipeline"
	"dnaflow/internal/runutil"
	"dnaflow/internal/seqio"
	"dnaflow/pkg/api"
)

// CompareOptions holds flags specific to compare.
type CompareOptions struct {
	run     runFlags
	Workers string
	Format  string
}

// NewCompareCommand times the same input under several worker counts.
func NewCompareCommand(root *RootOptions) *cobra.Command {
	opts := &CompareOptions{}

	cmd := &cobra.Command{
		Use:   "compare [files...]",
		Short: "Time the pipeline with different worker counts",
		Long: `Compare loads the input once, then runs the full pipeline over it for
each worker count, discarding the results, and reports elapsed time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := runutil.ParseWorkerList(opts.Workers)
			if err != nil {
				return &ExitError{Code: appcore.ExitUsage, Err: err}
			}
			if opts.Format != "text" && opts.Format != "json" {
				return &ExitError{Code: appcore.ExitUsage, Message: fmt.Sprintf("invalid --format %q: must be text or json", opts.Format)}
			}
			cfg, err := root.LoadConfig()
			if err != nil {
				return &ExitError{Code: appcore.ExitUsage, Err: err}
			}
			opts.run.apply(cmd.Flags(), &cfg)
			if err := cfg.Validate(); err != nil {
				return &ExitError{Code: appcore.ExitUsage, Err: err}
			}
			return runCompare(cmd, root, cfg, counts, opts.Format, args)
		},
	}

	fs := cmd.Flags()
	bindRunFlags(fs, &opts.run)
	fs.StringVarP(&opts.Workers, "workers", "w", "1,2", "comma-separated worker counts to time")
	fs.StringVar(&opts.Format, "format", "text", "report format: text | json")

	return cmd
}

func runCompare(cmd *cobra.Command, root *RootOptions, cfg config.Config, counts []int, format string, files []string) error {
	ctx := cmd.Context()
	log := root.Logger()

	r, closer, err := seqio.OpenAll(cfg.InputFormat, files)
	if err != nil {
		return &ExitError{Code: appcore.ExitUsage, Err: err}
	}
	recs, err := seqio.ReadAll(ctx, r)
	_ = closer.Close()
	if err != nil {
		if ctx.Err() != nil {
			return &ExitError{Code: appcore.ExitCancelled, Err: err}
		}
		return &ExitError{Code: appcore.ExitRuntime, Err: err}
	}
	log.Infof("loaded %d sequences", len(recs))

	runID := uuid.Must(uuid.NewV7()).String()
	var summaries []api.RunSummaryV1
	for _, k := range counts {
		cfg.Workers = k
		pcfg, err := appcore.PipelineConfig(cfg)
		if err != nil {
			return &ExitError{Code: appcore.ExitUsage, Err: err}
		}
		st, err := pipeline.Run(ctx, pcfg, seqio.NewSliceReader(recs), pipeline.Discard)
		if err != nil {
			if ctx.Err() != nil {
				return &ExitError{Code: appcore.ExitCancelled, Err: err}
			}
			return &ExitError{Code: appcore.ExitRuntime, Err: err}
		}
		summaries = append(summaries, api.RunSummaryV1{
			RunID:     runID,
			Workers:   st.Workers,
			Sequences: st.Consumed,
			PerWorker: st.PerWorker,
			ElapsedMS: float64(st.Elapsed.Microseconds()) / 1000,
		})
	}
	return writeSummaries(cmd.OutOrStdout(), format, summaries)
}

func writeSummaries(w io.Writer, format string, list []api.RunSummaryV1) error {
	if format == "json" {
		return jsonutil.EncodePretty(w, list)
	}
	for _, s := range list {
		if _, err := fmt.Fprintf(w, "Processing time with %d worker(s): %.3fms (%d sequences, per worker %v)\n",
			s.Workers, s.ElapsedMS, s.Sequences, s.PerWorker); err != nil {
			return err
		}
	}
	return nil
}
