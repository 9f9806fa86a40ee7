package cli

import (
	"github.com/spf13/cobra"

	"dnaflow/internal/appcore"
)

// AnalyzeOptions holds flags specific to analyze.
type AnalyzeOptions struct {
	run             runFlags
	Workers         int
	Output          string
	Sort            bool
	NoHeader        bool
	NoMatchExitCode int
}

// NewAnalyzeCommand analyzes every sequence in the given files (or stdin).
func NewAnalyzeCommand(root *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze sequences, one per line (or FASTA records)",
		Long: `Analyze reads sequences from the given files ("-" or none for stdin),
analyzes them on a pool of workers and prints one report per sequence.

Files ending in .gz are decompressed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.LoadConfig()
			if err != nil {
				return &ExitError{Code: appcore.ExitUsage, Err: err}
			}
			fs := cmd.Flags()
			opts.run.apply(fs, &cfg)
			if fs.Changed("workers") {
				cfg.Workers = opts.Workers
			}
			if fs.Changed("output") {
				cfg.Output = opts.Output
			}
			if fs.Changed("sort") {
				cfg.Sort = opts.Sort
			}
			if fs.Changed("no-header") {
				cfg.Header = !opts.NoHeader
			}
			if fs.Changed("no-match-exit-code") {
				cfg.NoMatchExitCode = opts.NoMatchExitCode
			}
			if err := cfg.Validate(); err != nil {
				return &ExitError{Code: appcore.ExitUsage, Err: err}
			}

			code := appcore.Run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), appcore.Options{
				Files:  args,
				Config: cfg,
				Log:    root.Logger(),
			})
			return exitCode(code)
		},
	}

	fs := cmd.Flags()
	bindRunFlags(fs, &opts.run)
	fs.IntVarP(&opts.Workers, "workers", "w", 0, "number of analyzer workers (0 = all CPUs)")
	fs.StringVarP(&opts.Output, "output", "o", "text", "output format: text | tsv | json | jsonl")
	fs.BoolVar(&opts.Sort, "sort", false, "sort results by name for deterministic output")
	fs.BoolVar(&opts.NoHeader, "no-header", false, "suppress the TSV header line")
	fs.IntVar(&opts.NoMatchExitCode, "no-match-exit-code", 0, "exit code when the input has no sequences")

	return cmd
}
