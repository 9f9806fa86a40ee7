package cli

import (
	"io"

	"github.com/spf13/cobra"

	"dnaflow/internal/cmdutil"
	"dnaflow/internal/config"
	"dnaflow/internal/version"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Quiet      bool
	Verbose    bool

	stderr io.Writer
}

// Logger returns the diagnostic logger for the current flags.
func (o *RootOptions) Logger() cmdutil.Logger {
	return cmdutil.Logger{W: o.stderr, Quiet: o.Quiet, Verbose: o.Verbose}
}

// LoadConfig reads --config (or the defaults when unset).
func (o *RootOptions) LoadConfig() (config.Config, error) {
	return config.Load(o.ConfigPath)
}

// NewRootCommand creates the root command for the dnaflow CLI.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	opts := &RootOptions{stderr: stderr}

	cmd := &cobra.Command{
		Use:     "dnaflow",
		Short:   "Concurrent nucleotide sequence analysis",
		Long:    "dnaflow streams raw sequences from one reader to a pool of analyzers and reports base counts, GC content, reverse complement and motif hits for each.",
		Version: version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress warnings")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log run details to stderr")

	cmd.AddCommand(NewAnalyzeCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand prints the build version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte("dnaflow version " + version.Version + "\n"))
			return err
		},
	}
}
