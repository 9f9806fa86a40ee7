package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"dnaflow/internal/analysis"
	"dnaflow/internal/cmdutil"
	"dnaflow/internal/config"
	"dnaflow/internal/pipeline"
	"dnaflow/internal/runutil"
	"dnaflow/internal/seqio"
	"dnaflow/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

// Options is everything one analyze run needs.
type Options struct {
	Files  []string // "-" or none reads stdin
	Config config.Config
	Log    cmdutil.Logger
	RunID  string // generated when empty
}

// PipelineConfig maps run settings onto the pipeline.
func PipelineConfig(cfg config.Config) (pipeline.Config, error) {
	policy, err := analysis.ParsePolicy(cfg.RevComp)
	if err != nil {
		return pipeline.Config{}, err
	}
	return pipeline.Config{
		Workers:    runutil.EffectiveWorkers(cfg.Workers),
		Capacity:   cfg.Capacity,
		NamePrefix: cfg.NamePrefix,
		Analysis:   analysis.Options{Motif: cfg.Motif, Policy: policy},
	}, nil
}

// Run analyzes every sequence in o.Files, writes results to stdout and
// diagnostics to stderr, and returns the process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	cfg := o.Config
	pcfg, err := PipelineConfig(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	// Open everything before spawning any worker.
	r, closer, err := seqio.OpenAll(cfg.InputFormat, o.Files)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	defer func() { _ = closer.Close() }()

	runID := o.RunID
	if runID == "" {
		runID = uuid.Must(uuid.NewV7()).String()
	}
	o.Log.Infof("run %s: %d workers, queue capacity %d, motif %q, revcomp %s",
		runID, pcfg.Workers, pcfg.Capacity, pcfg.Analysis.Motif, pcfg.Analysis.Policy)

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.StartResultWriter(outw, writers.Options{
		Format: cfg.Output,
		Sort:   cfg.Sort,
		Header: cfg.Header,
		RunID:  runID,
	}, runutil.WriterBuffer(pcfg.Workers))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// A writer that stops early (write error, closed pipe) ends the run.
	werrCh := make(chan error, 1)
	go func() {
		err := <-writeErr
		if err != nil {
			cancel()
		}
		werrCh <- err
	}()

	st, perr := cmdutil.RunStream(ctx, pcfg, r, func(res analysis.Result) error {
		select {
		case inCh <- res:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)
	werr := <-werrCh
	if werr == nil {
		werr = outw.Flush()
	}

	o.Log.Infof("run %s: %d sequences in %s, per worker %v", runID, st.Consumed, st.Elapsed, st.PerWorker)

	if perr != nil && !errors.Is(perr, context.Canceled) {
		fmt.Fprintln(stderr, perr)
		return ExitRuntime
	}
	if parent.Err() != nil {
		return ExitCancelled
	}
	if werr != nil {
		if writers.IsBrokenPipe(werr) {
			return ExitOK
		}
		fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if perr != nil {
		return ExitCancelled
	}
	if st.Consumed == 0 {
		o.Log.Warnf("no sequences found in input")
		return cfg.NoMatchExitCode
	}
	return ExitOK
}
