package pipeline

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"dnaflow/internal/analysis"
	"dnaflow/internal/queue"
	"dnaflow/internal/seqio"
)

// Config controls one pipeline run.
type Config struct {
	Workers    int // number of analyzer goroutines (>=1)
	Capacity   int // queue bound; 0 = unbounded
	NamePrefix string
	Analysis   analysis.Options
}

// Stats describes a finished run.
type Stats struct {
	Workers    int
	Produced   int
	Consumed   int
	PerWorker  []int
	Terminated int // analyzers that stopped on their own EndOfStream item
	Elapsed    time.Duration
}

// Run wires one queue, one Source and cfg.Workers Analyzers, and waits for
// all of them.
//
// A read error does not cancel the analyzers: they drain what was queued,
// take their EndOfStream items, and Run then returns the ErrRead error.
// Any other error (cancellation, analysis, sink) cancels the whole run and
// the first one is returned.
func Run(ctx context.Context, cfg Config, r seqio.Reader, sink Sink) (Stats, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if sink == nil {
		sink = Discard
	}
	start := time.Now()
	q := queue.New[Item](cfg.Capacity)
	g, gctx := errgroup.WithContext(ctx)

	src := &Source{NamePrefix: cfg.NamePrefix}
	var readErr error
	g.Go(func() error {
		err := src.Run(gctx, r, q, cfg.Workers)
		if errors.Is(err, ErrRead) {
			readErr = err
			return nil
		}
		return err
	})

	analyzers := make([]*Analyzer, cfg.Workers)
	for i := range analyzers {
		a := &Analyzer{ID: i + 1, Options: cfg.Analysis}
		analyzers[i] = a
		g.Go(func() error { return a.Run(gctx, q, sink) })
	}

	err := g.Wait()
	if err == nil {
		err = readErr
	}

	st := Stats{
		Workers:   cfg.Workers,
		Produced:  src.Produced(),
		PerWorker: make([]int, len(analyzers)),
		Elapsed:   time.Since(start),
	}
	for i, a := range analyzers {
		st.PerWorker[i] = a.Consumed()
		st.Consumed += a.Consumed()
		if a.Finished() {
			st.Terminated++
		}
	}
	if ctx.Err() != nil {
		return st, ctx.Err()
	}
	return st, err
}
