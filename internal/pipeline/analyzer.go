package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"dnaflow/internal/analysis"
	"dnaflow/internal/queue"
)

// ErrInvalidItem is returned when an analyzer takes a zero Item.
var ErrInvalidItem = errors.New("invalid queue item")

// Analyzer is one consumer. It must not be shared between goroutines.
type Analyzer struct {
	ID      int
	Options analysis.Options

	consumed atomic.Int64
	finished atomic.Bool
}

// Run takes items until it sees EndOfStream, analyzing each sequence and
// emitting the result. The EndOfStream item is discarded, never put back.
func (a *Analyzer) Run(ctx context.Context, q *queue.Queue[Item], sink Sink) error {
	for {
		it, err := q.Take(ctx)
		if err != nil {
			return err
		}
		if it.IsEnd() {
			a.finished.Store(true)
			return nil
		}
		if it.Kind != KindSequence {
			return fmt.Errorf("analyzer %d: %w (kind %d)", a.ID, ErrInvalidItem, it.Kind)
		}

		res, err := analysis.Analyze(it.Seq, a.Options)
		if err != nil {
			return fmt.Errorf("analyzer %d: %w", a.ID, err)
		}
		a.consumed.Add(1)
		if err := sink.Emit(ctx, res); err != nil {
			return err
		}
	}
}

// Consumed is the number of sequences analyzed so far.
func (a *Analyzer) Consumed() int { return int(a.consumed.Load()) }

// Finished reports whether the analyzer stopped on its EndOfStream item.
func (a *Analyzer) Finished() bool { return a.finished.Load() }
