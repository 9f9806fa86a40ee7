package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"dnaflow/internal/queue"
	"dnaflow/internal/sequence"
	"dnaflow/internal/seqio"
)

// ErrRead marks a failure to read input. It is fatal for the Source only.
var ErrRead = errors.New("read input")

// DefaultNamePrefix labels unnamed records DNA1, DNA2, ...
const DefaultNamePrefix = "DNA"

// Source is the producer side of the pipeline.
type Source struct {
	// NamePrefix labels records that carry no ID of their own.
	NamePrefix string

	produced atomic.Int64
}

// Run puts every non-empty record from r on q, then one EndOfStream per
// consumer. On a read error it stops reading but still puts the
// EndOfStream items, and returns the error wrapped in ErrRead.
// Cancellation returns ctx.Err() without sending anything further.
func (s *Source) Run(ctx context.Context, r seqio.Reader, q *queue.Queue[Item], consumers int) error {
	prefix := s.NamePrefix
	if prefix == "" {
		prefix = DefaultNamePrefix
	}

	var readErr error
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			readErr = fmt.Errorf("%w: %w", ErrRead, err)
			break
		}
		if rec.Seq == "" {
			continue
		}
		n := s.produced.Add(1)
		name := rec.ID
		if name == "" {
			name = fmt.Sprintf("%s%d", prefix, n)
		}
		if err := q.Put(ctx, SequenceItem(sequence.New(name, rec.Seq))); err != nil {
			return err
		}
	}

	for i := 0; i < consumers; i++ {
		if err := q.Put(ctx, EndOfStream()); err != nil {
			return err
		}
	}
	return readErr
}

// Produced is the number of sequences put so far.
func (s *Source) Produced() int { return int(s.produced.Load()) }
