package seqio

import (
	"context"
	"errors"
	"io"
)

// SliceReader replays records held in memory.
type SliceReader struct {
	recs []Record
}

func NewSliceReader(recs []Record) *SliceReader { return &SliceReader{recs: recs} }

func (s *SliceReader) Next(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if len(s.recs) == 0 {
		return Record{}, io.EOF
	}
	r := s.recs[0]
	s.recs = s.recs[1:]
	return r, nil
}

// ReadAll drains r into memory, so the same input can be replayed.
func ReadAll(ctx context.Context, r Reader) ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
