package seqio

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// OpenAll opens every path up front, so a missing file is reported before
// any work starts, and chains them into one Reader. The returned closer
// closes every file.
func OpenAll(format string, paths []string) (Reader, io.Closer, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var (
		readers []Reader
		closers multiCloser
	)
	for _, p := range paths {
		rc, err := Open(p)
		if err != nil {
			_ = closers.Close()
			return nil, nil, fmt.Errorf("open %s: %w", p, err)
		}
		closers = append(closers, rc)
		r, err := NewReader(format, rc)
		if err != nil {
			_ = closers.Close()
			return nil, nil, err
		}
		readers = append(readers, r)
	}
	return Chain(readers...), closers, nil
}

// Chain reads each reader to io.EOF in turn.
func Chain(rs ...Reader) Reader { return &chain{rs: rs} }

type chain struct {
	rs []Reader
}

func (c *chain) Next(ctx context.Context) (Record, error) {
	for len(c.rs) > 0 {
		rec, err := c.rs[0].Next(ctx)
		if errors.Is(err, io.EOF) {
			c.rs = c.rs[1:]
			continue
		}
		return rec, err
	}
	return Record{}, io.EOF
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var errs []error
	for _, c := range m {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
