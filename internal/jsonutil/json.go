// internal/jsonutil/json.go
package jsonutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Reuse a 64 KiB buffered writer across JSONL streams to avoid per-stream mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// StreamLines encodes every value received on in as one JSON line.
//   - convert: maps a domain value to its wire type
//   - isBroken: recognizes broken/closed pipe errors so they are not reported
//
// It returns when in is closed or the first encode fails.
func StreamLines[T, W any](out io.Writer, in <-chan T, convert func(T) W, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for v := range in {
		if err := enc.Encode(convert(v)); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil && !isBroken(err) {
		return err
	}
	return nil
}
