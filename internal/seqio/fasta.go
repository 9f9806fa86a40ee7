package seqio

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// FASTAReader yields one record per '>' header; sequence lines are joined.
// Records whose sequence is empty are skipped.
type FASTAReader struct {
	sc   *bufio.Scanner
	id   string
	seq  strings.Builder
	done bool
}

func NewFASTAReader(r io.Reader) *FASTAReader {
	return &FASTAReader{sc: newScanner(r)}
}

func (f *FASTAReader) Next(ctx context.Context) (Record, error) {
	for !f.done {
		if !f.sc.Scan() {
			if err := f.sc.Err(); err != nil {
				return Record{}, fmt.Errorf("fasta scan: %w", err)
			}
			f.done = true
			if rec, ok := f.flush(""); ok {
				return rec, nil
			}
			break
		}
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		line := bytes.TrimSpace(f.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if rec, ok := f.flush(parseHeaderID(line[1:])); ok {
				return rec, nil
			}
			continue
		}
		f.seq.Write(line)
	}
	return Record{}, io.EOF
}

// flush returns the pending record (if it has symbols) and starts next.
func (f *FASTAReader) flush(next string) (Record, bool) {
	rec := Record{ID: f.id, Seq: f.seq.String()}
	f.id = next
	f.seq.Reset()
	return rec, rec.Seq != ""
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
