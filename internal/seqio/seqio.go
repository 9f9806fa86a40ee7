// Package seqio reads raw sequence records from line-oriented text or FASTA.
//
// Readers are pull-based: Next returns one record at a time and io.EOF once
// input is exhausted. Empty records are never returned.
package seqio

import (
	"context"
	"fmt"
	"io"
)

// Record is one raw sequence. ID is empty for line input; the caller names it.
type Record struct {
	ID  string
	Seq string
}

// Reader yields records until io.EOF.
type Reader interface {
	Next(ctx context.Context) (Record, error)
}

// Input formats.
const (
	FormatLines = "lines"
	FormatFASTA = "fasta"
)

// Formats lists the accepted input formats.
var Formats = []string{FormatLines, FormatFASTA}

// NewReader returns a Reader for format over r.
func NewReader(format string, r io.Reader) (Reader, error) {
	switch format {
	case "", FormatLines:
		return NewLineReader(r), nil
	case FormatFASTA:
		return NewFASTAReader(r), nil
	default:
		return nil, fmt.Errorf("unknown input format %q (want lines | fasta)", format)
	}
}
