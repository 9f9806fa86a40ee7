package seqio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), maxLine)
	return sc
}

// LineReader treats every non-empty line as one sequence. Only the line
// terminator (\n or \r\n) is removed; whitespace inside a line is a symbol.
type LineReader struct {
	sc *bufio.Scanner
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{sc: newScanner(r)}
}

func (l *LineReader) Next(ctx context.Context) (Record, error) {
	for l.sc.Scan() {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		line := strings.TrimSuffix(l.sc.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		return Record{Seq: line}, nil
	}
	if err := l.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("line scan: %w", err)
	}
	return Record{}, io.EOF
}
