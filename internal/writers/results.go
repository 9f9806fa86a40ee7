package writers

import (
	"io"

	"dnaflow/internal/analysis"
	"dnaflow/internal/jsonutil"
	"dnaflow/internal/output"
	"dnaflow/pkg/api"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Options controls a result writer.
type Options struct {
	Format string
	Sort   bool   // collect everything and sort by name before writing
	Header bool   // TSV header row
	RunID  string // stamped into JSON/JSONL records when set
}

func init() {
	Register(FormatText, func(w io.Writer, in <-chan analysis.Result, _ Options) error {
		return output.StreamText(w, in)
	})
	Register(FormatTSV, func(w io.Writer, in <-chan analysis.Result, o Options) error {
		return output.StreamTSV(w, in, o.Header)
	})
	Register(FormatJSON, func(w io.Writer, in <-chan analysis.Result, o Options) error {
		var buf []analysis.Result
		for r := range in {
			buf = append(buf, r)
		}
		return output.WriteJSON(w, buf, o.RunID)
	})
	Register(FormatJSONL, func(w io.Writer, in <-chan analysis.Result, o Options) error {
		return jsonutil.StreamLines(w, in,
			func(r analysis.Result) api.ResultV1 { return output.ToAPIResult(r, o.RunID) },
			IsBrokenPipe,
		)
	})
}

// StartResultWriter spins up a writer goroutine. Callers send results on the
// returned channel, close it, then receive exactly one error.
//
// The error is sent as soon as writing stops, before the channel is closed,
// so callers can cancel their producers. The goroutine then keeps draining
// the channel so senders are never left blocked. Broken pipes are reported
// like any other error; callers decide with IsBrokenPipe.
func StartResultWriter(out io.Writer, o Options, bufSize int) (chan<- analysis.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan analysis.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		defer func() {
			for range in {
			}
		}()
		fn, err := Lookup(o.Format)
		if err != nil {
			errCh <- err
			return
		}
		src := (<-chan analysis.Result)(in)
		if o.Sort {
			src = sorted(in)
		}
		errCh <- fn(out, src, o)
	}()

	return in, errCh
}

// sorted collects in, sorts it, and replays it on a closed channel.
func sorted(in <-chan analysis.Result) <-chan analysis.Result {
	var buf []analysis.Result
	for r := range in {
		buf = append(buf, r)
	}
	output.SortResults(buf)
	out := make(chan analysis.Result, len(buf))
	for _, r := range buf {
		out <- r
	}
	close(out)
	return out
}
