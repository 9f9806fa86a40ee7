// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"dnaflow/internal/analysis"
)

// StreamFunc drains in and writes every result to w.
type StreamFunc func(w io.Writer, in <-chan analysis.Result, o Options) error

// Writer registry (format → handler). Formats register in init().
var resultWriters = map[string]StreamFunc{}

// Register adds or replaces (last wins) the handler for format.
func Register(format string, fn StreamFunc) { resultWriters[format] = fn }

// Formats lists the registered formats in name order.
func Formats() []string {
	out := make([]string, 0, len(resultWriters))
	for f := range resultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the handler for format.
func Lookup(format string) (StreamFunc, error) {
	fn, ok := resultWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn, nil
}
