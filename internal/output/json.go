package output

import (
	"io"

	"dnaflow/internal/analysis"
	"dnaflow/internal/jsonutil"
	"dnaflow/pkg/api"
)

// ToAPIResult converts a domain Result to the stable wire schema (v1).
func ToAPIResult(r analysis.Result, runID string) api.ResultV1 {
	counts := make(map[string]int, len(r.BaseCounts))
	for sym, n := range r.BaseCounts {
		counts[string(sym)] = n
	}
	return api.ResultV1{
		RunID:             runID,
		Name:              r.Name,
		Sequence:          r.Symbols,
		Length:            r.Length,
		BaseCounts:        counts,
		GCContent:         r.GCContent,
		ReverseComplement: r.ReverseComplement,
		Motif:             r.Motif,
		ContainsMotif:     r.ContainsMotif,
	}
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []analysis.Result, runID string) error {
	out := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r, runID))
	}
	return jsonutil.EncodePretty(w, out)
}
