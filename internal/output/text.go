package output

import (
	"fmt"
	"io"
	"strings"

	"dnaflow/internal/analysis"
)

// RenderBlock returns the human-readable report for one result, ending in a
// blank line.
func RenderBlock(r analysis.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sequence: %s\n", r.Name)
	fmt.Fprintf(&b, "Original sequence: %s\n", r.Symbols)
	fmt.Fprintf(&b, "Base Counts: %s\n", r.BaseCounts)
	fmt.Fprintf(&b, "GC Content: %s\n", GCPercent(r.GCContent))
	fmt.Fprintf(&b, "Reverse Complement: %s\n", r.ReverseComplement)
	fmt.Fprintf(&b, "Contains subsequence '%s': %t\n", r.Motif, r.ContainsMotif)
	b.WriteByte('\n')
	return b.String()
}

// StreamText writes one block per result as it arrives.
func StreamText(w io.Writer, in <-chan analysis.Result) error {
	for r := range in {
		if _, err := io.WriteString(w, RenderBlock(r)); err != nil {
			return err
		}
	}
	return nil
}
