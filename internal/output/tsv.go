package output

import (
	"fmt"
	"io"
	"strings"

	"dnaflow/internal/analysis"
)

// Backslash escapes keep every row on one line with eight columns, whatever
// the symbols are.
var fieldEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

var symbolEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`, ",", `\,`, ":", `\:`)

// FormatCountsTSV renders counts as A:2,C:2 in symbol order. Separator
// symbols inside the column are backslash-escaped.
func FormatCountsTSV(c analysis.Counts) string {
	syms := c.Symbols()
	parts := make([]string, len(syms))
	for i, r := range syms {
		parts[i] = fmt.Sprintf("%s:%d", symbolEscaper.Replace(string(r)), c[r])
	}
	return strings.Join(parts, ",")
}

// FormatRowTSV returns the columns of TSVHeader (no trailing newline).
// Text columns escape backslash, tab, CR and LF as \\, \t, \r and \n.
func FormatRowTSV(r analysis.Result) string {
	return fmt.Sprintf("%s\t%s\t%d\t%s\t%.2f\t%s\t%s\t%t",
		fieldEscaper.Replace(r.Name), fieldEscaper.Replace(r.Symbols), r.Length,
		FormatCountsTSV(r.BaseCounts), r.GCContent*100,
		fieldEscaper.Replace(r.ReverseComplement), fieldEscaper.Replace(r.Motif), r.ContainsMotif,
	)
}

// StreamTSV writes the optional header, then one row per result.
func StreamTSV(w io.Writer, in <-chan analysis.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
