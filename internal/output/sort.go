package output

import (
	"sort"

	"dnaflow/internal/analysis"
)

// SortResults orders results by Name, then Symbols, for output that does
// not depend on which analyzer finished first.
func SortResults(list []analysis.Result) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Symbols < b.Symbols
	})
}
