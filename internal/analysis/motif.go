package analysis

import "strings"

// DefaultMotif is the start codon.
const DefaultMotif = "ATG"

// ContainsMotif reports whether s contains motif as a literal substring.
func ContainsMotif(s, motif string) bool {
	return strings.Contains(s, motif)
}
