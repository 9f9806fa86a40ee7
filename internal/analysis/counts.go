package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Counts maps a symbol to the number of times it occurs.
type Counts map[rune]int

// CountBases tallies every symbol in s. There is no case folding and no
// alphabet restriction.
func CountBases(s string) Counts {
	c := make(Counts, 4)
	for _, r := range s {
		c[r]++
	}
	return c
}

// Total is the number of symbols counted.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Symbols returns the counted symbols in ascending order.
func (c Counts) Symbols() []rune {
	out := make([]rune, 0, len(c))
	for r := range c {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the counts as {A=2, C=2} in symbol order.
func (c Counts) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range c.Symbols() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%c=%d", r, c[r])
	}
	b.WriteByte('}')
	return b.String()
}
