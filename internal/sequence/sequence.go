// Package sequence holds the immutable sequence value passed from the
// producer to the analyzers.
package sequence

import "unicode/utf8"

// Sequence is a named run of symbols. The zero value is an unnamed, empty
// sequence. Fields are unexported so a Sequence cannot change after New.
type Sequence struct {
	name    string
	symbols string
}

// New returns a Sequence with the given name and symbols.
func New(name, symbols string) Sequence {
	return Sequence{name: name, symbols: symbols}
}

func (s Sequence) Name() string    { return s.name }
func (s Sequence) Symbols() string { return s.symbols }

// Len is the number of symbols, not bytes.
func (s Sequence) Len() int { return utf8.RuneCountInString(s.symbols) }
