package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnmappedSymbol is returned by ReverseComplement under PolicyReject.
var ErrUnmappedSymbol = errors.New("symbol has no complement")

// Policy decides what ReverseComplement does with a symbol outside {A,C,G,T}.
type Policy string

const (
	// PolicyMask writes N in place of the symbol, keeping the length.
	PolicyMask Policy = "mask"
	// PolicyPass copies the symbol through unchanged.
	PolicyPass Policy = "pass"
	// PolicySkip drops the symbol, so the output can be shorter than the input.
	PolicySkip Policy = "skip"
	// PolicyReject fails with ErrUnmappedSymbol.
	PolicyReject Policy = "reject"
)

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = PolicyMask

// Policies lists the accepted policy names.
var Policies = []Policy{PolicyMask, PolicyPass, PolicySkip, PolicyReject}

// ParsePolicy maps a name to a Policy. The empty string selects DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return DefaultPolicy, nil
	}
	for _, p := range Policies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown reverse-complement policy %q (want mask | pass | skip | reject)", s)
}

var complement = map[rune]rune{
	'A': 'T', 'T': 'A',
	'C': 'G', 'G': 'C',
}

// ReverseComplement maps A<->T and C<->G and reverses the result.
func ReverseComplement(s string, p Policy) (string, error) {
	if s == "" {
		return "", nil
	}
	if p == "" {
		p = DefaultPolicy
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := len(rs) - 1; i >= 0; i-- {
		r := rs[i]
		if c, ok := complement[r]; ok {
			b.WriteRune(c)
			continue
		}
		switch p {
		case PolicyMask:
			b.WriteByte('N')
		case PolicyPass:
			b.WriteRune(r)
		case PolicySkip:
		case PolicyReject:
			return "", fmt.Errorf("%w: %q at position %d", ErrUnmappedSymbol, r, i)
		default:
			return "", fmt.Errorf("unknown reverse-complement policy %q", p)
		}
	}
	return b.String(), nil
}
