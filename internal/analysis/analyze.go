package analysis

import (
	"fmt"

	"dnaflow/internal/sequence"
)

// Options configures Analyze. The zero value uses DefaultMotif and DefaultPolicy.
type Options struct {
	Motif  string
	Policy Policy
}

func (o Options) withDefaults() Options {
	if o.Motif == "" {
		o.Motif = DefaultMotif
	}
	if o.Policy == "" {
		o.Policy = DefaultPolicy
	}
	return o
}

// Result is everything computed for one sequence.
type Result struct {
	Name              string
	Symbols           string
	Length            int // symbols, not bytes
	BaseCounts        Counts
	GCContent         float64 // fraction in [0,1]
	ReverseComplement string
	Motif             string
	ContainsMotif     bool
}

// Analyze runs every algorithm over seq.
func Analyze(seq sequence.Sequence, opt Options) (Result, error) {
	opt = opt.withDefaults()
	s := seq.Symbols()

	counts := CountBases(s)
	rc, err := ReverseComplement(s, opt.Policy)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", seq.Name(), err)
	}
	return Result{
		Name:              seq.Name(),
		Symbols:           s,
		Length:            seq.Len(),
		BaseCounts:        counts,
		GCContent:         counts.GC(),
		ReverseComplement: rc,
		Motif:             opt.Motif,
		ContainsMotif:     ContainsMotif(s, opt.Motif),
	}, nil
}
