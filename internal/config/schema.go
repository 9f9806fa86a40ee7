package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// schema constrains every field of Config. Enum values must match
// analysis.Policies, seqio.Formats and the writers registry.
const schema = `
#Config: {
	workers:            int & >=0
	capacity:           int & >=0
	motif:              string & !=""
	revcomp:            "mask" | "pass" | "skip" | "reject"
	input_format:       "lines" | "fasta"
	name_prefix:        string
	output:             "text" | "tsv" | "json" | "jsonl"
	sort:               bool
	header:             bool
	no_match_exit_code: int & >=0 & <=255
}
`

// Validate checks c against the CUE schema. Errors name the offending field.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, cueerrors.Details(err, nil))
	}
	return nil
}
