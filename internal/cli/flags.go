package cli

import (
	"github.com/spf13/pflag"

	"dnaflow/internal/config"
)

// runFlags are the settings shared by analyze and compare. Flags only
// override the config file when they were set explicitly.
type runFlags struct {
	v config.Config
}

func bindRunFlags(fs *pflag.FlagSet, f *runFlags) {
	f.v = config.Default()
	fs.IntVar(&f.v.Capacity, "capacity", f.v.Capacity, "queue capacity (0 = unbounded)")
	fs.StringVar(&f.v.Motif, "motif", f.v.Motif, "literal motif to search for")
	fs.StringVar(&f.v.RevComp, "revcomp", f.v.RevComp, "unmapped symbols in reverse complement: mask | pass | skip | reject")
	fs.StringVar(&f.v.InputFormat, "input-format", f.v.InputFormat, "input format: lines | fasta")
	fs.StringVar(&f.v.NamePrefix, "name-prefix", f.v.NamePrefix, "label prefix for unnamed sequences")
}

func (f *runFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	set := map[string]func(){
		"capacity":     func() { cfg.Capacity = f.v.Capacity },
		"motif":        func() { cfg.Motif = f.v.Motif },
		"revcomp":      func() { cfg.RevComp = f.v.RevComp },
		"input-format": func() { cfg.InputFormat = f.v.InputFormat },
		"name-prefix":  func() { cfg.NamePrefix = f.v.NamePrefix },
	}
	for name, fn := range set {
		if fs.Changed(name) {
			fn()
		}
	}
}
