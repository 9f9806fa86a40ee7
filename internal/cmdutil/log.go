// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a WARN line to dst unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Logger carries the diagnostic stream and its switches. Stdout is never
// used, so machine-readable results stay clean.
type Logger struct {
	W       io.Writer
	Quiet   bool
	Verbose bool
}

func (l Logger) Warnf(format string, a ...any) {
	if l.W == nil {
		return
	}
	Warnf(l.W, l.Quiet, format, a...)
}

// Infof only prints with Verbose set and Quiet unset.
func (l Logger) Infof(format string, a ...any) {
	if l.W == nil || l.Quiet || !l.Verbose {
		return
	}
	_, _ = fmt.Fprintf(l.W, "INFO: "+format+"\n", a...)
}
