// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"dnaflow/internal/cli"
)

// RunContext executes the dnaflow CLI with argv and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCommand(stderr)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(stderr, "error:", msg)
	}
	return cli.ExitCode(err)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
