// internal/runutil/runutil.go
package runutil

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// EffectiveWorkers resolves the configured worker count: 0 (or less) means
// one analyzer per CPU.
func EffectiveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// WriterBuffer sizes the result channel feeding the writer goroutine.
func WriterBuffer(workers int) int {
	if workers < 1 {
		workers = 1
	}
	return workers * 4
}

// ParseWorkerList parses "1,2,4" into worker counts. Every entry must be
// >= 1; duplicates are kept so a count can be timed twice.
func ParseWorkerList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty worker list")
	}
	var out []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("worker count %q: %w", f, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("worker count %d must be >= 1", n)
		}
		out = append(out, n)
	}
	return out, nil
}
