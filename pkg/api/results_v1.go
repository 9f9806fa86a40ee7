// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one analyzed sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	RunID             string         `json:"run_id,omitempty"`
	Name              string         `json:"name"`
	Sequence          string         `json:"sequence"`
	Length            int            `json:"length"`
	BaseCounts        map[string]int `json:"base_counts"`
	GCContent         float64        `json:"gc_content"` // fraction in [0,1]
	ReverseComplement string         `json:"reverse_complement"`
	Motif             string         `json:"motif"`
	ContainsMotif     bool           `json:"contains_motif"`
}

// RunSummaryV1 is printed by `dnaflow compare --output json`.
type RunSummaryV1 struct {
	RunID     string  `json:"run_id,omitempty"`
	Workers   int     `json:"workers"`
	Sequences int     `json:"sequences"`
	PerWorker []int   `json:"per_worker"`
	ElapsedMS float64 `json:"elapsed_ms"`
}
