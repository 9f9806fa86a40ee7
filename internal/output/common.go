// Package output renders analysis results as text blocks, TSV rows or JSON.
package output

import "fmt"

// TSVHeader is the header row for the tsv format.
const TSVHeader = "name\tsequence\tlength\tbase_counts\tgc_percent\treverse_complement\tmotif\tcontains_motif"

// GCPercent formats a GC fraction as a percentage with two decimals.
func GCPercent(f float64) string { return fmt.Sprintf("%.2f%%", f*100) }
