package analysis

// GCContent returns the fraction of G and C among all symbols of s.
// An empty sequence has a GC content of 0.
func GCContent(s string) float64 {
	return CountBases(s).GC()
}

// GC is the GC fraction of an existing tally; 0 when nothing was counted.
func (c Counts) GC() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c['G']+c['C']) / float64(total)
}
