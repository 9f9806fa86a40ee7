// Package analysis computes per-sequence statistics: symbol counts, GC
// content, the reverse complement and literal motif containment.
//
// Symbols are counted verbatim. Nothing here validates that a sequence is
// made of nucleotides; only ReverseComplement has to decide what to do with
// symbols outside {A,C,G,T}, and it does so through a Policy.
package analysis
