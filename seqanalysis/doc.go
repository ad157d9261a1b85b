// Package seqanalysis provides simple whole-sequence statistics (GC
// content) and a configurable open-reading-frame finder built on top
// of a plain codon scan, one reading frame at a time.
package seqanalysis
