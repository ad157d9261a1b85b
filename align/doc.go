// Package align defines the value types shared by every alignment
// algorithm in bioalign: the AlignmentOperation variant, the immutable
// Alignment record it composes into, and the Scoring policy consumed by
// the pairwise DP engine.
//
// None of the types here perform alignment themselves — see package
// pairwise for the Gotoh affine-gap dynamic programmer that produces
// Alignment values, and package distance for the edit-distance kernels
// that don't need one at all.
//
// # AlignmentOperation
//
// A tagged variant over six cases: Match, Subst, Del, Ins consume one
// symbol from one or both sequences; Xclip(n)/Yclip(n) clip n symbols
// from a sequence at a boundary and may only appear as the first and/or
// last element of an operation list.
//
// # Alignment
//
// Alignment{Score, XStart, YStart, XEnd, YEnd, XLen, YLen, Operations,
// Mode} is immutable once constructed and provides three projections:
// CIGAR (compact run-length string), Pretty (three-line diagram), and
// Path (per-operation coordinate trace).
//
// # Scoring
//
// Scoring{GapOpen, GapExtend, Substitution} plus four clip penalties.
// Gap cost for a run of length k is GapOpen + k*GapExtend (Gotoh
// convention: one open cost plus a per-symbol extend cost).
package align
