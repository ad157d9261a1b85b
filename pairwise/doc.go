// Package pairwise implements the Gotoh affine-gap dynamic-programming
// engine that turns a pair of byte sequences and an align.Scoring policy
// into an align.Alignment.
//
// PairwiseAligner owns three score bands (M: match/subst, I: insertion —
// gap in y, D: deletion — gap in x) plus their traceback pointers, sized
// to (m+1)x(n+1) and retained across calls. Four methods select the boundary and
// termination rule that give Global, Semiglobal, Local and Custom their
// distinct behaviour; the fill and traceback core is shared.
//
// Steps:
//  1. Grow the DP buffers to fit len(x), len(y) if needed.
//  2. Initialize the boundary row/column per mode.
//  3. Fill M, I and D row-by-row left to right.
//  4. Pick the mode-specific terminal cell and walk predecessors back to
//     a stop cell, emitting operations in reverse.
//  5. Reverse the operations and wrap them, together with the consumed
//     bounds, in an Alignment.
//
// Time complexity: O(m*n) per call. Memory usage: O(m*n) for the
// traceback tables (the backtrace is exact, so the score bands cannot
// be collapsed to rolling rows without also retaining full predecessor
// tags).
package pairwise
