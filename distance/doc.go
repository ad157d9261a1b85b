// Package distance implements standalone edit-distance kernels: exact
// Hamming distance and full/bounded Levenshtein distance. Unlike
// pairwise.PairwiseAligner these are pure functions with no retained
// state, returning a single count rather than an Alignment.
//
// The "Simd" variants exist for callers that reach for a vectorized
// kernel by name; they delegate to the scalar implementation, which is
// observably equivalent and keeps the package free of
// architecture-specific code.
package distance
