// Package alphabet provides the alphabet external collaborator: sets of
// legal symbols, rank transforms (byte -> dense integer rank, plus a
// sliding-window q-gram encoder), and the DNA/RNA complement functions
// pairwise.PairwiseAligner and the submat matrices assume bytes are
// drawn from.
package alphabet
