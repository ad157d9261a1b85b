package align

import "errors"

// Sentinel errors shared by the collaborator packages alphabet, submat
// and seqanalysis. Package distance defines its own ErrLengthMismatch.
var (
	// ErrLengthMismatch indicates a sequence-length precondition was
	// violated (symbol-level complement, which takes exactly one byte).
	ErrLengthMismatch = errors.New("align: sequence length mismatch")

	// ErrUnknownSymbol indicates a byte lies outside the alphabet a
	// substitution matrix or rank transform was built for.
	ErrUnknownSymbol = errors.New("align: unknown symbol")

	// ErrEmptyArgument indicates an empty operand where at least one
	// symbol is required.
	ErrEmptyArgument = errors.New("align: empty argument")

	// ErrInvalidConfiguration indicates an internally inconsistent
	// construction request (e.g. incompatible codon-length sets).
	ErrInvalidConfiguration = errors.New("align: invalid configuration")
)
