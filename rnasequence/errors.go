package rnasequence

import "errors"

// Sentinel error kinds shared across the predictor, per the propagation
// policy: accessor primitives never error on well-formed input (they
// return an "infinite"/out-of-band sentinel instead); only parsing and
// constructor paths return one of these, wrapped with fmt.Errorf("...: %w").
var (
	// ErrBadInput flags a malformed sequence alphabet, constraint string,
	// stream, or index range.
	ErrBadInput = errors.New("bad input")
	// ErrOutOfRange flags an access outside a table's admissible band or an
	// index range that cannot be represented after a shift.
	ErrOutOfRange = errors.New("out of range")
)
