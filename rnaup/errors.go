package rnaup

import "errors"

// ErrInvalidRange is returned by Predict when a caller-supplied
// IndexRange is descending or falls outside the sequence it indexes.
var ErrInvalidRange = errors.New("rnaup: invalid index range")

// ErrNoSequence is returned by Predict when either sequence has zero
// length.
var ErrNoSequence = errors.New("rnaup: empty sequence")
