package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrNonFiniteScore = errors.New("non-finite score")
)
