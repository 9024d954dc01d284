package probe

import "errors"

// Sentinel kinds for probe errors.
var (
	ErrRankingOrder = errors.New("ranking not ordered by score")
	ErrRankingGap   = errors.New("ranking positions not consecutive")
)
