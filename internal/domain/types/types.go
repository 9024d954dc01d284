// Package types contains common types used across the application
package types

// RankEntry represents one row of a comparison ranking.
type RankEntry struct {
	Rank    int     `json:"rank"`
	Subject string  `json:"subject"`
	Level   string  `json:"level"`
	Score   float64 `json:"score"`
}
