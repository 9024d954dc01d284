// Package model contains domain records passed between layers.
package model

import (
	"math"
	"time"

	"github.com/okian/sentia/internal/domain/level"
)

// DimensionResult is the per-dimension outcome of a single assessment.
type DimensionResult struct {
	Name       string
	Score      float64 // clamped to [0,1]
	Confidence float64 // 0.85 when Score > 0, else 0
	Evidence   []string
	// TestsPassed counts the dimension's sub-tests as passed when the
	// dimension's own score exceeds 0.5. All-or-nothing per dimension;
	// there is no per-sub-test evaluation.
	TestsPassed int
	TestsTotal  int
}

// Reliability returns TestsPassed/TestsTotal, or 0 for a dimension with no
// sub-tests.
func (r DimensionResult) Reliability() float64 {
	if r.TestsTotal == 0 {
		return 0
	}
	return float64(r.TestsPassed) / float64(r.TestsTotal)
}

// Assessment is the full in-memory record of one scoring call. Results hold
// one entry per registered dimension, in registry order. Immutable once the
// level and average are computed.
type Assessment struct {
	ID           string
	Subject      string
	Results      []DimensionResult
	AverageScore float64
	Level        level.Level
	Timestamp    time.Time
	ProofHash    string
}

// DimensionReport is the external per-dimension shape.
type DimensionReport struct {
	Score       float64 `json:"score"`
	Reliability float64 `json:"reliability"`
}

// Report is the external record produced by an assessment. The field set and
// nesting are a compatibility contract with existing consumers and must not
// change.
type Report struct {
	Subject          string                     `json:"subject"`
	SentienceLevel   int                        `json:"sentience_level"`
	LevelName        string                     `json:"level_name"`
	LevelDescription string                     `json:"level_description"`
	AverageScore     float64                    `json:"average_score"`
	Dimensions       map[string]DimensionReport `json:"dimensions"`
	Timestamp        string                     `json:"timestamp"`
	ProofHash        string                     `json:"proof_hash"`
}

// Report renders the assessment into its external shape, rounding scores,
// reliabilities, and the average to four decimal places.
func (a *Assessment) Report() Report {
	dims := make(map[string]DimensionReport, len(a.Results))
	for _, r := range a.Results {
		dims[r.Name] = DimensionReport{
			Score:       Round4(r.Score),
			Reliability: Round4(r.Reliability()),
		}
	}
	return Report{
		Subject:          a.Subject,
		SentienceLevel:   int(a.Level),
		LevelName:        a.Level.Name(),
		LevelDescription: a.Level.Description(),
		AverageScore:     Round4(a.AverageScore),
		Dimensions:       dims,
		Timestamp:        a.Timestamp.UTC().Format(time.RFC3339),
		ProofHash:        a.ProofHash,
	}
}

// Round4 rounds to four decimal places, the precision used in reports.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
