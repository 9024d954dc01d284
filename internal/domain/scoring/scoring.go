// Package scoring implements the assessment pipeline: clamp raw dimension
// scores, average them, map the average to a sentience level, and package the
// result with a content fingerprint.
package scoring

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/sentia/internal/domain/level"
	"github.com/okian/sentia/internal/domain/model"
	"github.com/okian/sentia/internal/domain/proof"
	"github.com/okian/sentia/internal/domain/registry"
	"github.com/okian/sentia/internal/domain/types"
)

// Scoring constants.
const (
	clampMin = 0.0
	clampMax = 1.0
	// passThreshold is the dimension score above which all of the
	// dimension's sub-tests count as passed. The pass decision is made once
	// per dimension, not per sub-test.
	passThreshold = 0.5
	// activeConfidence is assigned to any dimension with a non-zero score.
	activeConfidence = 0.85
)

// History is the sink that receives every completed assessment.
type History interface {
	Append(ctx context.Context, a model.Assessment) error
}

// Engine turns named raw scores into leveled assessment reports. Safe for
// concurrent use; the history append is serialized internally.
type Engine struct {
	mu      sync.Mutex
	history History
	now     func() time.Time
	newID   func() string
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithHistory sets the sink for completed assessments.
func WithHistory(h History) Option {
	return func(e *Engine) {
		if h != nil {
			e.history = h
		}
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator overrides the assessment ID source. Intended for tests.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// NewEngine creates an Engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assess scores subject against every registered dimension and returns the
// external report.
//
// Missing dimensions default to 0, out-of-range values are clamped into
// [0,1], and unknown keys are ignored; none of these are errors. The only
// rejected input is a non-finite value, which cannot be normalized
// meaningfully. The completed assessment is appended to the engine history
// before the report is returned.
func (e *Engine) Assess(ctx context.Context, subject string, raw map[string]float64) (model.Report, error) {
	if err := validateFinite(raw); err != nil {
		return model.Report{}, err
	}

	dims := registry.Dimensions()
	results := make([]model.DimensionResult, 0, len(dims))
	sum := 0.0
	for _, d := range dims {
		score := clamp(raw[d.Name])
		sum += score

		confidence := 0.0
		if score > 0 {
			confidence = activeConfidence
		}
		passed := 0
		if score > passThreshold {
			passed = len(d.SubTests)
		}
		results = append(results, model.DimensionResult{
			Name:        d.Name,
			Score:       score,
			Confidence:  confidence,
			TestsPassed: passed,
			TestsTotal:  len(d.SubTests),
		})
	}

	avg := 0.0
	if len(dims) > 0 {
		avg = sum / float64(len(dims))
	}

	a := model.Assessment{
		ID:           e.newID(),
		Subject:      subject,
		Results:      results,
		AverageScore: avg,
		Level:        level.FromAverage(avg),
		Timestamp:    e.now().UTC(),
		ProofHash:    proof.Fingerprint(raw),
	}

	if e.history != nil {
		e.mu.Lock()
		err := e.history.Append(ctx, a)
		e.mu.Unlock()
		if err != nil {
			return model.Report{}, fmt.Errorf("append to history: %w", err)
		}
	}

	return a.Report(), nil
}

// Compare ranks previously produced reports by average score, highest first.
// The sort is stable, so reports with equal averages keep their input order
// and receive consecutive distinct ranks. Pure function: inputs are not
// mutated and engine history is not consulted.
func Compare(reports []model.Report) []types.RankEntry {
	sorted := make([]model.Report, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AverageScore > sorted[j].AverageScore
	})

	entries := make([]types.RankEntry, len(sorted))
	for i, r := range sorted {
		entries[i] = types.RankEntry{
			Rank:    i + 1,
			Subject: r.Subject,
			Level:   r.LevelName,
			Score:   r.AverageScore,
		}
	}
	return entries
}

// validateFinite rejects NaN and infinite raw values.
func validateFinite(raw map[string]float64) error {
	for name, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s", ErrNonFiniteScore, name)
		}
	}
	return nil
}

// clamp bounds v into the valid score range.
func clamp(v float64) float64 {
	return math.Max(clampMin, math.Min(clampMax, v))
}
