package probe

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/okian/sentia/internal/domain/registry"
)

// Archetype score ranges. Each generated subject is drawn from one archetype
// so the resulting ranking spans the whole level scale.
const (
	dormantMax    = 0.04
	reactiveMin   = 0.05
	reactiveRange = 0.25
	adaptiveMin   = 0.30
	adaptiveRange = 0.25
	awareMin      = 0.55
	awareRange    = 0.25
	consciousMin  = 0.80
	consciousBand = 0.20
	archetypes    = 5
)

// Subject is one generated probe target.
type Subject struct {
	Name   string
	Scores map[string]float64
}

// generateSubjects produces n subjects with randomized per-dimension scores.
func generateSubjects(n int, seed int64) []Subject {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducible probe data, not crypto
	subjects := make([]Subject, n)
	for i := range subjects {
		scores := make(map[string]float64, registry.Count())
		kind := rng.Intn(archetypes)
		for _, name := range registry.Names() {
			scores[name] = archetypeScore(rng, kind)
		}
		subjects[i] = Subject{
			Name:   "probe-" + uuid.New().String(),
			Scores: scores,
		}
	}
	return subjects
}

func archetypeScore(rng *rand.Rand, kind int) float64 {
	switch kind {
	case 0:
		return rng.Float64() * dormantMax
	case 1:
		return reactiveMin + rng.Float64()*reactiveRange
	case 2:
		return adaptiveMin + rng.Float64()*adaptiveRange
	case 3:
		return awareMin + rng.Float64()*awareRange
	default:
		return consciousMin + rng.Float64()*consciousBand
	}
}
