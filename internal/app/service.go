// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/okian/sentia/internal/adapters/repository"
	"github.com/okian/sentia/internal/domain/dedupe"
	"github.com/okian/sentia/internal/domain/level"
	"github.com/okian/sentia/internal/domain/model"
	"github.com/okian/sentia/internal/domain/scoring"
	"github.com/okian/sentia/internal/domain/types"
	"github.com/okian/sentia/pkg/logger"
	"github.com/okian/sentia/pkg/metrics"
)

// Service implements the API dependencies for the assessment engine.
type Service struct {
	mu sync.Mutex

	engine  *scoring.Engine
	history repository.Store
	deduper dedupe.Deduper

	// Configuration
	historySize int
	dedupeSize  int

	// Counters exposed via /stats
	assessments atomic.Int64
	duplicates  atomic.Int64

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithHistorySize caps the in-memory history. Zero keeps it unbounded.
func WithHistorySize(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.historySize = n
		}
	}
}

// WithDedupeSize sets the size of the fingerprint cache.
func WithDedupeSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.dedupeSize = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		historySize: 0, // unbounded
		dedupeSize:  50000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.history = repository.NewMemoryStore(repository.WithMaxSize(s.historySize))
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.engine = scoring.NewEngine(scoring.WithHistory(s.history))

	s.logger.Info(ctx, "assessment service started",
		logger.Int("history_size", s.historySize),
		logger.Int("dedupe_size", s.dedupeSize))
	s.started = true
	return nil
}

// Assess runs the scoring pipeline for subject and records stats and
// metrics. Duplicate inputs (same fingerprint) are counted, not rejected.
func (s *Service) Assess(ctx context.Context, subject string, scores map[string]float64) (model.Report, error) {
	report, err := s.engine.Assess(ctx, subject, scores)
	if err != nil {
		metrics.RecordScoringError()
		s.logger.Warn(ctx, "assessment rejected",
			logger.String("subject", subject), logger.Error(err))
		return model.Report{}, err
	}

	s.assessments.Add(1)
	metrics.RecordAssessment(report.LevelName)
	metrics.UpdateHistorySize(s.history.Count(ctx))

	if s.deduper.SeenAndRecord(ctx, report.ProofHash) {
		s.duplicates.Add(1)
		metrics.RecordDuplicate()
		s.logger.Debug(ctx, "duplicate input fingerprint",
			logger.String("subject", subject),
			logger.String("proof_hash", report.ProofHash))
	}
	metrics.UpdateDedupeSize(s.deduper.Size())

	s.logger.Debug(ctx, "assessment complete",
		logger.String("subject", subject),
		logger.String("level", report.LevelName),
		logger.Float64("average", report.AverageScore))
	return report, nil
}

// Compare ranks the given reports by average score, highest first.
func (s *Service) Compare(_ context.Context, reports []model.Report) []types.RankEntry {
	return scoring.Compare(reports)
}

// History returns up to n of the most recent reports, oldest first.
func (s *Service) History(ctx context.Context, n int) ([]model.Report, error) {
	assessments, err := s.history.Recent(ctx, n)
	if err != nil {
		return nil, err
	}
	reports := make([]model.Report, len(assessments))
	for i := range assessments {
		reports[i] = assessments[i].Report()
	}
	return reports, nil
}

// GetStats returns service statistics for the /stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	dist := make(map[string]int)
	if recent, err := s.history.Recent(ctx, s.history.Count(ctx)); err == nil {
		for i := range recent {
			dist[recent[i].Level.Name()]++
		}
	}
	// Levels with no assessments still appear, so dashboards get a full scale.
	for l := level.NonSentient; l <= level.AutonomousConscious; l++ {
		if _, ok := dist[l.Name()]; !ok {
			dist[l.Name()] = 0
		}
	}
	return map[string]interface{}{
		"assessments_total":  s.assessments.Load(),
		"duplicates_total":   s.duplicates.Load(),
		"history_size":       s.history.Count(ctx),
		"dedupe_size":        s.deduper.Size(),
		"level_distribution": dist,
	}
}
