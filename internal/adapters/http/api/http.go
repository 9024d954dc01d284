// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/sentia/internal/domain/model"
	"github.com/okian/sentia/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Assess scores a subject and returns the external report.
	Assess(ctx context.Context, subject string, scores map[string]float64) (model.Report, error)

	// Compare ranks previously produced reports by average score.
	Compare(ctx context.Context, reports []model.Report) []types.RankEntry

	// History returns up to n of the most recent reports, oldest first.
	History(ctx context.Context, n int) ([]model.Report, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	assessHandler   *AssessHandler
	compareHandler  *CompareHandler
	historyHandler  *HistoryHandler
	registryHandler *RegistryHandler
}

// Limits applied by the read and batch endpoints.
type Limits struct {
	MaxHistoryLimit int
	MaxCompareBatch int
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, limits Limits) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		assessHandler:   NewAssessHandler(deps),
		compareHandler:  NewCompareHandler(deps, limits.MaxCompareBatch),
		historyHandler:  NewHistoryHandler(deps, limits.MaxHistoryLimit),
		registryHandler: NewRegistryHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/assess", MetricsMiddleware(s.assessHandler.HandlePostAssess, "assess"))
	mux.HandleFunc("/compare", MetricsMiddleware(s.compareHandler.HandlePostCompare, "compare"))
	mux.HandleFunc("/history", MetricsMiddleware(s.historyHandler.HandleGetHistory, "history"))
	mux.HandleFunc("/registry", MetricsMiddleware(s.registryHandler.HandleGetRegistry, "registry"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
