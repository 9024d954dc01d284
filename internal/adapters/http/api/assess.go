// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// assessRequest mirrors the request schema for POST /assess. Scores may omit
// any dimension (missing ones score zero) and may carry unknown keys, which
// the engine ignores.
type assessRequest struct {
	Subject string             `json:"subject"`
	Scores  map[string]float64 `json:"scores"`
}

// AssessHandler handles assessment requests.
type AssessHandler struct {
	deps Dependencies
}

// NewAssessHandler creates a new assess handler.
func NewAssessHandler(deps Dependencies) *AssessHandler {
	return &AssessHandler{deps: deps}
}

// HandlePostAssess handles POST /assess requests.
func (h *AssessHandler) HandlePostAssess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	report, err := h.deps.Assess(r.Context(), req.Subject, req.Scores)
	if err != nil {
		// The engine only rejects non-finite scores; everything else is
		// normalized, so any error here is the caller's.
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}
