// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/sentia/internal/domain/model"
)

// CompareHandler handles ranking requests over previously produced reports.
type CompareHandler struct {
	deps     Dependencies
	maxBatch int
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(deps Dependencies, maxBatch int) *CompareHandler {
	return &CompareHandler{deps: deps, maxBatch: maxBatch}
}

// HandlePostCompare handles POST /compare requests. The body is a JSON array
// of report objects as returned by POST /assess.
func (h *CompareHandler) HandlePostCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var reports []model.Report
	if err := json.NewDecoder(r.Body).Decode(&reports); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	if h.maxBatch > 0 && len(reports) > h.maxBatch {
		writeError(w, http.StatusBadRequest, "batch_too_large",
			fmt.Errorf("%w: batch of %d exceeds maximum %d", ErrLimitExceeded, len(reports), h.maxBatch))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Compare(r.Context(), reports))
}
