// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// HistoryHandler handles history read requests.
type HistoryHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps Dependencies, maxLimit int) *HistoryHandler {
	return &HistoryHandler{deps: deps, maxLimit: maxLimit}
}

// HandleGetHistory handles GET /history?limit=N requests.
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if h.maxLimit > 0 && n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded",
			fmt.Errorf("%w: limit %d exceeds maximum %d", ErrLimitExceeded, n, h.maxLimit))
		return
	}
	reports, err := h.deps.History(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}
