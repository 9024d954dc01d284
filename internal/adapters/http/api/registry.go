// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/sentia/internal/domain/registry"
)

// RegistryHandler serves the static dimension catalog.
type RegistryHandler struct{}

// NewRegistryHandler creates a new registry handler.
func NewRegistryHandler() *RegistryHandler {
	return &RegistryHandler{}
}

// HandleGetRegistry handles GET /registry requests.
func (h *RegistryHandler) HandleGetRegistry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, registry.Dimensions())
}
