package http

import (
	"net/http"

	"github.com/MKhiriev/go-edge-daemon/models"
)

// listModules serves the runtime module specs the daemon manages.
// Today that is the single bootstrap module from the settings document.
func (h *Handler[T]) listModules(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, []models.ModuleSpec[T]{*h.settings.Runtime()})
}
