package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-edge-daemon/internal/config"
	"github.com/MKhiriev/go-edge-daemon/internal/logger"
	"github.com/MKhiriev/go-edge-daemon/models"
)

// Handler serves the management API over the loaded daemon settings.
// The type parameter T is the engine-specific module configuration,
// matching the Settings the daemon was started with.
type Handler[T any] struct {
	settings  *config.Settings[T]
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler constructs a management API handler over settings.
func NewHandler[T any](settings *config.Settings[T], buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler[T] {
	logger.Info().Msg("management handler created")
	return &Handler[T]{
		settings:  settings,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (h *Handler[T]) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error encoding management response")
	}
}
