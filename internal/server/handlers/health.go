package handlers

import (
	"log/slog"
	"net/http"

	"github.com/biztime-dev/biztime/internal/api"
	"github.com/biztime-dev/biztime/internal/database"
	"github.com/biztime-dev/biztime/internal/logger"
)

// ReadinessResponse is returned by the readiness check
type ReadinessResponse struct {
	Status string `json:"status" example:"ready"`
	Reason string `json:"reason,omitempty" example:"database unavailable"`
}

// HandleHealth godoc
//
//	@Summary		Health (liveness) Check
//	@Description	Check if the HTTP service is alive and responding.
//	@Tags			Common
//	@Produce		plain
//
//	@Success		200	{string}	string	"OK"
//
//	@Router			/health/live [get]
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// HandleReadiness godoc
//
//	@Summary		Readiness Check
//	@Description	Checks if the service is ready to accept traffic (includes database connectivity)
//	@Tags			Common
//	@Produce		json
//	@Success		200	{object}	ReadinessResponse	"status ready"
//	@Failure		503	{object}	ReadinessResponse	"status not ready"
//	@Router			/health/ready [get]
func HandleReadiness(queries database.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := queries.IsDatabaseRunning(r.Context()); err != nil {
			logger.ContextRequestLogger(r.Context()).Warn("readiness check failed",
				slog.String("error", err.Error()))

			api.RespondWithJSONPayload(w, http.StatusServiceUnavailable, ReadinessResponse{
				Status: "not ready",
				Reason: "database unavailable",
			})
			return
		}

		api.RespondWithJSONPayload(w, http.StatusOK, ReadinessResponse{Status: "ready"})
	}
}
