package handlers

import (
	"net/http"

	"gitopsdemo/internal/logger"
	"gitopsdemo/internal/version"
	"gitopsdemo/middleware"
)

// RootResponse holds the welcome payload served at the root route.
type RootResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// Root returns the welcome handler. The environment accessor is called per
// request.
func Root(env EnvFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Get().Info().
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("Root endpoint accessed")

		writeJSON(w, r, RootResponse{
			Message:     "Welcome to FastAPI GitOps Demo",
			Version:     version.Version,
			Environment: env(),
		})
	}
}
