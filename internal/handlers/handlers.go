package handlers

import (
	"encoding/json"
	"net/http"

	"gitopsdemo/internal/logger"
	"gitopsdemo/middleware"
)

// serviceName identifies this service in probe and status payloads.
const serviceName = "fastapi-demo"

// EnvFunc reports the current deployment environment. Handlers invoke it on
// every request so the value is never cached at startup.
type EnvFunc func() string

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.HTTPError(r.Method, r.URL.Path, http.StatusInternalServerError, err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("failed to encode response")
	}
}
