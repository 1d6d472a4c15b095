package handlers

import (
	"net/http"

	"gitopsdemo/internal/version"
)

// StatusResponse is the application status summary.
type StatusResponse struct {
	App         string `json:"app"`
	Version     string `json:"version"`
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

// GetStatus returns the status handler. The environment accessor is called
// per request.
func GetStatus(env EnvFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, StatusResponse{
			App:         serviceName,
			Version:     version.Version,
			Status:      "running",
			Environment: env(),
		})
	}
}
