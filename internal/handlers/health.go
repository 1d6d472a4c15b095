package handlers

import "net/http"

// ProbeResponse is the payload served by the liveness and readiness probes.
type ProbeResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthCheck reports liveness for Kubernetes probes.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, ProbeResponse{Status: "healthy", Service: serviceName})
}
