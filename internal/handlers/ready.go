package handlers

import "net/http"

// ReadinessCheck reports traffic-readiness for Kubernetes probes.
func ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, ProbeResponse{Status: "ready", Service: serviceName})
}
