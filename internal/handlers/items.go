package handlers

import (
	"net/http"

	"gitopsdemo/internal/items"
	"gitopsdemo/internal/logger"
	"gitopsdemo/middleware"
)

// ItemsResponse wraps the demo item catalog.
type ItemsResponse struct {
	Items []items.Item `json:"items"`
}

// GetItems serves the fixed demo item catalog.
func GetItems(w http.ResponseWriter, r *http.Request) {
	logger.Get().Info().
		Str("request_id", middleware.GetRequestID(r.Context())).
		Msg("Items endpoint accessed")

	writeJSON(w, r, ItemsResponse{Items: items.Catalog()})
}
