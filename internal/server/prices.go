package server

import (
	"net/http"
	"time"

	"samko/internal/model"
)

type priceResponse struct {
	Success     bool             `json:"success"`
	Data        []model.OilPrice `json:"data"`
	Source      string           `json:"source"`
	LastUpdated time.Time        `json:"lastUpdated"`
	Error       string           `json:"error,omitempty"`
}

// handleOilPrices always answers 200; a failed refresh shows up as source "fallback".
func (s *Server) handleOilPrices(w http.ResponseWriter, r *http.Request) {
	res := s.prices.Get(r.Context())
	writeJSON(w, http.StatusOK, priceResponse{
		Success:     true,
		Data:        res.Prices,
		Source:      res.Source,
		LastUpdated: res.LastUpdated,
		Error:       res.Err,
	})
}
