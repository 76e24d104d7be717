package http

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/portfolio/portfolio-backend/pkg/logger"
)

func (h *HTTPHandlers) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	health := h.service.Health(ctx)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(health); err != nil {
		logger.LogError(ctx, err, "encode_health_response")
	}
}
