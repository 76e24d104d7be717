package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/portfolio/portfolio-backend/internal/service"
)

const (
	RootPath   = "/"
	HealthPath = "/api/health"
)

type HTTPHandlers struct {
	service service.HealthService
}

func NewHTTPHandlers(healthService service.HealthService) *HTTPHandlers {
	return &HTTPHandlers{
		service: healthService,
	}
}

func (h *HTTPHandlers) SetupRoutes(router *mux.Router) {
	router.HandleFunc(RootPath, h.HandleRoot).Methods(http.MethodGet)
	router.HandleFunc(HealthPath, h.HandleHealthCheck).Methods(http.MethodGet)
}
