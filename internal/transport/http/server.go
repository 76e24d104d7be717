package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/portfolio/portfolio-backend/internal/config"
	"github.com/portfolio/portfolio-backend/internal/transport/http/middleware"
)

type HTTPServer struct {
	server *http.Server
	config *config.Config
}

// NewRouter wires the route table. Logging and CORS wrap the router itself
// rather than going through router.Use, so unmatched requests get them too.
func NewRouter(handlers *HTTPHandlers) http.Handler {
	router := mux.NewRouter()

	// A known path with the wrong method is just another unmatched route.
	router.NotFoundHandler = http.HandlerFunc(http.NotFound)
	router.MethodNotAllowedHandler = router.NotFoundHandler

	router.Use(middleware.PanicRecoveryMiddleware)

	handlers.SetupRoutes(router)

	return middleware.LoggingMiddleware(middleware.CORSMiddleware(router))
}

func NewHTTPServer(cfg *config.Config, handlers *HTTPHandlers) *HTTPServer {
	return &HTTPServer{
		config: cfg,
		server: &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: NewRouter(handlers),
		},
	}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

// Listen binds the configured address. There is no retry and no fallback port.
func (s *HTTPServer) Listen() (net.Listener, error) {
	addr := s.config.Server.Addr

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", addr, err)
	}

	slog.Info("HTTP listener bound",
		slog.String("address", listener.Addr().String()),
	)

	return listener, nil
}

// Serve blocks until the listener fails or Stop is called.
func (s *HTTPServer) Serve(listener net.Listener) error {
	if err := s.server.Serve(listener); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			slog.Info("HTTP server stopped")
			return nil
		}
		slog.Error("HTTP server error", slog.String("error", err.Error()))
		return err
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	slog.Info("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}
