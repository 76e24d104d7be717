package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/portfolio/portfolio-backend/internal/config"
	"github.com/portfolio/portfolio-backend/internal/service"
	httpTransport "github.com/portfolio/portfolio-backend/internal/transport/http"
	"github.com/portfolio/portfolio-backend/pkg/logger"
)

func main() {
	httpServer, cfg := newServer()

	listener, err := httpServer.Listen()
	if err != nil {
		logger.LogError(context.Background(), err, "http_listen",
			slog.String("address", cfg.Server.Addr))
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Backend server running on %s\n", config.PublicURL)

	if err := httpServer.Serve(listener); err != nil {
		logger.LogServiceStop(config.ServiceName, err.Error())
		os.Exit(1)
	}

	logger.LogServiceStop(config.ServiceName, "server closed")
}

// newServer prepares everything up to the bind. Config and logger problems
// are logged and replaced by defaults; it never exits the process.
func newServer() (*httpTransport.HTTPServer, *config.Config) {
	envLoaded := godotenv.Load() == nil

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	loggerCfg := logger.Config{
		Level:    cfg.Logging.Level,
		Format:   cfg.Logging.Format,
		FilePath: cfg.Logging.FilePath,
		FileName: cfg.Logging.FileName,
	}

	loggerErr := logger.SetupLogger(loggerCfg, config.ServiceName)

	if cfgErr != nil {
		slog.Warn("Invalid configuration, using defaults", slog.String("error", cfgErr.Error()))
	}
	if loggerErr != nil {
		slog.Warn("Log file unavailable, logging to console", slog.String("error", loggerErr.Error()))
	}

	logger.LogServiceStart(config.ServiceName, map[string]interface{}{
		"address":    cfg.Server.Addr,
		"log_level":  cfg.Logging.Level,
		"log_format": cfg.Logging.Format,
		"dotenv":     envLoaded,
	})

	healthService := service.NewHealthService()

	handlers := httpTransport.NewHTTPHandlers(healthService)
	return httpTransport.NewHTTPServer(cfg, handlers), cfg
}
