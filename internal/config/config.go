package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	ServiceName = "portfolio-backend"

	// ListenAddr is never read from the environment.
	ListenAddr = "0.0.0.0:3000"
	PublicURL  = "http://localhost:3000"
)

type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Addr string
}

type LoggingConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	Format   string `envconfig:"LOG_FORMAT" default:"console"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:"logs"`
	FileName string `envconfig:"LOG_FILE_NAME" default:"portfolio-backend.log"`
}

func Load() (*Config, error) {
	var logging LoggingConfig
	if err := envconfig.Process("", &logging); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr: ListenAddr,
		},
		Logging: logging,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default is the configuration used when the environment cannot be loaded.
// It logs to the console and writes nothing to disk.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ListenAddr,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "console",
			FilePath: "logs",
			FileName: "portfolio-backend.log",
		},
	}
}

func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.Logging.Format)
	}

	if c.Logging.Format == "json" && c.Logging.FilePath == "" {
		return fmt.Errorf("LOG_FILE_PATH is required for json logging")
	}

	return nil
}
