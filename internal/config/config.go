package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Hermes   HermesConfig   `yaml:"hermes"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Template TemplateConfig `yaml:"template"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
	RateLimit   int `yaml:"rate_limit"`
}

// HermesConfig enables event publishing. MaxAge is the event stream
// retention, e.g. "720h"; zero keeps the built-in default.
type HermesConfig struct {
	URL    string        `yaml:"url"`
	MaxAge time.Duration `yaml:"max_age"`
}

// CatalogConfig points at a vendor catalog file. Empty uses the built-in catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// TemplateConfig points at an evaluation template file. Empty uses the built-in template.
type TemplateConfig struct {
	Path string `yaml:"path"`
}

type ExportConfig struct {
	Filename string `yaml:"filename"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SlogLevel parses the configured level, defaulting to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a JSON logger, or a text logger when Format is "text".
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if strings.EqualFold(l.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
			RateLimit:   120,
		},
		Export: ExportConfig{
			Filename: "evaluacion_proveedor.csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("VENDOREVAL_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("VENDOREVAL_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("VENDOREVAL_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimit = n
		}
	}
	if v := os.Getenv("VENDOREVAL_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("VENDOREVAL_HERMES_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Hermes.MaxAge = d
		}
	}
	if v := os.Getenv("VENDOREVAL_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("VENDOREVAL_TEMPLATE_PATH"); v != "" {
		cfg.Template.Path = v
	}
	if v := os.Getenv("VENDOREVAL_EXPORT_FILENAME"); v != "" {
		cfg.Export.Filename = v
	}
	if v := os.Getenv("VENDOREVAL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("VENDOREVAL_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
