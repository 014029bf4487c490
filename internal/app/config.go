package app

import (
	"github.com/portside/vesselwatch-backend/internal/platform/envutil"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
)

type Config struct {
	Port        string
	Environment string
	OtelEnabled bool
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		Environment: envutil.String("APP_ENV", "development"),
		OtelEnabled: envutil.Bool("OTEL_ENABLED", false),
	}
	log.Info("Config loaded", "port", cfg.Port, "environment", cfg.Environment, "otel_enabled", cfg.OtelEnabled)
	return cfg
}
