package main

import (
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// loggerConfig starts from the preset for the environment (source info only
// in development) and applies the values from app configuration.
func loggerConfig(cfg *config.Config) logger.Config {
	preset := logger.ProductionConfig()
	if cfg.IsDevelopment() {
		preset = logger.DevelopmentConfig()
	}
	return preset.With(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment)
}

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(loggerConfig(cfg))
}
