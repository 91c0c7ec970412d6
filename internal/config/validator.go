package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when the configuration cannot be used
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate checks the configuration and returns warnings for non-critical issues
func Validate(cfg *Config) ([]string, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	var problems []string
	if cfg.Days < 0 {
		problems = append(problems, fmt.Sprintf("%s must not be negative (got %d)", EnvDays, cfg.Days))
	}
	if !contains(validLogLevels, strings.ToLower(cfg.LogLevel)) {
		problems = append(problems, fmt.Sprintf("%s must be one of %s (got %q)", EnvLogLevel, strings.Join(validLogLevels, ", "), cfg.LogLevel))
	}
	if !contains(validLogFormats, strings.ToLower(cfg.LogFormat)) {
		problems = append(problems, fmt.Sprintf("%s must be one of %s (got %q)", EnvLogFormat, strings.Join(validLogFormats, ", "), cfg.LogFormat))
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	var warnings []string
	if cfg.MetricsPath != "" && !strings.HasSuffix(cfg.MetricsPath, MetricsFileExtension) {
		warnings = append(warnings, fmt.Sprintf("%s does not end in %s - the textfile collector will ignore it", EnvMetricsPath, MetricsFileExtension))
	}
	if cfg.ServiceName == "" {
		warnings = append(warnings, EnvServiceName+" is empty - logs will carry no service attribute")
	}

	return warnings, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
