package config

// Environment variable names
const (
	EnvEnvironment   = "ENVIRONMENT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvServiceName   = "SERVICE_NAME"
	EnvVersion       = "VERSION"
	EnvInventoryPath = "INVENTORY_PATH"
	EnvDays          = "SIMULATION_DAYS"
	EnvMetricsPath   = "METRICS_PATH"
)

// Default values
const (
	DefaultEnvironment = "dev"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "gilded-rose"
	DefaultVersion     = "dev"
	DefaultDays        = 2
)

// Metrics textfile extension expected by the node exporter textfile collector
const MetricsFileExtension = ".prom"
