package main

// Log messages
const (
	LogMsgSimulationFailed = "Simulation failed"
	LogMsgConfigWarning    = "Configuration warning"
	LogMsgRunFinished      = "Run finished"
)

// Error format strings
const (
	ErrFmtLoadConfig     = "failed to load config: %w"
	ErrFmtLoadInventory  = "failed to load inventory: %w"
	ErrFmtInvalidDaysArg = "invalid days argument %q: %w"
)
