package shop

// ============================================================================
// Log Messages - Simulation
// ============================================================================

// Log messages for simulation runs
const (
	LogMsgSimulationStarting  = "Simulation starting"
	LogMsgSimulationCompleted = "Simulation completed"
	LogMsgSimulationCancelled = "Simulation cancelled"
	LogMsgDayAdvanced         = "Day advanced"
	LogMsgDayCallbackFailed   = "Day callback failed"
)

// ============================================================================
// Error Messages
// ============================================================================

// Error format strings used with fmt.Errorf
const (
	ErrFmtRuleViolation  = "%w: %s"
	ErrFmtNegativeDays   = "%w: %d"
	ErrFmtDayCallback    = "day %d: %w"
	ErrFmtSimulationStop = "simulation stopped after day %d: %w"
)
