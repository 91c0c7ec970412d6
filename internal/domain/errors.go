package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Rule precondition errors
	ErrMsgMismatchingItem    = "rule does not apply to this item"
	ErrMsgQualityNotPositive = "quality is not positive"
	ErrMsgQualityTooHigh     = "quality is already at maximum"
	ErrMsgLegendaryImmutable = "legendary item cannot be altered"
	ErrMsgSellInNotNegative  = "sell-in is not negative"

	// Simulation errors
	ErrMsgInvalidDays = "invalid number of days"
)

// Rule errors signal that a single rule step was invoked outside its
// precondition. They are programmer errors: the composed daily update never
// produces them.
var (
	ErrMismatchingItem    = errors.New(ErrMsgMismatchingItem)
	ErrQualityNotPositive = errors.New(ErrMsgQualityNotPositive)
	ErrQualityTooHigh     = errors.New(ErrMsgQualityTooHigh)
	ErrLegendaryImmutable = errors.New(ErrMsgLegendaryImmutable)
	ErrSellInNotNegative  = errors.New(ErrMsgSellInNotNegative)

	// Simulation errors
	ErrInvalidDays = errors.New(ErrMsgInvalidDays)
)
