package item

// ==================== Classifier ====================

// DefaultClassifierSize bounds the number of distinct names kept classified
const DefaultClassifierSize = 1024

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read inventory file: %w"
	ErrMsgParseConfigFailed    = "failed to parse inventory file: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemEmptyName       = "%w: item at index %d has empty name"
	ErrFmtItemQualityRange    = "%w: item %q at index %d has quality %d outside %d..%d"
	ErrFmtItemFieldValidation = "%w: %s failed on %s"
)

// ==================== Log Messages ====================

const (
	LogMsgInventoryLoaded = "Inventory loaded"
	LogMsgUsingFixture    = "No inventory file configured, using fixture inventory"
)

// Validation tag names
const (
	tagQualityRange = "quality_range"
)
