package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by this package
const Namespace = "gilded_rose"

// Simulation metric names
const (
	MetricNameDaysAdvanced    = "days_advanced_total"
	MetricNameItemsAdvanced   = "items_advanced_total"
	MetricNameQualityGained   = "quality_gained_total"
	MetricNameQualityLost     = "quality_lost_total"
	MetricNameItemsPastSellBy = "items_past_sell_by_total"
	MetricNameQualityDelta    = "quality_delta"
	MetricNameInventorySize   = "inventory_size"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Simulation metric help text
const (
	HelpTextDaysAdvanced    = "Total number of daily updates applied"
	HelpTextItemsAdvanced   = "Total number of item updates applied"
	HelpTextQualityGained   = "Total quality points gained"
	HelpTextQualityLost     = "Total quality points lost"
	HelpTextItemsPastSellBy = "Total number of item updates past the sell-by date"
	HelpTextQualityDelta    = "Per-item quality change in one daily update"
	HelpTextInventorySize   = "Number of items in the last updated inventory"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelCategory = "category"
	LabelConjured = "conjured"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// QualityDeltaBuckets covers the possible single-day changes: up to -4 for a
// conjured item past its sell-by date, up to +3 for a backstage pass, and the
// drop to zero of an expired pass.
var QualityDeltaBuckets = []float64{-50, -10, -4, -3, -2, -1, 0, 1, 2, 3}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsWritten     = "Metrics written"
	LogMsgMetricsWriteFailed = "Failed to write metrics"
)
