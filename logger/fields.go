package logger

// Standard field names for consistent structured logging across the
// analyzer. Use these constants instead of raw strings.
const (
	// Identity and context
	FieldSessionID = "session_id"
	FieldSource    = "source"

	// Components
	FieldComponent = "component"

	// Dataset shape
	FieldRows    = "rows"
	FieldColumns = "columns"
	FieldColumn  = "column"

	// Timing
	FieldDurationMS = "duration_ms"
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"

	// Errors
	FieldError = "error"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"

	// Charts
	FieldChartKind = "chart_kind"

	// Analyzer-specific
	FieldSymbol = "symbol" // pipeline stage glyph (⨳, Σ, ▤, ...)
)
