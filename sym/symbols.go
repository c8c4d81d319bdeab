// Package sym defines canonical symbols for analyzer pipeline stages and
// system markers. These symbols are stable across CLI output, logs, and
// documentation.
package sym

// Pipeline stage symbols. Each maps to a CLI command or run phase.
const (
	Load  = "⨳" // dataset loading/ingest
	Stats = "Σ" // summary statistics
	Chart = "▤" // chart rendering
	At    = "✦" // temporal marker, session timestamps
	Run   = "⟶" // full pipeline run
)

// System infrastructure symbols.
const (
	DB     = "⊔" // database/storage layer
	Report = "▣" // text report export
)

// Glyphs maps a stage/system name to its symbol. The CLI uses this for
// command help text; the names match command names where one exists.
var Glyphs = map[string]string{
	"load":   Load,
	"stats":  Stats,
	"chart":  Chart,
	"at":     At,
	"run":    Run,
	"db":     DB,
	"report": Report,
}
