package config

// Config represents the core analyzer configuration
type Config struct {
	Sample   SampleConfig   `mapstructure:"sample"`
	Output   OutputConfig   `mapstructure:"output"`
	Charts   ChartsConfig   `mapstructure:"charts"`
	Trend    TrendConfig    `mapstructure:"trend"`
	Database DatabaseConfig `mapstructure:"database"`
	LogTheme string         `mapstructure:"log_theme"` // Color theme: gruvbox, everforest
}

// SampleConfig configures the built-in sample dataset generator
type SampleConfig struct {
	Seed int64 `mapstructure:"seed"` // RNG seed for reproducible sample data
	Rows int   `mapstructure:"rows"` // Number of rows to generate
}

// OutputConfig configures where run artifacts (charts, reports) are written
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// ChartsConfig configures chart rendering
type ChartsConfig struct {
	Width         int `mapstructure:"width"`          // Chart width in pixels
	Height        int `mapstructure:"height"`         // Chart height in pixels
	HistogramBins int `mapstructure:"histogram_bins"` // Bin count for histograms
}

// TrendConfig configures moving-average trend analysis
type TrendConfig struct {
	Window int `mapstructure:"window"` // Moving average window in rows (default: 7)
}

// DatabaseConfig configures the SQLite session store
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
