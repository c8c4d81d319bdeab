package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Sample generator defaults match the reference dataset: 100 daily
	// observations, fixed seed for reproducibility
	v.SetDefault("sample.seed", 42)
	v.SetDefault("sample.rows", 100)

	// Output defaults
	v.SetDefault("output.dir", "outputs")

	// Chart defaults
	v.SetDefault("charts.width", 1024)
	v.SetDefault("charts.height", 512)
	v.SetDefault("charts.histogram_bins", 20)

	// Trend defaults
	v.SetDefault("trend.window", 7) // 7-row moving average

	// Database defaults
	v.SetDefault("database.path", "analyzer.db")

	// Log theme
	v.SetDefault("log_theme", "everforest")
}
