package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Logger defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)

	// Stats command defaults
	v.SetDefault("stats.precision", 6)      // Significant digits in table output
	v.SetDefault("stats.format", "table")   // "table" or "json"
}
