// Package config defines service configuration structures and loading.
//
// Conventions:
// - Provide New() defaults and Load(ctx) layered loading.
// - Keep koanf tags flat so env keys map one-to-one.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"github.com/okian/scoutgen/internal/domain/names"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the handler: text or json.
	LogFormat string `koanf:"log_format"`

	// DBPath points at the SQLite sink. Empty means in-memory only.
	DBPath string `koanf:"db_path"`

	// Region is the generation target region id.
	Region string `koanf:"region"`

	// DefaultRegion receives name lookups for unknown regions.
	DefaultRegion string `koanf:"default_region"`

	// BatchSize is the number of players per batch run.
	BatchSize int `koanf:"batch_size"`

	// Workers bounds the batch fan-out.
	Workers int `koanf:"workers"`

	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `koanf:"seed"`

	// NameRetries bounds redraws on duplicate roster names.
	NameRetries int `koanf:"name_retries"`

	// ScoutSkills maps skill names to levels in [0,10].
	ScoutSkills map[string]int `koanf:"scout_skills"`

	// Regions merges extra name pools over the built-in tables.
	Regions map[string]names.Pool `koanf:"regions"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		DBPath:        "",
		Region:        names.DefaultRegion,
		DefaultRegion: names.DefaultRegion,
		BatchSize:     25,
		Workers:       4,
		Seed:          0,
		NameRetries:   5,
		ScoutSkills:   map[string]int{},
	}
}
