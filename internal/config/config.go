// Package config provides the settings of the specification builder.
package config

import "github.com/saltfish/tramoseats/internal/spec"

// Config is the root configuration structure.
type Config struct {
	Env     string        `yaml:"env"`
	Builder BuilderConfig `yaml:"builder"`
	Logging LoggingConfig `yaml:"logging"`
}

// BuilderConfig contains the defaults applied while building specifications.
type BuilderConfig struct {
	// DefaultBaseline is the specification used when a run carries none.
	DefaultBaseline string `yaml:"default_baseline"`
	// DefaultFrequency applies to runs whose frequency is 0.
	DefaultFrequency int `yaml:"default_frequency"`
	// DefaultCriticalValue is used for outlier detection unless the run
	// asks for its own critical value.
	DefaultCriticalValue float64 `yaml:"default_critical_value"`
	// ConsistencyCheck enables the post-build check of ARIMA orders
	// against explicit coefficient counts.
	ConsistencyCheck bool `yaml:"consistency_check"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	OutputPath string `yaml:"output_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Env: "development",
		Builder: BuilderConfig{
			DefaultBaseline:      spec.DefaultBaseline,
			DefaultFrequency:     12,
			DefaultCriticalValue: 3.5,
			ConsistencyCheck:     true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
		},
	}
}
