package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file and applies environment variable overrides.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	// Load from YAML file if exists
	if configPath != "" {
		if err := loadFromYAML(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromYAML loads configuration from a YAML file.
func loadFromYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, use defaults
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}

	// Builder
	if v := os.Getenv("TRAMOSEATS_DEFAULT_BASELINE"); v != "" {
		cfg.Builder.DefaultBaseline = v
	}
	if v := os.Getenv("TRAMOSEATS_DEFAULT_FREQUENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Builder.DefaultFrequency = n
		}
	}
	if v := os.Getenv("TRAMOSEATS_DEFAULT_CRITICAL_VALUE"); v != "" {
		if cv, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Builder.DefaultCriticalValue = cv
		}
	}
	if v := os.Getenv("TRAMOSEATS_CONSISTENCY_CHECK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Builder.ConsistencyCheck = b
		}
	}

	// Logging
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
}

// MustLoad loads configuration and panics on error.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
