// Package models defines the shared data structures of the cleanup pipeline:
// page and work records, correction pairs, and runtime configuration.
package models

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// RulesConfig points at the two correction-rule tables.
type RulesConfig struct {
	Corrections string `yaml:"corrections"`
	FSHack      string `yaml:"f_s_hack"`
}

// Config holds runtime configuration for the clean and generate-rules
// commands. Values come from a YAML file; CLI flags override.
type Config struct {
	Rules               RulesConfig `yaml:"rules"`
	Workers             int         `yaml:"workers"`
	SimilarityThreshold float64     `yaml:"similarity_threshold"`
	FrequencyThreshold  float64     `yaml:"frequency_threshold"`
	DBPath              string      `yaml:"db_path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Workers:             runtime.NumCPU(),
		SimilarityThreshold: 80,
		FrequencyThreshold:  1e-6,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
