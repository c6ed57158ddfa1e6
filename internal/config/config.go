// Package config handles configuration loading and validation for the activities server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MetricsConfig holds configuration for Prometheus metrics exposure.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ServerConfig holds configuration for the activities server.
type ServerConfig struct {
	Listen   string        `yaml:"listen"`
	LogLevel string        `yaml:"log_level"`
	Metrics  *MetricsConfig `yaml:"metrics,omitempty"`
}

// DefaultServerConfig returns a ServerConfig with all defaults applied.
// Used when the server is started without a config file.
func DefaultServerConfig() *ServerConfig {
	cfg := &ServerConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadServerConfig loads server configuration from a YAML file.
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &ServerConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *ServerConfig) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Metrics == nil {
		// Metrics are on by default; disable explicitly in the config file.
		c.Metrics = &MetricsConfig{Enabled: true}
	}
}
