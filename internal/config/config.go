// Package config loads server configuration from an optional YAML file and
// RULEBOARD_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Prefs     PrefsConfig     `yaml:"prefs"`
	Seed      SeedConfig      `yaml:"seed"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// PrefsConfig locates the preference database. Only preferences persist;
// record data lives in memory and resets on restart.
type PrefsConfig struct {
	Path string `yaml:"path"`
}

// SeedConfig optionally overrides the embedded sample data.
type SeedConfig struct {
	Path string `yaml:"path"`
}

// TransportConfig selects how the MCP surface is served: "stdio" or "http".
type TransportConfig struct {
	Mode string `yaml:"mode"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Prefs: PrefsConfig{
			Path: "ruleboard.db",
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("RULEBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("RULEBOARD_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("RULEBOARD_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RULEBOARD_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if path := os.Getenv("RULEBOARD_PREFS_PATH"); path != "" {
		cfg.Prefs.Path = path
	}
	if path := os.Getenv("RULEBOARD_SEED_PATH"); path != "" {
		cfg.Seed.Path = path
	}
	if mode := os.Getenv("RULEBOARD_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if level := os.Getenv("RULEBOARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
