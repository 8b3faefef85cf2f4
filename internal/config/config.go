// Package config loads hourclock settings from the config file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Display  DisplayConfig  `mapstructure:"display"`
		Export   ExportConfig   `mapstructure:"export"`
		Server   ServerConfig   `mapstructure:"server"`
		Settings SettingsConfig `mapstructure:"settings"`
		System   SystemConfig   `mapstructure:"-"`
	}

	// DisplayConfig holds chart and colour settings
	DisplayConfig struct {
		PlaceholderColor string `mapstructure:"placeholder_color"`
		ChartSize        int    `mapstructure:"chart_size"`
		InnerRadius      int    `mapstructure:"inner_radius"`
		OuterRadius      int    `mapstructure:"outer_radius"`
		DarkTheme        bool   `mapstructure:"dark_theme"`
	}

	// ExportConfig holds PNG export settings
	ExportConfig struct {
		PNGFile string `mapstructure:"png_file"`
		Cmd     string `mapstructure:"cmd"`
	}

	// ServerConfig holds settings for `hourclock serve`
	ServerConfig struct {
		Host string `mapstructure:"host"`
		Port uint   `mapstructure:"port"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		LogLevel string `mapstructure:"log_level"`
		NoColor  bool   `mapstructure:"no_color"`
	}

	// SystemConfig holds resolved file locations
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithSystemPaths records where the config file, database and log live.
func WithSystemPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath: configPath,
			DBPath:     dbPath,
			LogPath:    logPath,
		}

		return nil
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
