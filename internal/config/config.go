package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration. Every field is
// optional; the zero-config defaults give the plain locate-and-link run.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Publish PublishConfig `mapstructure:"publish"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
	File  string `mapstructure:"file"`
}

// PublishConfig contains publish behavior configuration
type PublishConfig struct {
	Strict bool   `mapstructure:"strict"`
	Root   string `mapstructure:"root"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	var searchPaths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(homeDir, ".config", "locate"))
	}
	searchPaths = append(searchPaths, ".")

	return load(viper.New(), searchPaths)
}

func load(v *viper.Viper, searchPaths []string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	// Environment variable overrides
	v.SetEnvPrefix("LOCATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Logging.File = expandPath(cfg.Logging.File)
	cfg.Publish.Root = expandPath(cfg.Publish.Root)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.color", "auto")
	v.SetDefault("logging.file", "")

	v.SetDefault("publish.strict", false)
	v.SetDefault("publish.root", "")
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Logging.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid logging.color %q: want auto, always or never", c.Logging.Color)
	}
	return nil
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
