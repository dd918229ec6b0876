// Package config loads the consolenav configuration file.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config represents the consolenav configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Parser   ParserConfig   `yaml:"parser"`
	Resolver ResolverConfig `yaml:"resolver"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ParserConfig holds intent-parser settings.
type ParserConfig struct {
	MinConfidence float64 `yaml:"min_confidence"`
}

// ResolverConfig holds URL-resolver settings.
type ResolverConfig struct {
	// DefaultNamespace is used when a command names no namespace.
	DefaultNamespace string `yaml:"default_namespace"`

	// BaseURL is the console origin for absolute URLs.
	BaseURL string `yaml:"base_url"`

	// RegistryDir is where sitemap.json and pages.json live. Empty means
	// use the built-in tables.
	RegistryDir string `yaml:"registry_dir"`
}

// envVarPattern matches ${VAR_NAME} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Parser: ParserConfig{
			MinConfidence: 0.5,
		},
		Resolver: ResolverConfig{
			DefaultNamespace: "default",
		},
	}
}

// Load reads and parses the config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Substitute environment variables
	data = envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := envVarPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(varName)))
	})

	// Start with defaults
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Parser.MinConfidence < 0 || c.Parser.MinConfidence > 1 {
		return fmt.Errorf("parser.min_confidence must be in [0,1], got %v", c.Parser.MinConfidence)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
