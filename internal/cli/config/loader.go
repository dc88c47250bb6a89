// Package config loads CLI configuration for sqlfront.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all CLI configuration options.
type Config struct {
	// MaxErrors aborts a parse after this many recognition errors (0 = no limit).
	MaxErrors int `koanf:"max_errors"`
	// DoubleQuotedStrings lexes "..." as string literals.
	DoubleQuotedStrings bool `koanf:"double_quoted_strings"`
	// Comments keeps source comments during lexing.
	Comments bool `koanf:"comments"`
	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
var defaults = map[string]interface{}{
	"max_errors":            0,
	"double_quoted_strings": false,
	"comments":              false,
	"verbose":               false,
}

// envPrefix is the prefix for environment variable overrides,
// e.g. SQLFRONT_MAX_ERRORS=5.
const envPrefix = "SQLFRONT_"

// findConfigFile finds the config file to use.
// Priority: explicit path > sqlfront.yaml > sqlfront.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("sqlfront.yaml"); err == nil {
		return "sqlfront.yaml"
	}
	if _, err := os.Stat("sqlfront.yml"); err == nil {
		return "sqlfront.yml"
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
// flags may be nil when no CLI flags should participate.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	} else if cfgFile != "" {
		return nil, fmt.Errorf("config file not found: %s", cfgFile)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		p := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		})
		if err := k.Load(p, nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
