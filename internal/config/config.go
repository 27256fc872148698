// Package config loads settings for the forthwith CLI.  Layering, lowest to
// highest priority: built-in defaults, an optional forthwith.yaml, FORTHWITH_*
// environment variables, then explicitly set command-line flags.
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

// Config holds every tunable of the CLI and REPL.
type Config struct {
	Prompt    string `koanf:"prompt"`
	HistoryDB string `koanf:"history_db"`
	Trace     bool   `koanf:"trace"`
	StepLimit int    `koanf:"step_limit"`
}

const DefaultPrompt = "forthwith> "

// findConfigFile returns the config file to use: an explicit path wins,
// otherwise forthwith.yaml or forthwith.yml in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"forthwith.yaml", "forthwith.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds a Config from all layers.  flags may be nil; only flags the
// user actually set override the file and environment.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"prompt":     DefaultPrompt,
		"history_db": "",
		"trace":      false,
		"step_limit": 0,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// FORTHWITH_STEP_LIMIT -> step_limit
	if err := k.Load(env.Provider("FORTHWITH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FORTHWITH_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// kebab-case flags map onto snake_case config keys
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
