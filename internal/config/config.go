// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and validates the run configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/viper"

	"github.com/pdiddy/tablepull/pkg/types"
)

var (
	// ErrNotFound indicates the config path does not resolve to a readable file.
	ErrNotFound = errors.New("config file not found")

	// ErrMissingKey indicates a required key is absent or empty.
	ErrMissingKey = errors.New("missing required config key")
)

// requiredKeys must all be present in the config file.
var requiredKeys = []string{"pdf_url", "table_settings", "pattern"}

// Load reads the YAML configuration at path. It fails on a missing file,
// unparsable content, a missing or empty required key, or a title pattern
// that does not compile, rather than returning a partial configuration.
func Load(path string) (types.Config, error) {
	if _, err := os.Stat(path); err != nil {
		return types.Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TABLEPULL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return types.Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return types.Config{}, fmt.Errorf("%w: %s", ErrMissingKey, key)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if cfg.PDFURL == "" {
		return types.Config{}, fmt.Errorf("%w: pdf_url", ErrMissingKey)
	}
	if cfg.Pattern == "" {
		return types.Config{}, fmt.Errorf("%w: pattern", ErrMissingKey)
	}
	if _, err := regexp.Compile(cfg.Pattern); err != nil {
		return types.Config{}, fmt.Errorf("invalid title pattern %q: %w", cfg.Pattern, err)
	}

	return cfg, nil
}
