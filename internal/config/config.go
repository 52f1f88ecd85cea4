// Package config handles loading and parsing the demos' configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Plain environment variables (ENV, LOG_LEVEL) with defaults
//
// Source 3 means every demo runs with no arguments at all. The YAML file
// is only needed when you want to pin settings in one place.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env selects the log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"prod" validate:"oneof=dev staging prod"`

	// LogLevel overrides the level Env would pick. Empty keeps the
	// per-environment default.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
}

// Load resolves the config path (env var first, then a --config flag
// in args) and reads the configuration. It returns an error instead of
// exiting so callers and tests decide what a bad config means.
//
// args are the command-line arguments without the program name.
func Load(args []string) (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		fs := flag.NewFlagSet("config", flag.ContinueOnError)
		flags := fs.String("config", "", "Path to the configuration YAML file")
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("config.Load: parse flags: %w", err)
		}
		configPath = *flags
	}

	var cfg Config

	if configPath == "" {
		// No file at all: environment plus env-default tags.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", configPath, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: validate: %w", err)
	}

	return &cfg, nil
}

// MustLoad is Load wrapped in log.Fatal. If it returns, the config is
// valid.
func MustLoad() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}
	return cfg
}
