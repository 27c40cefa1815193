// Package config reads the SORTEDMAP_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sortedhash/internal/logutil"
)

// DefaultCapacity is the bucket count used when SORTEDMAP_CAPACITY is unset.
const DefaultCapacity = 53

// Config controls how the CLI builds maps and logs.
type Config struct {
	// Set via SORTEDMAP_CAPACITY in the environment
	Capacity int
	// Set via SORTEDMAP_DEBUG in the environment
	Debug bool
	// Set via SORTEDMAP_TRACE in the environment
	Trace bool
}

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// LogLevel returns the slog level implied by Debug and Trace.
func (c Config) LogLevel() slog.Level {
	switch {
	case c.Trace:
		return logutil.LevelTrace
	case c.Debug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// AsMap describes every variable together with its current value.
func (c Config) AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"SORTEDMAP_CAPACITY": {"SORTEDMAP_CAPACITY", c.Capacity, fmt.Sprintf("Number of hash buckets (default %d)", DefaultCapacity)},
		"SORTEDMAP_DEBUG":    {"SORTEDMAP_DEBUG", c.Debug, "Show additional debug information (e.g. SORTEDMAP_DEBUG=1)"},
		"SORTEDMAP_TRACE":    {"SORTEDMAP_TRACE", c.Trace, "Log map construction and teardown"},
	}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{Capacity: DefaultCapacity}

	if s := clean(getenv("SORTEDMAP_CAPACITY")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, errors.Wrap(err, "SORTEDMAP_CAPACITY")
		}
		if n < 1 {
			return Config{}, errors.Errorf("SORTEDMAP_CAPACITY must be at least 1, got %d", n)
		}
		cfg.Capacity = n
	}

	var err error
	if cfg.Debug, err = parseBool(getenv, "SORTEDMAP_DEBUG"); err != nil {
		return Config{}, err
	}
	if cfg.Trace, err = parseBool(getenv, "SORTEDMAP_TRACE"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseBool(getenv func(string) string, name string) (bool, error) {
	s := clean(getenv(name))
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.Wrap(err, name)
	}
	return b, nil
}

// clean trims whitespace and surrounding quotes.
func clean(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'")
}
