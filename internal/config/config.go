package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version is the Scour release version.
const Version = "0.1.0"

// Config holds all Scour configuration.
type Config struct {
	Source SourceConfig
	Engine EngineConfig
	Output OutputConfig
	Log    LogConfig
}

// SourceConfig holds input settings.
type SourceConfig struct {
	Path   string
	Format string // "csv" or "ndjson"
	Extra  map[string]string
}

// EngineConfig holds cleaning knobs.
type EngineConfig struct {
	CityCandidates []string
	CityCutoff     float64
}

// OutputConfig holds destination settings.
type OutputConfig struct {
	Dir     string
	Formats []string // any of "ndjson", "csv", "parquet", "stdout"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Source: SourceConfig{
			Path:   os.Getenv("SCOUR_INPUT"),
			Format: getenv("SCOUR_INPUT_FORMAT", "csv"),
			Extra:  loadSourceExtra(),
		},
		Engine: EngineConfig{
			CityCandidates: getenvList("SCOUR_CITY_CANDIDATES", []string{"chicago", "berwyn"}),
			CityCutoff:     getenvFloat("SCOUR_CITY_CUTOFF", 0.8),
		},
		Output: OutputConfig{
			Dir:     getenv("SCOUR_OUTPUT_DIR", "."),
			Formats: getenvList("SCOUR_OUTPUT_FORMATS", []string{"ndjson"}),
		},
		Log: LogConfig{
			Level: getenv("SCOUR_LOG_LEVEL", "info"),
		},
	}
}

var validFormats = map[string]bool{"ndjson": true, "csv": true, "parquet": true, "stdout": true}

// Validate checks the configuration, joining every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.Source.Path == "" {
		errs = append(errs, errors.New("SCOUR_INPUT is required"))
	}
	if c.Source.Format != "csv" && c.Source.Format != "ndjson" {
		errs = append(errs, fmt.Errorf("unknown input format %q (want csv or ndjson)", c.Source.Format))
	}
	if c.Engine.CityCutoff < 0 || c.Engine.CityCutoff > 1 {
		errs = append(errs, fmt.Errorf("city cutoff %v out of range [0, 1]", c.Engine.CityCutoff))
	}
	if len(c.Engine.CityCandidates) == 0 {
		errs = append(errs, errors.New("city candidates must not be empty"))
	}
	if len(c.Output.Formats) == 0 {
		errs = append(errs, errors.New("at least one output format is required"))
	}
	for _, f := range c.Output.Formats {
		if !validFormats[f] {
			errs = append(errs, fmt.Errorf("unknown output format %q", f))
		}
	}
	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadSourceExtra reads format-specific env vars into an Extra map.
func loadSourceExtra() map[string]string {
	vars := []struct {
		envVar   string
		extraKey string
	}{
		{"SCOUR_CSV_DELIMITER", "delimiter"},
	}

	var m map[string]string
	for _, v := range vars {
		if val := os.Getenv(v.envVar); val != "" {
			if m == nil {
				m = make(map[string]string)
			}
			m[v.extraKey] = val
		}
	}
	return m
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// getenvList splits a comma-separated env var, trimming blanks.
func getenvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
