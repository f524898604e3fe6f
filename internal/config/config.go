package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds all configurable dayflow settings.
type Config struct {
	OutputFormat  string `json:"output_format"`  // "text" | "markdown" | "json" | "tui"
	DataDir       string `json:"data_dir"`       // override XDG data directory
	DefaultEnergy int    `json:"default_energy"` // seeds energy for fresh state
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		OutputFormat: "text",
	}
}

// LoadGlobal reads ~/.config/dayflow/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(home, ".config", "dayflow", "config.json")
	return loadFile(path, true)
}

// LoadProject reads .dayflowconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".dayflowconfig", false)
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()

	// Apply global values over defaults.
	if global != nil {
		if global.OutputFormat != "" {
			result.OutputFormat = global.OutputFormat
		}
		if global.DataDir != "" {
			result.DataDir = global.DataDir
		}
		if global.DefaultEnergy != 0 {
			result.DefaultEnergy = global.DefaultEnergy
		}
	}

	// Apply project values over global.
	if project != nil {
		if project.OutputFormat != "" {
			result.OutputFormat = project.OutputFormat
		}
		if project.DataDir != "" {
			result.DataDir = project.DataDir
		}
		if project.DefaultEnergy != 0 {
			result.DefaultEnergy = project.DefaultEnergy
		}
	}

	return result
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
