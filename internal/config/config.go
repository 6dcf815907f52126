// Package config loads and validates the nest-responses.config.json file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the conventional config file looked up by Discover.
const ConfigFileName = "nest-responses.config.json"

// Config represents the nest-responses configuration.
type Config struct {
	// Services selects the unit source files to analyze.
	Services ScanConfig `json:"services"`
	// Controllers selects the endpoint source files to wire and rewrite.
	Controllers ScanConfig `json:"controllers"`
	// Output controls where the lookup module and manifest are written.
	Output OutputConfig `json:"output"`
	// Marker is the decorator name recognized on endpoint handlers
	// (default "InferResponse").
	Marker string `json:"marker,omitempty"`
	// Watch holds watch-mode settings.
	Watch WatchConfig `json:"watch,omitempty"`
}

// ScanConfig specifies which source files a scanner considers.
type ScanConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude,omitempty"`
}

// OutputConfig specifies the run's shared output artifacts. Declaration
// modules always land next to their unit sources and are not configurable.
type OutputConfig struct {
	// Dir is the directory for responses.map.ts and the manifest
	// (default "src").
	Dir string `json:"dir,omitempty"`
	// Manifest disables responses.manifest.json when explicitly false.
	Manifest *bool `json:"manifest,omitempty"`
}

// WatchConfig specifies watch-mode behavior.
type WatchConfig struct {
	// DebounceMs is the quiet period after a change before regeneration
	// (default 300).
	DebounceMs int `json:"debounceMs,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Services: ScanConfig{
			Include: []string{"src/**/*.service.ts"},
		},
		Controllers: ScanConfig{
			Include: []string{"src/**/*.controller.ts"},
		},
		Output: OutputConfig{
			Dir: "src",
		},
		Marker: "InferResponse",
		Watch: WatchConfig{
			DebounceMs: 300,
		},
	}
}

// WriteManifest reports whether the manifest artifact is enabled.
func (c *Config) WriteManifest() bool {
	return c.Output.Manifest == nil || *c.Output.Manifest
}

// Discover looks for a config file in the given directory. Returns "" when
// none exists, in which case callers run on defaults.
func Discover(dir string) string {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// Load reads and parses a config file. Unspecified fields keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}

	return &config, nil
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	if len(c.Services.Include) == 0 {
		return fmt.Errorf("services.include must have at least one pattern")
	}
	if len(c.Controllers.Include) == 0 {
		return fmt.Errorf("controllers.include must have at least one pattern")
	}
	if c.Marker == "" {
		return fmt.Errorf("marker must not be empty")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounceMs must not be negative")
	}
	return nil
}
