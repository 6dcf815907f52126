package config

import (
	"fmt"
	"strings"
)

// ValidationResult holds config validation results.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// ValidateDetailed performs thorough config validation with suggestions.
func (c *Config) ValidateDetailed() *ValidationResult {
	result := &ValidationResult{}

	if len(c.Services.Include) == 0 {
		result.Errors = append(result.Errors, "services.include: at least one pattern required")
	}
	for _, pattern := range c.Services.Include {
		if !strings.Contains(pattern, "*") && !strings.HasSuffix(pattern, ".ts") {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("services.include: pattern %q doesn't contain a wildcard or .ts extension; did you mean %q?", pattern, pattern+"/**/*.service.ts"))
		}
	}

	if len(c.Controllers.Include) == 0 {
		result.Errors = append(result.Errors, "controllers.include: at least one pattern required")
	}
	for _, pattern := range c.Controllers.Include {
		if !strings.Contains(pattern, "*") && !strings.HasSuffix(pattern, ".ts") {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("controllers.include: pattern %q doesn't contain a wildcard or .ts extension; did you mean %q?", pattern, pattern+"/**/*.controller.ts"))
		}
	}

	if c.Marker == "" {
		result.Errors = append(result.Errors, "marker: must not be empty")
	} else if strings.ContainsAny(c.Marker, "(){}@ ") {
		result.Errors = append(result.Errors,
			fmt.Sprintf("marker: %q is not a valid decorator identifier", c.Marker))
	}

	if c.Watch.DebounceMs < 0 {
		result.Errors = append(result.Errors, "watch.debounceMs: must not be negative")
	} else if c.Watch.DebounceMs > 10000 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("watch.debounceMs: %d is unusually high; regeneration will lag file saves", c.Watch.DebounceMs))
	}

	return result
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}
