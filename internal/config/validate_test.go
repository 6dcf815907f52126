package config

import (
	"testing"
)

func TestValidateDetailed_Valid(t *testing.T) {
	cfg := DefaultConfig()
	result := cfg.ValidateDetailed()
	if !result.IsValid() {
		t.Errorf("expected valid config, got errors: %v", result.Errors)
	}
}

func TestValidateDetailed_MissingInclude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Controllers.Include = nil
	result := cfg.ValidateDetailed()
	if result.IsValid() {
		t.Error("expected invalid config")
	}
}

func TestValidateDetailed_InvalidMarker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Marker = "Infer Response()"
	result := cfg.ValidateDetailed()
	if result.IsValid() {
		t.Error("expected error for invalid marker identifier")
	}
}

func TestValidateDetailed_HighDebounceWarning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Watch.DebounceMs = 60000
	result := cfg.ValidateDetailed()
	if len(result.Warnings) == 0 {
		t.Error("expected warning about high debounce")
	}
}

func TestValidateDetailed_WeirdIncludePattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Controllers.Include = []string{"src/controllers"}
	result := cfg.ValidateDetailed()
	if len(result.Warnings) == 0 {
		t.Error("expected warning for pattern without wildcard")
	}
}
