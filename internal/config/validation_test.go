package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidConfig(t *testing.T) {
	cfg := &Config{
		Queue:   QueueConfig{Capacity: 10},
		Display: DisplayConfig{Color: true, Precision: 2},
		Logging: LoggingConfig{Level: "info", Format: "json", Output: "stdout"},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative capacity", func(c *Config) { c.Queue.Capacity = -1 }, "queue.capacity"},
		{"precision too high", func(c *Config) { c.Display.Precision = 7 }, "display.precision"},
		{"negative precision", func(c *Config) { c.Display.Precision = -1 }, "display.precision"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to mention %s, got: %v", tt.field, err)
			}
		})
	}
}

func TestValidationCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Queue.Capacity = -5
	cfg.Display.Precision = 99
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "yaml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 4 {
		t.Errorf("expected 4 validation errors, got %d: %v", len(verrs), verrs)
	}
	if !strings.HasPrefix(err.Error(), "validation failed:") {
		t.Errorf("unexpected error format: %s", err.Error())
	}
}

func TestValidationErrorsEmpty(t *testing.T) {
	var verrs ValidationErrors
	if verrs.Error() != "" {
		t.Errorf("expected empty string for no errors, got %q", verrs.Error())
	}
}
