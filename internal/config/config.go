// Package config provides configuration structures and loading for debtqueue.
package config

// Config represents the complete application configuration.
type Config struct {
	Queue   QueueConfig   `yaml:"queue" mapstructure:"queue"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// QueueConfig represents the repayment queue settings.
type QueueConfig struct {
	Capacity int `yaml:"capacity" mapstructure:"capacity"` // 0 = ask at startup
}

// DisplayConfig represents console output settings.
type DisplayConfig struct {
	Color     bool `yaml:"color" mapstructure:"color"`
	Precision int  `yaml:"precision" mapstructure:"precision"` // decimal places for rates and amounts
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// Limits for display precision.
const (
	MinPrecision = 0
	MaxPrecision = 6
)

// DefaultConfig returns a Config with sensible default values.
// Logging defaults to stderr so log lines never interleave with the
// interactive prompts written to stdout.
func DefaultConfig() *Config {
	return &Config{
		Queue: QueueConfig{
			Capacity: 0,
		},
		Display: DisplayConfig{
			Color:     true,
			Precision: 2,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ResolveCapacity returns the capacity to use, preferring a positive override.
// Returns 0 when neither the override nor the config sets one.
func (c *Config) ResolveCapacity(override int) int {
	if override > 0 {
		return override
	}
	if c.Queue.Capacity > 0 {
		return c.Queue.Capacity
	}
	return 0
}
