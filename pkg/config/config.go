package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/constraints/pkg/logger"
)

// Config holds the settings of the constraints command line tool.
// Flags override the schema path and groups at run time.
type Config struct {
	SchemaPath string   `env:"CONSTRAINTS_SCHEMA"`
	Groups     []string `env:"CONSTRAINTS_GROUPS" envSeparator:","`
	Output     string   `env:"CONSTRAINTS_OUTPUT" envDefault:"table"`
	Strict     bool     `env:"CONSTRAINTS_STRICT" envDefault:"true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
}

// Output formats accepted by Config.Output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Validate checks the values that cannot be expressed with env tags.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %w", ErrInvalidValue, err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: LOG_FORMAT: %w", ErrInvalidValue, err)
	}
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: CONSTRAINTS_OUTPUT: %q is not %q or %q", ErrInvalidValue, c.Output, OutputTable, OutputJSON)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() slog.Level {
	l, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Format returns the configured log format, falling back to text.
func (c Config) Format() logger.Format {
	f, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return logger.FormatText
	}
	return f
}

// ActiveGroups returns the configured groups with blanks removed.
func (c Config) ActiveGroups() []string {
	groups := make([]string, 0, len(c.Groups))
	for _, g := range c.Groups {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

// IsProduction reports whether APP_ENV names a production environment.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case logger.EnvProduction, "prod":
		return true
	}
	return false
}

// LoggerOptions returns logger options derived from the environment and the
// explicit level and format settings.
func (c Config) LoggerOptions(service string) []logger.Option {
	return []logger.Option{
		logger.WithEnvironment(c.AppEnv, service),
		logger.WithLevel(c.Level()),
		logger.WithFormat(c.Format()),
	}
}
