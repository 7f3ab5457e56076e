// Package config loads desk settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the desk needs at start-up.
type Config struct {
	LogLevel  string `env:"LIBRARYDESK_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LIBRARYDESK_LOG_FORMAT" envDefault:"text"`
	SeedFile  string `env:"LIBRARYDESK_SEED_FILE"`
	// TimeLayout formats activity log timestamps.
	TimeLayout string `env:"LIBRARYDESK_TIME_LAYOUT" envDefault:"15:04:05"`

	Librarian Librarian `envPrefix:"LIBRARYDESK_LIBRARIAN_"`
}

// Librarian describes who is on duty at the desk.
type Librarian struct {
	Name       string `env:"NAME" envDefault:"Front Desk"`
	Age        int    `env:"AGE" envDefault:"30"`
	Contact    string `env:"CONTACT" envDefault:"n/a"`
	EmployeeID string `env:"EMPLOYEE_ID" envDefault:"LIB-0"`
}

// Load reads dotenvPath (skipped when missing; empty means ".env") and then
// the process environment.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath == "" {
		dotenvPath = ".env"
	}
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LIBRARYDESK_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.Librarian.Age < 1 {
		return fmt.Errorf("LIBRARYDESK_LIBRARIAN_AGE must be at least 1, got %d", c.Librarian.Age)
	}
	if strings.TrimSpace(c.Librarian.EmployeeID) == "" {
		return fmt.Errorf("LIBRARYDESK_LIBRARIAN_EMPLOYEE_ID must not be empty")
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LIBRARYDESK_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// Logger builds the diagnostic logger described by c, writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
