// Package config resolves ebar options from the environment and command
// line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/jacoelho/ebar/internal/document"
	"github.com/jacoelho/ebar/internal/output"
)

const (
	EnvFormat = "EBAR_FORMAT"
	EnvOutput = "EBAR_OUTPUT"
	EnvDebug  = "EBAR_DEBUG"
)

var (
	ErrNoDocument         = errors.New("no document file specified")
	ErrNoQuery            = errors.New("one of --target or --regex is required")
	ErrConflictingQueries = errors.New("only one query may be given")
	ErrInvalidFormat      = errors.New("invalid input format")
	ErrInvalidOutput      = errors.New("invalid output format")
)

// Config holds the options shared by every command.
type Config struct {
	// Format is the input document format: auto, json or yaml.
	Format string
	// Output is the result rendering: text, json or yaml.
	Output string

	Debug bool

	// Dir resolves relative document paths; empty means the working directory.
	Dir string
}

// Load returns the defaults read from EBAR_* environment variables.
// Invalid values log a warning and fall back to the built-in default.
func Load() *Config {
	return &Config{
		Format: envChoice(EnvFormat, "auto", validFormat),
		Output: envChoice(EnvOutput, "text", validOutput),
		Debug:  envBool(EnvDebug, false),
	}
}

// Validate checks Format and Output name known formats.
func (c *Config) Validate() error {
	if !validFormat(c.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if !validOutput(c.Output) {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	return nil
}

// InputFormat returns the parsed input format, FormatAuto when invalid.
func (c *Config) InputFormat() document.Format {
	f, err := document.ParseFormat(c.Format)
	if err != nil {
		return document.FormatAuto
	}
	return f
}

// OutputFormat returns the parsed output format, FormatText when invalid.
func (c *Config) OutputFormat() output.Format {
	f, err := output.ParseFormat(c.Output)
	if err != nil {
		return output.FormatText
	}
	return f
}

// LogLevel returns the minimum level for the CLI logger.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// SearchOptions are the arguments of the search command.
type SearchOptions struct {
	File     string
	Path     string
	JSONPath string
}

// Validate returns an error when no file is given or both query kinds are set.
func (o SearchOptions) Validate() error {
	if o.File == "" {
		return ErrNoDocument
	}
	if o.Path != "" && o.JSONPath != "" {
		return fmt.Errorf("%w: --path and --jsonpath", ErrConflictingQueries)
	}
	return nil
}

// ResolveOptions are the arguments of the resolve command. HasTarget and
// HasRegex record whether the flag was given, so an empty target is allowed.
type ResolveOptions struct {
	File      string
	Target    string
	Regex     string
	HasTarget bool
	HasRegex  bool
}

// Validate requires a file and exactly one of target or regex.
func (o ResolveOptions) Validate() error {
	if o.File == "" {
		return ErrNoDocument
	}
	if o.HasTarget && o.HasRegex {
		return fmt.Errorf("%w: --target and --regex", ErrConflictingQueries)
	}
	if !o.HasTarget && !o.HasRegex {
		return ErrNoQuery
	}
	return nil
}

// Query returns the target or the regex, whichever was given.
func (o ResolveOptions) Query() string {
	if o.HasRegex {
		return o.Regex
	}
	return o.Target
}

func validFormat(s string) bool {
	_, err := document.ParseFormat(s)
	return err == nil
}

func validOutput(s string) bool {
	_, err := output.ParseFormat(s)
	return err == nil
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envChoice(key, fallback string, valid func(string) bool) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !valid(v) {
		slog.Warn("invalid env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}
