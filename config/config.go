// Package config reads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"firequote/quote"
)

const envPrefix = "FIREQUOTE_"

// Config holds the service settings.
type Config struct {
	DataDir         string
	AutosaveDelay   time.Duration
	SavedDisplay    time.Duration
	DraftMaxAge     time.Duration
	MaxClients      int
	SuggestionLimit int
	LogLevel        zapcore.Level
	Dev             bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	opts := quote.DefaultOptions()
	return Config{
		DataDir:         "pb_data",
		AutosaveDelay:   opts.AutosaveDelay,
		SavedDisplay:    opts.SavedDisplay,
		DraftMaxAge:     opts.DraftMaxAge,
		MaxClients:      opts.MaxClients,
		SuggestionLimit: opts.SuggestionLimit,
		LogLevel:        zapcore.InfoLevel,
	}
}

// Load reads an optional .env file from the working directory and then the
// FIREQUOTE_* environment. Variables already set in the environment win
// over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	r := reader{lookup: lookup}

	r.str("DATA_DIR", &c.DataDir)
	r.duration("AUTOSAVE_DELAY", &c.AutosaveDelay)
	r.duration("SAVED_DISPLAY", &c.SavedDisplay)
	r.duration("DRAFT_MAX_AGE", &c.DraftMaxAge)
	r.positiveInt("MAX_CLIENTS", &c.MaxClients)
	r.positiveInt("SUGGESTION_LIMIT", &c.SuggestionLimit)
	r.level("LOG_LEVEL", &c.LogLevel)
	r.boolean("DEV", &c.Dev)

	if r.err != nil {
		return Config{}, r.err
	}
	return c, nil
}

// Engine converts the settings to quoting engine options.
func (c Config) Engine() quote.Options {
	return quote.Options{
		AutosaveDelay:   c.AutosaveDelay,
		SavedDisplay:    c.SavedDisplay,
		DraftMaxAge:     c.DraftMaxAge,
		MaxClients:      c.MaxClients,
		SuggestionLimit: c.SuggestionLimit,
	}
}

// NewLogger builds the service logger: JSON in production, console output
// in development.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Dev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// reader keeps the first parse error so every field can be read in turn.
type reader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *reader) get(name string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, ok := r.lookup(envPrefix + name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *reader) fail(name, value string, err error) {
	r.err = fmt.Errorf("%s%s=%q: %w", envPrefix, name, value, err)
}

func (r *reader) str(name string, dst *string) {
	if v, ok := r.get(name); ok {
		*dst = v
	}
}

func (r *reader) duration(name string, dst *time.Duration) {
	v, ok := r.get(name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(name, v, err)
		return
	}
	if d <= 0 {
		r.fail(name, v, errors.New("must be positive"))
		return
	}
	*dst = d
}

func (r *reader) positiveInt(name string, dst *int) {
	v, ok := r.get(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(name, v, err)
		return
	}
	if n <= 0 {
		r.fail(name, v, errors.New("must be positive"))
		return
	}
	*dst = n
}

func (r *reader) level(name string, dst *zapcore.Level) {
	v, ok := r.get(name)
	if !ok {
		return
	}
	if err := dst.UnmarshalText([]byte(strings.ToLower(v))); err != nil {
		r.fail(name, v, err)
	}
}

func (r *reader) boolean(name string, dst *bool) {
	v, ok := r.get(name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(name, v, err)
		return
	}
	*dst = b
}
