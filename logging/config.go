package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const (
	EnvLogLevel      = "ANCHORGUI_LOG_LEVEL"
	EnvLogFormat     = "ANCHORGUI_LOG_FORMAT"
	EnvLogSink       = "ANCHORGUI_LOG_SINK"
	EnvLogFile       = "ANCHORGUI_LOG_FILE"
	EnvLogAddSource  = "ANCHORGUI_LOG_ADD_SOURCE"
	EnvLogMaxSizeMB  = "ANCHORGUI_LOG_MAX_SIZE_MB"
	EnvLogMaxBackups = "ANCHORGUI_LOG_MAX_BACKUPS"
)

// Config is the logging section of the layout document. Nil fields fall back
// to the defaults.
type Config struct {
	Level     *string `yaml:"level,omitempty"`
	Format    *string `yaml:"format,omitempty"`
	Sink      *string `yaml:"sink,omitempty"`
	File      *string `yaml:"file,omitempty"`
	AddSource *bool   `yaml:"add_source,omitempty"`

	MaxSizeMB  *int `yaml:"max_size_mb,omitempty"`
	MaxBackups *int `yaml:"max_backups,omitempty"`
}

func DefaultConfig() Config {
	level := "warn"
	format := string(FormatText)
	sink := string(SinkStderr)
	addSource := false
	maxSizeMB := 10
	maxBackups := 3

	return Config{
		Level:      &level,
		Format:     &format,
		Sink:       &sink,
		AddSource:  &addSource,
		MaxSizeMB:  &maxSizeMB,
		MaxBackups: &maxBackups,
	}
}

// Merge returns c with every field set in override replaced.
func (c Config) Merge(override Config) Config {
	if override.Level != nil {
		c.Level = override.Level
	}
	if override.Format != nil {
		c.Format = override.Format
	}
	if override.Sink != nil {
		c.Sink = override.Sink
	}
	if override.File != nil {
		c.File = override.File
	}
	if override.AddSource != nil {
		c.AddSource = override.AddSource
	}
	if override.MaxSizeMB != nil {
		c.MaxSizeMB = override.MaxSizeMB
	}
	if override.MaxBackups != nil {
		c.MaxBackups = override.MaxBackups
	}
	return c
}

// WithEnv applies the ANCHORGUI_LOG_* environment variables.
func (c Config) WithEnv() Config {
	applyString := func(dst **string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = &v
		}
	}
	applyBool := func(dst **bool, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return
		}
		*dst = &v
	}
	applyInt := func(dst **int, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		*dst = &n
	}

	applyString(&c.Level, EnvLogLevel)
	applyString(&c.Format, EnvLogFormat)
	applyString(&c.Sink, EnvLogSink)
	applyString(&c.File, EnvLogFile)
	applyBool(&c.AddSource, EnvLogAddSource)
	applyInt(&c.MaxSizeMB, EnvLogMaxSizeMB)
	applyInt(&c.MaxBackups, EnvLogMaxBackups)
	return c
}

// Normalize lower-cases enum values, clamps negative sizes and validates.
func (c Config) Normalize() (Config, error) {
	normalize := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.ToLower(strings.TrimSpace(*s))
		if v == "" {
			return nil
		}
		return &v
	}
	c.Level = normalize(c.Level)
	c.Format = normalize(c.Format)
	c.Sink = normalize(c.Sink)
	if c.MaxSizeMB != nil && *c.MaxSizeMB < 0 {
		zero := 0
		c.MaxSizeMB = &zero
	}
	if c.MaxBackups != nil && *c.MaxBackups < 0 {
		zero := 0
		c.MaxBackups = &zero
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Level != nil {
		switch *c.Level {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("logging.level: invalid %q", *c.Level)
		}
	}
	if c.Format != nil {
		switch Format(*c.Format) {
		case FormatText, FormatJSON:
		default:
			return fmt.Errorf("logging.format: invalid %q", *c.Format)
		}
	}
	if c.Sink != nil {
		switch Sink(*c.Sink) {
		case SinkStderr, SinkFile, SinkNone:
		default:
			return fmt.Errorf("logging.sink: invalid %q", *c.Sink)
		}
		if Sink(*c.Sink) == SinkFile && (c.File == nil || strings.TrimSpace(*c.File) == "") {
			return fmt.Errorf("logging.file: required for the file sink")
		}
	}
	return nil
}
