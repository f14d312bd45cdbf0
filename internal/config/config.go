// Package config resolves runtime settings for the sign-up server and CLI.
// Values are layered: built-in defaults, an optional YAML file, a .env file,
// then SIGNUP_* environment variables. Command-line flags are applied last by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/viewport"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SIGNUP_"

// DefaultEnvFile is read when present; a missing file is not an error.
const DefaultEnvFile = ".env"

var (
	// ErrInvalidBreakpoint is returned when the breakpoint is not positive.
	ErrInvalidBreakpoint = errors.New("config: breakpoint must be positive")
	// ErrInvalidLogLevel is returned for log levels zap does not know.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)

// Config holds every tunable of the server and CLI.
type Config struct {
	Addr        string `yaml:"addr"`
	Locale      string `yaml:"locale"`
	Theme       string `yaml:"theme"`
	Variant     string `yaml:"variant"`
	Breakpoint  int    `yaml:"breakpoint"`
	AssetPrefix string `yaml:"asset_prefix"`
	AssetsDir   string `yaml:"assets_dir"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:        ":8080",
		Locale:      model.LocaleEnglish,
		Theme:       render.DefaultThemeName,
		Variant:     render.DefaultThemeVariant,
		Breakpoint:  viewport.DefaultBreakpoint,
		AssetPrefix: render.DefaultAssetPrefix,
		LogLevel:    "info",
	}
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Option configures Load.
type Option func(*loader)

type loader struct {
	file     string
	envFiles []string
	lookup   LookupFunc
}

// WithFile reads a YAML file. The file must exist.
func WithFile(path string) Option {
	return func(l *loader) {
		l.file = strings.TrimSpace(path)
	}
}

// WithEnvFiles replaces the list of dotenv files. Missing files are skipped.
func WithEnvFiles(paths ...string) Option {
	return func(l *loader) {
		l.envFiles = paths
	}
}

// WithLookup replaces os.LookupEnv, mostly for tests.
func WithLookup(fn LookupFunc) Option {
	return func(l *loader) {
		if fn != nil {
			l.lookup = fn
		}
	}
}

// Load resolves the configuration.
func Load(options ...Option) (Config, error) {
	l := loader{envFiles: []string{DefaultEnvFile}, lookup: os.LookupEnv}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&l)
	}

	cfg := Default()
	if l.file != "" {
		if err := cfg.mergeFile(l.file); err != nil {
			return Config{}, err
		}
	}

	dotenv, err := readEnvFiles(l.envFiles)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) (string, bool) {
		if value, ok := l.lookup(key); ok {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	}
	if err := cfg.mergeEnv(lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the resolved values.
func (c Config) Validate() error {
	if c.Breakpoint <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBreakpoint, c.Breakpoint)
	}
	state := model.NewFormState()
	if err := state.SetLocale(c.Locale); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel for zap.
func (c Config) Level() (zapcore.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.overlay(fromFile)
	return nil
}

func (c *Config) overlay(other Config) {
	setString(&c.Addr, other.Addr)
	setString(&c.Locale, other.Locale)
	setString(&c.Theme, other.Theme)
	setString(&c.Variant, other.Variant)
	setString(&c.AssetPrefix, other.AssetPrefix)
	setString(&c.AssetsDir, other.AssetsDir)
	setString(&c.LogLevel, other.LogLevel)
	if other.Breakpoint != 0 {
		c.Breakpoint = other.Breakpoint
	}
}

func (c *Config) mergeEnv(lookup LookupFunc) error {
	fields := map[string]*string{
		"ADDR":          &c.Addr,
		"LOCALE":        &c.Locale,
		"THEME":         &c.Theme,
		"THEME_VARIANT": &c.Variant,
		"ASSET_PREFIX":  &c.AssetPrefix,
		"ASSETS_DIR":    &c.AssetsDir,
		"LOG_LEVEL":     &c.LogLevel,
	}
	for name, target := range fields {
		if value, ok := lookup(EnvPrefix + name); ok {
			setString(target, value)
		}
	}

	if raw, ok := lookup(EnvPrefix + "BREAKPOINT"); ok && raw != "" {
		breakpoint, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %sBREAKPOINT: %w", EnvPrefix, err)
		}
		c.Breakpoint = breakpoint
	}

	// PORT is honoured for platforms that only expose a port number.
	if _, ok := lookup(EnvPrefix + "ADDR"); !ok {
		if port, ok := lookup("PORT"); ok && port != "" {
			c.Addr = ":" + port
		}
	}
	return nil
}

func readEnvFiles(paths []string) (map[string]string, error) {
	values := map[string]string{}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
		read, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		for key, value := range read {
			values[key] = value
		}
	}
	return values, nil
}

func setString(target *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*target = trimmed
	}
}
