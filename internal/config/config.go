// Package config loads runtime settings: defaults, then an optional TOML
// file, then TADA_* environment variables. Command-line flags are applied
// last by cmd/tada.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	DefaultTheme     = "classic"
	DefaultIDs       = "uuid"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultCharLimit = 200
)

var (
	ErrInvalidTheme  = errors.New("config: invalid theme")
	ErrInvalidIDs    = errors.New("config: invalid id generator")
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config holds every runtime setting.
type Config struct {
	Theme     string `toml:"theme"`
	Filter    string `toml:"filter"`
	IDs       string `toml:"ids"`
	CharLimit int    `toml:"char_limit"`
	AltScreen bool   `toml:"alt_screen"`

	LogLevel     string `toml:"log_level"`
	LogFormat    string `toml:"log_format"`
	LogFile      string `toml:"log_file"`
	LogTimestamp bool   `toml:"log_timestamp"`
}

func Default() Config {
	return Config{
		Theme:     DefaultTheme,
		Filter:    string(model.FilterAll),
		IDs:       DefaultIDs,
		CharLimit: DefaultCharLimit,
		AltScreen: true,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/tada/config.toml, or ~/.config/tada/config.toml.
func DefaultPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, "tada", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".config", "tada", "config.toml"), nil
}

// Load returns defaults overlaid with the TOML file at path and then the
// environment. With an empty path the default location is tried and a
// missing file is not an error; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return FromEnv(cfg), nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return FromEnv(cfg), nil
}

// FromEnv overrides base with TADA_* variables. Unparsable numbers and
// booleans are ignored.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TADA_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_FILTER")); v != "" {
		cfg.Filter = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_IDS")); v != "" {
		cfg.IDs = v
	}
	if v, ok := getEnvInt("TADA_CHAR_LIMIT"); ok && v >= 0 {
		cfg.CharLimit = v
	}
	if v, ok := getEnvBool("TADA_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_LOG_FORMAT")); v != "" {
		cfg.LogFormat = v
	}
	if v := strings.TrimSpace(os.Getenv("TADA_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v, ok := getEnvBool("TADA_LOG_TIMESTAMP"); ok {
		cfg.LogTimestamp = v
	}
	return cfg
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if !oneOf(ui.Themes, c.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}
	if _, err := model.ParseFilter(c.Filter); err != nil {
		return err
	}
	switch strings.ToLower(c.IDs) {
	case "uuid", "uuidv7", "sequence", "seq":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidIDs, c.IDs)
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("%w: char_limit %d", ErrInvalidConfig, c.CharLimit)
	}
	if !oneOf(logging.Levels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if !oneOf(logging.Formats, c.LogFormat) {
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

func oneOf(names []string, v string) bool {
	return slices.Contains(names, strings.ToLower(strings.TrimSpace(v)))
}

// ViewFilter returns the configured startup filter.
func (c Config) ViewFilter() model.Filter {
	f, _ := model.ParseFilter(c.Filter)
	return f
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
