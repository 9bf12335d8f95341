package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory when no explicit path is given.
const ConfigFileName = "eiger.yaml"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the runtime configuration read from eiger.yaml.
type Config struct {
	// StdlibPath is searched for `include name` before the embedded library.
	StdlibPath string `yaml:"stdlib_path,omitempty"`

	// MaxDepth bounds evaluation nesting. 0 disables the check.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// Color is one of auto, always, never.
	Color string `yaml:"color,omitempty"`

	LogLevel string `yaml:"log_level,omitempty"`

	Prompt string `yaml:"prompt,omitempty"`

	// HistoryFile is relative to the user's home directory unless absolute.
	HistoryFile string `yaml:"history_file,omitempty"`
}

func Default() *Config {
	return &Config{
		StdlibPath:  "./stdlibs",
		MaxDepth:    10000,
		Color:       ColorAuto,
		LogLevel:    "warn",
		Prompt:      "#-> ",
		HistoryFile: ".eiger_history",
	}
}

// Load reads the configuration at path. An empty path means ./eiger.yaml if it
// exists, otherwise defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			cfg := Default()
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// Parse decodes eiger.yaml content. The path is used only in error messages.
func Parse(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate(path string) error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be auto, always or never, got %q", path, c.Color)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%s: max_depth must not be negative", path)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("EIGER_STDLIB"); v != "" {
		c.StdlibPath = v
	}
	if v := os.Getenv("EIGER_LOG_LEVEL"); v != "" {
		if _, err := ParseLogLevel(v); err == nil {
			c.LogLevel = v
		}
	}
	if v := os.Getenv("EIGER_COLOR"); v == ColorAuto || v == ColorAlways || v == ColorNever {
		c.Color = v
	}
	if v := os.Getenv("EIGER_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MaxDepth = n
		}
	}
}

// HistoryPath resolves HistoryFile against the home directory.
func (c *Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}

// ParseLogLevel maps a level name to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}
