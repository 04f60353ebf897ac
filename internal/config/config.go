// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nmelo/vellum/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"` // editing behavior
	Sync   SyncConfig    `toml:"sync"`   // synchronization preferences
}

// EditorConfig holds editing-session settings.
type EditorConfig struct {
	// MaxUndoDepth caps the undo history per session. 0 means unbounded.
	MaxUndoDepth int `toml:"max_undo_depth"`
	// SystemClipboard routes cut/copy/paste through the OS clipboard
	// instead of the session-local register.
	SystemClipboard bool `toml:"system_clipboard"`
	// TrimPastedWhitespace strips leading/trailing whitespace on paste.
	TrimPastedWhitespace bool `toml:"trim_pasted_whitespace"`
}

// SyncMode selects when note synchronization may run. Synchronization itself
// is the host application's concern; only the preference lives here.
type SyncMode string

const (
	SyncOff    SyncMode = "off"
	SyncWifi   SyncMode = "wifi"
	SyncAlways SyncMode = "always"
)

// SyncConfig holds synchronization preferences.
type SyncConfig struct {
	Mode            SyncMode `toml:"mode"`
	IntervalMinutes int      `toml:"interval_minutes"`
	OnLaunch        bool     `toml:"on_launch"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			MaxUndoDepth:    DefaultMaxUndoDepth,
			SystemClipboard: SystemClipboard,
		},
		Sync: SyncConfig{
			Mode:            SyncOff,
			IntervalMinutes: int(DefaultSyncInterval.Minutes()),
			OnLaunch:        false,
		},
	}
}

// DefaultPath returns the standard config file location, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// Load reads configuration from the TOML file at path, layered over
// defaults and validated. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		cfg.validate()
		return cfg, nil
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		logger.DebugTagf("config", "Config file not found: %s", path)
		cfg.validate()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	metadata, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': unrecognized keys: %v", path, metadata.Undecoded())
	}

	cfg.validate()
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.MaxUndoDepth < 0 {
		c.Editor.MaxUndoDepth = defaults.Editor.MaxUndoDepth
	}

	switch c.Sync.Mode {
	case SyncOff, SyncWifi, SyncAlways:
	default:
		logger.Warnf("Unknown sync mode %q, falling back to %q", c.Sync.Mode, defaults.Sync.Mode)
		c.Sync.Mode = defaults.Sync.Mode
	}
	if c.Sync.IntervalMinutes <= 0 {
		c.Sync.IntervalMinutes = defaults.Sync.IntervalMinutes
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}
