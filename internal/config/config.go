package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/rounds/internal/settings"
)

const appName = "rounds"

// Config holds startup defaults. Nothing is ever written back.
type Config struct {
	LogFile string `koanf:"log_file"` // empty means $XDG_STATE_HOME/rounds/rounds.log

	Timer         TimerConfig         `koanf:"timer"`
	Notifications NotificationsConfig `koanf:"notifications"`
	MPRIS         MPRISConfig         `koanf:"mpris"`
}

// TimerConfig holds the initial session settings.
type TimerConfig struct {
	Rounds              int  `koanf:"rounds"`                // default: 3
	RoundSeconds        int  `koanf:"round_seconds"`         // default: 180
	RestSeconds         *int `koanf:"rest_seconds"`          // default: 60, 0 is allowed
	MinimumRoundSeconds int  `koanf:"minimum_round_seconds"` // default: 1
}

// NotificationsConfig controls desktop notifications.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// MPRISConfig controls the media-key integration.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// envOverrides are read from the environment after the config files.
type envOverrides struct {
	Rounds        *int   `env:"ROUNDS_ROUNDS"`
	RoundSeconds  *int   `env:"ROUNDS_ROUND_SECONDS"`
	RestSeconds   *int   `env:"ROUNDS_REST_SECONDS"`
	LogFile       string `env:"ROUNDS_LOG_FILE"`
	Notifications *bool  `env:"ROUNDS_NOTIFICATIONS"`
	MPRIS         *bool  `env:"ROUNDS_MPRIS"`
}

// Load reads the config files, then applies environment overrides.
// explicit, when set, is loaded last and must exist.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file %s: %w", explicit, err)
		}
		paths = append(paths, expandPath(explicit))
	}

	cfg, err := loadFiles(paths)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFiles(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Last wins
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Rounds != nil {
		c.Timer.Rounds = *o.Rounds
	}
	if o.RoundSeconds != nil {
		c.Timer.RoundSeconds = *o.RoundSeconds
	}
	if o.RestSeconds != nil {
		c.Timer.RestSeconds = o.RestSeconds
	}
	if o.LogFile != "" {
		c.LogFile = expandPath(o.LogFile)
	}
	if o.Notifications != nil {
		c.Notifications.Enabled = o.Notifications
	}
	if o.MPRIS != nil {
		c.MPRIS.Enabled = o.MPRIS
	}
	return nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/rounds/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Settings returns the initial timer settings with defaults applied.
// Clamping is left to the settings store.
func (c *Config) Settings() settings.Settings {
	s := settings.Default()
	if c.Timer.Rounds > 0 {
		s.Rounds = c.Timer.Rounds
	}
	if c.Timer.RoundSeconds > 0 {
		s.RoundDuration = c.Timer.RoundSeconds
	}
	if c.Timer.RestSeconds != nil && *c.Timer.RestSeconds >= 0 {
		s.RestDuration = *c.Timer.RestSeconds
	}
	return s
}

// MinimumRoundSeconds returns the round duration floor.
func (c *Config) MinimumRoundSeconds() int {
	return max(settings.MinimumRoundSeconds, c.Timer.MinimumRoundSeconds)
}

// LogPath returns the log file location.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// NotificationsEnabled reports whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// MPRISEnabled reports whether the media-key integration is on.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}
