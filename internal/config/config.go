// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the shim configuration from the environment
// and an optional configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName   = "sdlshim"
	envPrefix = "SDLSHIM"
)

// Config is the complete shim configuration.
type Config struct {
	// Session is the session type selecting the backend, normally
	// taken from XDG_SESSION_TYPE.
	Session  string         `mapstructure:"session" yaml:"session"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Events   EventsConfig   `mapstructure:"events" yaml:"events"`
	EGL      EGLConfig      `mapstructure:"egl" yaml:"egl"`
	DRM      DRMConfig      `mapstructure:"drm" yaml:"drm"`
	Keyboard KeyboardConfig `mapstructure:"keyboard" yaml:"keyboard"`
	Mixer    MixerConfig    `mapstructure:"mixer" yaml:"mixer"`
	Signals  SignalsConfig  `mapstructure:"signals" yaml:"signals"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  int32  `mapstructure:"width" yaml:"width"`
	Height int32  `mapstructure:"height" yaml:"height"`
	Title  string `mapstructure:"title" yaml:"title"`
}

// EventsConfig controls event delivery.
type EventsConfig struct {
	// Order is "lifo" or "fifo".
	Order       string `mapstructure:"order" yaml:"order"`
	QuitRetries int    `mapstructure:"quit_retries" yaml:"quit_retries"`
}

// EGLConfig selects the EGL library and the requested context.
type EGLConfig struct {
	// Library is the path of libEGL. Empty probes the system names.
	Library   string `mapstructure:"library" yaml:"library"`
	Major     int32  `mapstructure:"major" yaml:"major"`
	Minor     int32  `mapstructure:"minor" yaml:"minor"`
	ColorBits int32  `mapstructure:"color_bits" yaml:"color_bits"`
}

// DRMConfig holds the direct rendering device settings.
type DRMConfig struct {
	Dir  string `mapstructure:"dir" yaml:"dir"`
	Seat string `mapstructure:"seat" yaml:"seat"`
}

// KeyboardConfig names the keyboard layout of the direct rendering
// path. Empty names fall back to the XKB_DEFAULT_* environment and
// the system defaults.
type KeyboardConfig struct {
	Rules   string `mapstructure:"rules" yaml:"rules"`
	Model   string `mapstructure:"model" yaml:"model"`
	Layout  string `mapstructure:"layout" yaml:"layout"`
	Variant string `mapstructure:"variant" yaml:"variant"`
	Options string `mapstructure:"options" yaml:"options"`
}

// MixerConfig holds the audio mixer settings applied at init.
type MixerConfig struct {
	Channels int `mapstructure:"channels" yaml:"channels"`
}

// SignalsConfig controls the fatal signal handlers.
type SignalsConfig struct {
	// Segv handles a SIGSEGV sent to the process, such as kill -SEGV.
	// Faults raised by host code are not observed.
	Segv bool `mapstructure:"segv" yaml:"segv"`
}

// Manager loads the configuration.
type Manager struct {
	config *Config
	viper  *viper.Viper
}

// NewManager creates a manager reading config.yaml (or any format
// viper supports) from dir.
func NewManager(dir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("session", envPrefix+"_SESSION", "XDG_SESSION_TYPE"); err != nil {
		return nil, fmt.Errorf("failed to bind XDG_SESSION_TYPE: %w", err)
	}
	return &Manager{viper: v}, nil
}

// Load reads the configuration file, when present, and the
// environment.
func (m *Manager) Load() error {
	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return err
	}
	m.config = config
	return nil
}

// Get returns a copy of the loaded configuration, or the defaults
// before Load.
func (m *Manager) Get() *Config {
	if m.config == nil {
		return DefaultConfig()
	}
	c := *m.config
	return &c
}

// ConfigFile returns the path of the file read by Load, if any.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Dir returns $XDG_CONFIG_HOME/sdlshim, defaulting XDG_CONFIG_HOME
// to ~/.config.
func Dir() (string, error) {
	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		home = filepath.Join(h, ".config")
	}
	return filepath.Join(home, appName), nil
}

// Load loads the configuration from the default directory and the
// environment.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		// Without a home directory only the environment applies.
		dir = ""
	}
	m, err := NewManager(dir)
	if err != nil {
		return nil, err
	}
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m.Get(), nil
}
