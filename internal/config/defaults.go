// SPDX-License-Identifier: Unlicense OR MIT

package config

const (
	defaultWidth       = 640
	defaultHeight      = 480
	defaultQuitRetries = 10
	defaultChannels    = 32
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Width:  defaultWidth,
			Height: defaultHeight,
		},
		Events: EventsConfig{
			Order:       "lifo",
			QuitRetries: defaultQuitRetries,
		},
		EGL: EGLConfig{
			Major:     1,
			Minor:     0,
			ColorBits: 8,
		},
		DRM: DRMConfig{
			Dir:  "/dev/dri",
			Seat: "seat0",
		},
		Mixer: MixerConfig{
			Channels: defaultChannels,
		},
		Signals: SignalsConfig{
			Segv: true,
		},
	}
}

// setDefaults registers every key with viper, so that AutomaticEnv
// resolves it and Unmarshal sees it.
func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("session", d.Session)

	m.viper.SetDefault("log.level", d.Log.Level)
	m.viper.SetDefault("log.format", d.Log.Format)

	m.viper.SetDefault("window.width", d.Window.Width)
	m.viper.SetDefault("window.height", d.Window.Height)
	m.viper.SetDefault("window.title", d.Window.Title)

	m.viper.SetDefault("events.order", d.Events.Order)
	m.viper.SetDefault("events.quit_retries", d.Events.QuitRetries)

	m.viper.SetDefault("egl.library", d.EGL.Library)
	m.viper.SetDefault("egl.major", d.EGL.Major)
	m.viper.SetDefault("egl.minor", d.EGL.Minor)
	m.viper.SetDefault("egl.color_bits", d.EGL.ColorBits)

	m.viper.SetDefault("drm.dir", d.DRM.Dir)
	m.viper.SetDefault("drm.seat", d.DRM.Seat)

	m.viper.SetDefault("keyboard.rules", d.Keyboard.Rules)
	m.viper.SetDefault("keyboard.model", d.Keyboard.Model)
	m.viper.SetDefault("keyboard.layout", d.Keyboard.Layout)
	m.viper.SetDefault("keyboard.variant", d.Keyboard.Variant)
	m.viper.SetDefault("keyboard.options", d.Keyboard.Options)

	m.viper.SetDefault("mixer.channels", d.Mixer.Channels)
	m.viper.SetDefault("signals.segv", d.Signals.Segv)
}
