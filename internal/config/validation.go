// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// normalizeConfig lower-cases the enumerated values.
func normalizeConfig(c *Config) {
	c.Session = strings.ToLower(strings.TrimSpace(c.Session))
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
	c.Events.Order = strings.ToLower(c.Events.Order)
}

func validateConfig(c *Config) error {
	var errs []string

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Sprintf("window size must be positive (got: %dx%d)", c.Window.Width, c.Window.Height))
	}
	switch c.Events.Order {
	case "lifo", "fifo":
	default:
		errs = append(errs, fmt.Sprintf("events.order must be one of: lifo, fifo (got: %s)", c.Events.Order))
	}
	if c.Events.QuitRetries < 1 {
		errs = append(errs, "events.quit_retries must be at least 1")
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level must be one of: %s (got: %s)", strings.Join(logLevels, ", "), c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be one of: console, json (got: %s)", c.Log.Format))
	}
	if c.EGL.Major < 1 || c.EGL.Minor < 0 {
		errs = append(errs, fmt.Sprintf("egl context version is invalid (got: %d.%d)", c.EGL.Major, c.EGL.Minor))
	}
	if c.EGL.ColorBits < 1 {
		errs = append(errs, "egl.color_bits must be positive")
	}
	if c.DRM.Dir == "" {
		errs = append(errs, "drm.dir cannot be empty")
	}
	if c.DRM.Seat == "" {
		errs = append(errs, "drm.seat cannot be empty")
	}
	if c.Mixer.Channels < 0 {
		errs = append(errs, "mixer.channels must be non-negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
