// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"sdlshim.org/internal/config"
)

// Backend identifies a window implementation.
type Backend uint8

const (
	Wayland Backend = iota + 1
	DRM
)

var (
	// ErrX11 is returned for X11 sessions.
	ErrX11 = errors.New("no x11 support")
	// ErrUnknownSession is returned for session types no backend
	// serves.
	ErrUnknownSession = errors.New("unknown session type")
	// ErrNoDRM is returned for console sessions when the DRM backend
	// is not built in.
	ErrNoDRM = errors.New("no drm support")
)

// Driver creates a window of one backend.
type Driver func(cfg *config.Config, logger zerolog.Logger) (Window, error)

var drivers = make(map[Backend]Driver)

func (b Backend) String() string {
	switch b {
	case Wayland:
		return "wayland"
	case DRM:
		return "drm"
	default:
		panic("invalid Backend")
	}
}

// Register makes a driver available for backend b. It is called from
// init functions and replaces any earlier driver for b.
func Register(b Backend, d Driver) {
	drivers[b] = d
}

// Registered reports whether a driver for b is available.
func Registered(b Backend) bool {
	return drivers[b] != nil
}

// Select returns the backend serving session. Set reports whether a
// session type is present at all.
func Select(session string, set bool) (Backend, error) {
	switch {
	case session == "wayland":
		return Wayland, nil
	case !set || session == "tty":
		if !drmCompiled {
			return 0, ErrNoDRM
		}
		return DRM, nil
	case session == "x11":
		return 0, ErrX11
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownSession, session)
	}
}

// NewWindow creates the window of the backend selected by the session
// type of cfg.
func NewWindow(cfg *config.Config, logger zerolog.Logger) (Window, error) {
	b, err := Select(cfg.Session, cfg.Session != "")
	if err != nil {
		return nil, err
	}
	d := drivers[b]
	if d == nil {
		return nil, fmt.Errorf("app: no %s window driver available", b)
	}
	logger.Debug().Stringer("backend", b).Str("session", cfg.Session).Msg("window backend")
	w, err := d(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app: %s: %w", b, err)
	}
	return w, nil
}
