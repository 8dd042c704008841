// SPDX-License-Identifier: Unlicense OR MIT

// Package shim holds the process-wide state behind the exported
// entry points of the shared library.
package shim

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"sdlshim.org/app"
	"sdlshim.org/app/internal/log"
	"sdlshim.org/internal/config"
	"sdlshim.org/io/event"
	"sdlshim.org/io/key"
	"sdlshim.org/io/system"
)

// SegvStatus is the exit status after a segmentation fault.
const SegvStatus = 139

// State is the configuration and the single window of the process.
// Callers hold the lock around every method call.
type State struct {
	sync.Mutex

	cfg *config.Config
	log zerolog.Logger
	win app.Window
	// keys is the table handed out by KeyState.
	keys *key.Table

	loadConfig func() (*config.Config, error)
	newWindow  func(*config.Config, zerolog.Logger) (app.Window, error)
	segv       sync.Once
}

// New returns a State loading its configuration with load and
// creating its window with newWindow.
func New(load func() (*config.Config, error), newWindow func(*config.Config, zerolog.Logger) (app.Window, error)) *State {
	return &State{
		log:        log.New(log.DefaultConfig()),
		loadConfig: load,
		newWindow:  newWindow,
	}
}

func (s *State) Logger() *zerolog.Logger {
	return &s.log
}

// Config loads the configuration on first use and replaces the
// bootstrap logger with the configured one.
func (s *State) Config() (*config.Config, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}
	cfg, err := s.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	l, err := log.FromConfig(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	s.cfg, s.log = cfg, l
	return cfg, nil
}

// Open creates the window on first use.
func (s *State) Open() error {
	if s.win != nil {
		return nil
	}
	cfg, err := s.Config()
	if err != nil {
		return err
	}
	w, err := s.newWindow(cfg, s.log)
	if err != nil {
		return err
	}
	s.win = w
	return nil
}

// Window returns the window, creating it if needed. A window that
// cannot be created terminates the process.
func (s *State) Window() app.Window {
	if err := s.Open(); err != nil {
		s.log.Fatal().Msg(FatalMessage(s.cfg, err))
	}
	return s.win
}

// Opened reports whether the window exists.
func (s *State) Opened() bool {
	return s.win != nil
}

// HandleSegv routes SIGSEGV sent to the process to a handler that
// logs and calls exit with SegvStatus. Only the first call installs
// the handler. The Go runtime delivers only asynchronous signals, such
// as kill -SEGV; a fault raised by host code is not observed.
func (s *State) HandleSegv(exit func(code int)) {
	s.segv.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, unix.SIGSEGV)
		l := s.log
		go func() {
			sig := <-ch
			l.Error().Stringer("signal", sig).Msg("fatal signal")
			exit(SegvStatus)
		}()
	})
}

// FatalMessage describes a failed window bring-up. DRM failures carry
// a hint, since DRM is also chosen when no session type is set.
func FatalMessage(cfg *config.Config, err error) string {
	if cfg == nil {
		return err.Error()
	}
	b, selErr := app.Select(cfg.Session, cfg.Session != "")
	if selErr != nil || b != app.DRM {
		return err.Error()
	}
	return "XDG_SESSION_TYPE not set (implying you aren't using a supported window manager).\n" +
		"If you meant to use DRM, there was an error getting a device: " + err.Error()
}

// NotImplemented aborts a call into an unsupported subsystem.
func NotImplemented(name string) {
	panic(name + ": not implemented")
}

// PollEvent fills ev with the next event. A nil ev reports whether an
// event is pending; the event is consumed.
func PollEvent(w app.Window, ev *event.Event) bool {
	if ev == nil {
		var scratch event.Event
		ev = &scratch
	}
	return w.PollEvent(ev)
}

// GLAttribute returns the value of attr and 0, or -1 for an attribute
// never set.
func GLAttribute(w app.Window, attr system.GLAttr) (v int32, status int32) {
	v, ok := w.GLGetAttribute(attr)
	if !ok {
		return 0, -1
	}
	return v, 0
}

// KeyState copies the key table of w to dst.
func KeyState(w app.Window, dst *key.Table) {
	*dst = *w.KeyState()
}

// KeyState publishes the key table of the window in dst. The host
// keeps dst, so every later PollEvent or Delay refreshes it.
func (s *State) KeyState(dst *key.Table) {
	s.keys = dst
	KeyState(s.Window(), dst)
}

// PollEvent is PollEvent on the window, refreshing the published key
// table.
func (s *State) PollEvent(ev *event.Event) bool {
	ok := PollEvent(s.Window(), ev)
	s.syncKeys()
	return ok
}

// Delay waits ms milliseconds on the window, refreshing the published
// key table.
func (s *State) Delay(ms uint32) {
	s.Window().Delay(ms)
	s.syncKeys()
}

func (s *State) syncKeys() {
	if s.keys != nil {
		KeyState(s.win, s.keys)
	}
}

// Error returns the error string of the window, or "" before the
// window exists.
func (s *State) Error() string {
	if s.win == nil {
		return ""
	}
	return s.win.Error()
}
