// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && !nowayland

package driver

import (
	"os"

	"github.com/rs/zerolog"

	"sdlshim.org/app"
	"sdlshim.org/app/internal/wayland"
	"sdlshim.org/app/internal/wl"
	"sdlshim.org/app/internal/xkb"
	"sdlshim.org/internal/config"
	"sdlshim.org/internal/egl"
)

var _ app.Window = (*wayland.Window)(nil)

func init() {
	app.Register(app.Wayland, newWaylandWindow)
}

func newWaylandWindow(cfg *config.Config, logger zerolog.Logger) (app.Window, error) {
	c, err := newCommon(cfg, logger)
	if err != nil {
		return nil, err
	}
	w, err := wayland.New(wayland.Options{
		Connect: wl.Connect,
		CompileKeymap: func(format uint32, fd int, size uint32) (wayland.Keymap, error) {
			km, err := xkb.NewFromFD(format, fd, int(size))
			if err != nil {
				return nil, err
			}
			return km, nil
		},
		SetupGL: func(display, window uintptr) (wayland.GL, error) {
			ctx, err := c.setup(egl.Target{
				Platform: egl.PlatformWayland,
				Display:  display,
				Window:   window,
				Kind:     egl.NativeWindow,
			})
			if err != nil {
				return nil, err
			}
			return ctx, nil
		},
		Exit:        os.Exit,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Title:       cfg.Window.Title,
		Order:       c.order,
		QuitRetries: cfg.Events.QuitRetries,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}
