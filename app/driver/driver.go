// SPDX-License-Identifier: Unlicense OR MIT

// Package driver registers the window drivers built into the shim.
// Import it for its side effects.
package driver

import (
	"fmt"

	"github.com/rs/zerolog"

	"sdlshim.org/internal/config"
	"sdlshim.org/internal/egl"
	"sdlshim.org/io/event"
)

// common holds the settings shared by every driver.
type common struct {
	lib     *egl.Lib
	attribs egl.Attribs
	order   event.Order
	log     zerolog.Logger
}

func newCommon(cfg *config.Config, logger zerolog.Logger) (*common, error) {
	order, err := event.ParseOrder(cfg.Events.Order)
	if err != nil {
		return nil, err
	}
	lib, err := egl.Load(cfg.EGL.Library)
	if err != nil {
		return nil, err
	}
	return &common{
		lib: lib,
		attribs: egl.Attribs{
			Major:     egl.Int(cfg.EGL.Major),
			Minor:     egl.Int(cfg.EGL.Minor),
			ColorBits: egl.Int(cfg.EGL.ColorBits),
		},
		order: order,
		log:   logger,
	}, nil
}

// setup binds a context to t and logs the negotiated version.
func (c *common) setup(t egl.Target) (*egl.Context, error) {
	ctx, err := c.lib.Setup(t, c.attribs)
	if err != nil {
		return nil, fmt.Errorf("egl setup: %w", err)
	}
	c.log.Debug().
		Int32("major", int32(ctx.Version[0])).
		Int32("minor", int32(ctx.Version[1])).
		Msg("egl context")
	return ctx, nil
}
