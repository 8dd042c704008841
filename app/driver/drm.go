// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && !nodrm

package driver

import (
	"os"

	"github.com/rs/zerolog"

	"sdlshim.org/app"
	"sdlshim.org/app/internal/kms"
	"sdlshim.org/app/internal/xkb"
	"sdlshim.org/internal/config"
	"sdlshim.org/internal/drm"
	"sdlshim.org/internal/egl"
	"sdlshim.org/internal/gbm"
	"sdlshim.org/internal/libinput"
	"sdlshim.org/io/key"
)

var _ app.Window = (*kms.Window)(nil)

func init() {
	app.Register(app.DRM, newDRMWindow)
}

func newDRMWindow(cfg *config.Config, logger zerolog.Logger) (app.Window, error) {
	c, err := newCommon(cfg, logger)
	if err != nil {
		return nil, err
	}
	w, err := kms.New(kms.Options{
		OpenDevice: func() (kms.Device, error) {
			card, err := drm.OpenFirst(cfg.DRM.Dir)
			if err != nil {
				return nil, err
			}
			logger.Debug().Str("path", card.Path()).Msg("drm device")
			return card, nil
		},
		NewAllocator: func(fd uintptr) (kms.Allocator, error) {
			d, err := gbm.NewDevice(fd)
			if err != nil {
				return nil, err
			}
			return allocator{d}, nil
		},
		SetupGL: func(device, surf uintptr) (kms.GL, error) {
			ctx, err := c.setup(egl.Target{
				Platform: egl.PlatformGBM,
				Display:  device,
				Window:   surf,
				Kind:     egl.NativePointer,
				VisualID: egl.Int(kms.FormatXRGB8888),
			})
			if err != nil {
				return nil, err
			}
			return ctx, nil
		},
		OpenSeat: func() (kms.Seat, error) {
			li, err := libinput.NewUdev(cfg.DRM.Seat)
			if err != nil {
				return nil, err
			}
			return seat{li}, nil
		},
		LoadKeymap: func() (kms.Keymap, error) {
			km, err := xkb.NewFromNames(xkb.Names{
				Rules:   cfg.Keyboard.Rules,
				Model:   cfg.Keyboard.Model,
				Layout:  cfg.Keyboard.Layout,
				Variant: cfg.Keyboard.Variant,
				Options: cfg.Keyboard.Options,
			})
			if err != nil {
				return nil, err
			}
			return km, nil
		},
		Terminal: kms.NewTerminal(int(os.Stdin.Fd())),
		Order:    c.order,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// allocator adapts a GBM device to kms.Allocator.
type allocator struct {
	*gbm.Device
}

func (a allocator) CreateSurface(width, height, format, flags uint32) (kms.BufferSurface, error) {
	s, err := a.Device.CreateSurface(width, height, format, flags)
	if err != nil {
		return nil, err
	}
	return surface{s}, nil
}

type surface struct {
	*gbm.Surface
}

func (s surface) LockFrontBuffer() (kms.Buffer, error) {
	bo, err := s.Surface.LockFrontBuffer()
	if err != nil {
		return nil, err
	}
	return bo, nil
}

func (s surface) ReleaseBuffer(b kms.Buffer) {
	s.Surface.ReleaseBuffer(b.(*gbm.BO))
}

// seat adapts a libinput context to kms.Seat.
type seat struct {
	*libinput.Context
}

func (s seat) Dispatch() ([]kms.KeyEvent, error) {
	evs, err := s.Context.Dispatch()
	out := make([]kms.KeyEvent, 0, len(evs))
	for _, e := range evs {
		st := key.Released
		if e.State == libinput.KeyPressed {
			st = key.Pressed
		}
		out = append(out, kms.KeyEvent{Key: e.Key, State: st})
	}
	return out, err
}
