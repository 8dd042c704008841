// SPDX-License-Identifier: Unlicense OR MIT

package wayland

import (
	"fmt"

	"sdlshim.org/io/key"
	"sdlshim.org/io/pointer"
	"sdlshim.org/io/system"
)

// callbacks is the Handler view of a Window.
type callbacks Window

var _ Handler = (*callbacks)(nil)

func (c *callbacks) Global(name uint32, iface string, version uint32) {
	w := (*Window)(c)
	switch iface {
	case ifaceCompositor:
		w.compositor = w.conn.BindCompositor(name, min(version, compositorVersion))
		w.surf = w.compositor.CreateSurface()
		w.setOpaqueRegion()
		win, err := w.conn.NewEGLWindow(w.surf, w.width, w.height)
		if err != nil {
			w.fail(fmt.Errorf("wayland: %w", err))
			return
		}
		w.eglWin = win
		if w.wm != nil && w.xdgSurf == nil {
			w.createToplevel()
		}
	case ifaceSeat:
		if w.seat == nil {
			w.seat = w.conn.BindSeat(name, min(version, seatVersion))
		}
	case ifaceShm:
		w.shm = w.conn.BindShm(name, shmVersion)
	case ifaceWmBase:
		w.wm = w.conn.BindWmBase(name, wmBaseVersion)
		if w.surf != nil && w.xdgSurf == nil {
			w.createToplevel()
		}
	case ifaceDecorations:
		w.decor = w.conn.BindDecorationManager(name, decorationsVersion)
		w.requestDecoration()
	case ifacePointerWarp:
		w.warp = w.conn.BindPointerWarp(name, pointerWarpVersion)
	default:
		w.log.Debug().Str("interface", iface).Uint32("version", version).Msg("unhandled global")
	}
}

func (c *callbacks) GlobalRemove(name uint32) {
	c.log.Debug().Uint32("name", name).Msg("global removed")
}

func (c *callbacks) Ping(serial uint32) {
	c.wm.Pong(serial)
}

// SurfaceConfigure acknowledges every configure. The first one binds
// the graphics context, now that the surface may be drawn to.
func (c *callbacks) SurfaceConfigure(serial uint32) {
	w := (*Window)(c)
	w.xdgSurf.AckConfigure(serial)
	if w.configured {
		return
	}
	gl, err := w.opts.SetupGL(w.conn.Display(), w.eglWin.Ptr())
	if err != nil {
		panic(fmt.Errorf("wayland: %w", err))
	}
	w.gl = gl
	w.configured = true
	if w.stage < system.StageRunning {
		w.stage = system.StageRunning
	}
}

func (c *callbacks) ToplevelConfigure(width, height int32) {
	c.log.Debug().Int32("width", width).Int32("height", height).Msg("toplevel configure")
	c.pendingW, c.pendingH = width, height
}

func (c *callbacks) ToplevelClose() {
	c.running = false
	c.stage = system.StageQuitting
}

func (c *callbacks) SeatCapabilities(caps uint32) {
	w := (*Window)(c)
	w.log.Debug().Uint32("capabilities", caps).Msg("seat")
	if caps&CapKeyboard != 0 && w.keyboard == nil {
		w.keyboard = w.seat.GetKeyboard()
	}
	if caps&CapPointer != 0 && w.ptr == nil {
		w.ptr = w.seat.GetPointer()
	}
}

// KeyboardKeymap replaces the keymap. The caller owns fd.
func (c *callbacks) KeyboardKeymap(format uint32, fd int, size uint32) {
	w := (*Window)(c)
	km, err := w.opts.CompileKeymap(format, fd, size)
	if err != nil {
		w.log.Error().Err(err).Uint32("format", format).Msg("keymap")
		return
	}
	if w.keymap != nil {
		w.keymap.Destroy()
	}
	w.keymap = km
}

func (c *callbacks) KeyboardKey(serial, time, code, state uint32) {
	w := (*Window)(c)
	if w.keymap == nil {
		return
	}
	s := key.Released
	if state == KeyPressed || state == KeyRepeated {
		s = key.Pressed
	}
	evts := key.Events(w.keymap, code, s)
	w.keyEvents.Push(evts...)
	for _, e := range evts {
		w.keys.Set(e.Code, e.State)
	}
}

func (c *callbacks) KeyboardModifiers(depressed, latched, locked, group uint32) {
	if c.keymap != nil {
		c.keymap.UpdateMask(depressed, latched, locked, group)
	}
}

func (c *callbacks) PointerEnter(serial uint32, x, y float64) {
	w := (*Window)(c)
	w.x, w.y = x, y
	w.enterSerial = serial
	w.inside = true
	w.applyCursor(serial)
}

// PointerLeave gives the theme cursor back for other surfaces.
func (c *callbacks) PointerLeave(serial uint32) {
	w := (*Window)(c)
	w.inside = false
	if cur := w.themeCursor(); cur != nil {
		w.ptr.SetCursor(w.enterSerial, cur)
	}
}

func (c *callbacks) PointerMotion(time uint32, x, y float64) {
	c.pointerEvents.Push(pointerEvent{kind: pointerMotion, x: x, y: y})
}

func (c *callbacks) PointerButton(serial, time, button, state uint32) {
	s, ok := pointer.StateFromWire(state)
	if !ok {
		return
	}
	c.pointerEvents.Push(pointerEvent{kind: pointerButton, button: button, state: s})
}
