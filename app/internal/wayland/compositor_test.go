// SPDX-License-Identifier: Unlicense OR MIT

package wayland

import (
	"fmt"

	"github.com/rs/zerolog"

	"sdlshim.org/io/event"
	"sdlshim.org/io/key"
)

// compositor is an in-process compositor. It records every request in
// log and delivers events queued with send on the next dispatch.
type compositor struct {
	h       Handler
	globals []string
	log     []string
	pending []func()
	serial  uint32
	// configureOnCommit sends a configure after the first commit of
	// a toplevel surface, like a real compositor.
	configureOnCommit bool
	committed         bool
	toplevel          bool
	// unflushed counts the requests recorded since the last flush.
	unflushed int
}

func newCompositor(globals ...string) *compositor {
	return &compositor{globals: globals, configureOnCommit: true}
}

func (c *compositor) record(format string, args ...any) {
	c.log = append(c.log, fmt.Sprintf(format, args...))
	c.unflushed++
}

func (c *compositor) send(f func(h Handler)) {
	c.pending = append(c.pending, func() { f(c.h) })
}

func (c *compositor) nextSerial() uint32 {
	c.serial++
	return c.serial
}

func (c *compositor) count(entry string) int {
	n := 0
	for _, e := range c.log {
		if e == entry {
			n++
		}
	}
	return n
}

func (c *compositor) index(entry string) int {
	for i, e := range c.log {
		if e == entry {
			return i
		}
	}
	return -1
}

func (c *compositor) connect(h Handler) (Conn, error) {
	c.h = h
	return c, nil
}

func (c *compositor) Display() uintptr { return 0xd15 }
func (c *compositor) Fd() int          { return -1 }

func (c *compositor) Roundtrip() error {
	for i, iface := range c.globals {
		c.h.Global(uint32(i+1), iface, 9)
	}
	_, err := c.DispatchPending()
	return err
}

func (c *compositor) DispatchPending() (int, error) {
	n := 0
	for len(c.pending) > 0 {
		f := c.pending[0]
		c.pending = c.pending[1:]
		f()
		n++
	}
	return n, nil
}

func (c *compositor) Flush() error {
	c.unflushed = 0
	return nil
}

func (c *compositor) PrepareRead() bool { return len(c.pending) == 0 }
func (c *compositor) ReadEvents() error { return nil }
func (c *compositor) CancelRead()       {}
func (c *compositor) Disconnect()       { c.record("disconnect") }

func (c *compositor) bind(iface string, version uint32) *object {
	c.record("bind %s v%d", iface, version)
	return &object{c: c, name: iface}
}

func (c *compositor) BindCompositor(name, version uint32) Compositor {
	return c.bind(ifaceCompositor, version)
}

func (c *compositor) BindSeat(name, version uint32) Seat {
	return c.bind(ifaceSeat, version)
}

func (c *compositor) BindShm(name, version uint32) Shm {
	return c.bind(ifaceShm, version)
}

func (c *compositor) BindWmBase(name, version uint32) WmBase {
	return c.bind(ifaceWmBase, version)
}

func (c *compositor) BindDecorationManager(name, version uint32) DecorationManager {
	return c.bind(ifaceDecorations, version)
}

func (c *compositor) BindPointerWarp(name, version uint32) PointerWarp {
	return c.bind(ifacePointerWarp, version)
}

func (c *compositor) NewEGLWindow(s Surface, width, height int32) (EGLWindow, error) {
	c.record("egl_window %dx%d", width, height)
	return &object{c: c, name: "egl_window"}, nil
}

// object implements every proxy interface.
type object struct {
	c    *compositor
	name string
}

func (o *object) child(name string) *object {
	o.c.record("%s.create %s", o.name, name)
	return &object{c: o.c, name: name}
}

func (o *object) CreateSurface() Surface { return o.child("surface") }
func (o *object) CreateRegion() Region   { return o.child("region") }
func (o *object) Destroy()               { o.c.record("%s.destroy", o.name) }
func (o *object) Release()               { o.c.record("%s.release", o.name) }

func (o *object) SetOpaqueRegion(r Region) { o.c.record("%s.set_opaque_region", o.name) }

func (o *object) Commit() {
	o.c.record("%s.commit", o.name)
	if o.c.configureOnCommit && o.c.toplevel && !o.c.committed {
		o.c.committed = true
		o.c.send(func(h Handler) { h.SurfaceConfigure(o.c.nextSerial()) })
	}
}

func (o *object) Add(x, y, width, height int32) {
	o.c.record("%s.add %d %d %d %d", o.name, x, y, width, height)
}

func (o *object) GetXdgSurface(s Surface) XdgSurface { return o.child("xdg_surface") }
func (o *object) Pong(serial uint32)                 { o.c.record("pong %d", serial) }

func (o *object) GetToplevel() Toplevel {
	o.c.toplevel = true
	return o.child("toplevel")
}

func (o *object) AckConfigure(serial uint32) { o.c.record("ack_configure %d", serial) }
func (o *object) SetTitle(title string)      { o.c.record("set_title %q", title) }

func (o *object) GetToplevelDecoration(t Toplevel) ToplevelDecoration {
	return o.child("decoration")
}

func (o *object) SetMode(mode uint32)   { o.c.record("decoration mode %d", mode) }
func (o *object) GetKeyboard() Keyboard { return o.child("keyboard") }
func (o *object) GetPointer() Pointer   { return o.child("pointer") }
func (o *object) Ptr() uintptr          { return 0xe91 }

func (o *object) Resize(width, height int32) {
	o.c.record("egl_window resize %dx%d", width, height)
}

func (o *object) SetCursor(serial uint32, c Cursor) {
	if c == nil {
		o.c.record("set_cursor %d hidden", serial)
		return
	}
	o.c.record("set_cursor %d %s", serial, c.(*object).name)
}

func (o *object) WarpPointer(s Surface, p Pointer, x, y float64, serial uint32) {
	o.c.record("warp %v %v %d", x, y, serial)
}

func (o *object) LoadCursor(comp Compositor, name string, size int) (Cursor, error) {
	o.c.record("load_cursor %s %d", name, size)
	return &object{c: o.c, name: name}, nil
}

type fakeGL struct {
	c *compositor
}

func (g *fakeGL) SwapBuffers() error { g.c.record("swap"); return nil }
func (g *fakeGL) Release()           { g.c.record("gl release") }

func (g *fakeGL) ProcAddress(name string) uintptr {
	if name == "glClear" {
		return 0x42
	}
	return 0
}

// fakeKeymap maps every key to the syms of its entry in levels, at
// the last level.
type fakeKeymap struct {
	syms map[uint32][]key.Sym
	mods key.Mod
	mask [4]uint32
}

func (k *fakeKeymap) LayoutForKey(kc uint32) uint32 { return 0 }

func (k *fakeKeymap) NumLevels(kc, layout uint32) uint32 {
	if _, ok := k.syms[kc]; ok {
		return 2
	}
	return 0
}

func (k *fakeKeymap) SymsByLevel(kc, layout, level uint32) []key.Sym {
	if level != 1 {
		return nil
	}
	return k.syms[kc]
}

func (k *fakeKeymap) Modifiers() key.Mod { return k.mods }

func (k *fakeKeymap) UpdateMask(depressed, latched, locked, group uint32) {
	k.mask = [4]uint32{depressed, latched, locked, group}
}

func (k *fakeKeymap) Destroy() {}

type harness struct {
	c      *compositor
	exits  []int
	keymap *fakeKeymap
}

func (h *harness) options() Options {
	return Options{
		Connect: h.c.connect,
		CompileKeymap: func(format uint32, fd int, size uint32) (Keymap, error) {
			h.c.record("keymap format %d size %d", format, size)
			return h.keymap, nil
		},
		SetupGL: func(display, window uintptr) (GL, error) {
			h.c.record("setup %#x %#x", display, window)
			return &fakeGL{c: h.c}, nil
		},
		Exit:   func(code int) { h.exits = append(h.exits, code) },
		Order:  event.FIFO,
		Logger: zerolog.Nop(),
	}
}

func newHarness(globals ...string) *harness {
	return &harness{
		c:      newCompositor(globals...),
		keymap: &fakeKeymap{syms: map[uint32][]key.Sym{}},
	}
}
