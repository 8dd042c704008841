// SPDX-License-Identifier: Unlicense OR MIT

package wayland

// Interface names matched against registry globals.
const (
	ifaceCompositor  = "wl_compositor"
	ifaceSeat        = "wl_seat"
	ifaceShm         = "wl_shm"
	ifaceWmBase      = "xdg_wm_base"
	ifaceDecorations = "zxdg_decoration_manager_v1"
	ifacePointerWarp = "wp_pointer_warp_v1"
)

// Highest versions bound per global.
const (
	compositorVersion  = 4
	seatVersion        = 5
	shmVersion         = 1
	wmBaseVersion      = 1
	decorationsVersion = 1
	pointerWarpVersion = 1
)

// Seat capability bits.
const (
	CapPointer  uint32 = 1
	CapKeyboard uint32 = 2
)

// Wire key states.
const (
	KeyReleased uint32 = 0
	KeyPressed  uint32 = 1
	KeyRepeated uint32 = 2
)

// DecorationServerSide asks the compositor to draw the window frame.
const DecorationServerSide uint32 = 2

const cursorName = "left_ptr"

// Conn is a connection to a compositor. Its callbacks go to the
// Handler given when connecting.
type Conn interface {
	// Display returns the native wl_display for EGL.
	Display() uintptr
	// Fd returns the connection socket.
	Fd() int
	Roundtrip() error
	// DispatchPending dispatches queued events without reading and
	// returns their number.
	DispatchPending() (int, error)
	Flush() error
	// PrepareRead announces a read. It reports false when events are
	// already queued and must be dispatched first.
	PrepareRead() bool
	ReadEvents() error
	CancelRead()
	Disconnect()

	BindCompositor(name, version uint32) Compositor
	BindSeat(name, version uint32) Seat
	BindShm(name, version uint32) Shm
	BindWmBase(name, version uint32) WmBase
	BindDecorationManager(name, version uint32) DecorationManager
	BindPointerWarp(name, version uint32) PointerWarp
	NewEGLWindow(s Surface, width, height int32) (EGLWindow, error)
}

// Handler receives the events of a Conn.
type Handler interface {
	Global(name uint32, iface string, version uint32)
	GlobalRemove(name uint32)
	Ping(serial uint32)
	SurfaceConfigure(serial uint32)
	ToplevelConfigure(width, height int32)
	ToplevelClose()
	SeatCapabilities(caps uint32)
	KeyboardKeymap(format uint32, fd int, size uint32)
	KeyboardKey(serial, time, key, state uint32)
	KeyboardModifiers(depressed, latched, locked, group uint32)
	PointerEnter(serial uint32, x, y float64)
	PointerLeave(serial uint32)
	PointerMotion(time uint32, x, y float64)
	PointerButton(serial, time, button, state uint32)
}

type Compositor interface {
	CreateSurface() Surface
	CreateRegion() Region
	Destroy()
}

type Surface interface {
	SetOpaqueRegion(r Region)
	Commit()
	Destroy()
}

type Region interface {
	Add(x, y, width, height int32)
	Destroy()
}

type WmBase interface {
	GetXdgSurface(s Surface) XdgSurface
	Pong(serial uint32)
	Destroy()
}

type XdgSurface interface {
	GetToplevel() Toplevel
	AckConfigure(serial uint32)
	Destroy()
}

type Toplevel interface {
	SetTitle(title string)
	Destroy()
}

type DecorationManager interface {
	GetToplevelDecoration(t Toplevel) ToplevelDecoration
	Destroy()
}

type ToplevelDecoration interface {
	SetMode(mode uint32)
	Destroy()
}

type Seat interface {
	GetKeyboard() Keyboard
	GetPointer() Pointer
	Release()
}

type Keyboard interface {
	Release()
}

type Pointer interface {
	// SetCursor shows c, or hides the cursor when c is nil.
	SetCursor(serial uint32, c Cursor)
	Release()
}

type PointerWarp interface {
	WarpPointer(s Surface, p Pointer, x, y float64, serial uint32)
	Destroy()
}

type Shm interface {
	// LoadCursor loads the named cursor from the default theme.
	LoadCursor(c Compositor, name string, size int) (Cursor, error)
	Destroy()
}

// Cursor is a cursor image attached to its own surface.
type Cursor interface {
	Destroy()
}

// EGLWindow is the native window EGL renders into.
type EGLWindow interface {
	Ptr() uintptr
	Resize(width, height int32)
	Destroy()
}
