// SPDX-License-Identifier: Unlicense OR MIT

// Package wayland implements a window on a Wayland compositor. The
// protocol objects are reached through the interfaces of proto.go,
// implemented over libwayland by package wl.
package wayland

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"sdlshim.org/io/event"
	"sdlshim.org/io/key"
	"sdlshim.org/io/pointer"
	"sdlshim.org/io/system"
)

// ErrMissingGlobal is returned when the compositor lacks a global the
// window cannot do without.
var ErrMissingGlobal = errors.New("wayland: missing global")

const (
	defaultWidth       = 640
	defaultHeight      = 480
	defaultQuitRetries = 10
	cursorSize         = 24
	videoMem           = 2048000
)

// Keymap is a compiled compositor keymap.
type Keymap interface {
	key.Keymap
	UpdateMask(depressed, latched, locked, group uint32)
	Destroy()
}

// GL is a graphics context bound to the window surface.
type GL interface {
	SwapBuffers() error
	ProcAddress(name string) uintptr
	Release()
}

// Options configure a Window.
type Options struct {
	// Connect connects to the compositor and routes its events to h.
	Connect func(h Handler) (Conn, error)
	// CompileKeymap compiles a keymap shared by the compositor.
	CompileKeymap func(format uint32, fd int, size uint32) (Keymap, error)
	// SetupGL binds a graphics context to the native display and
	// window.
	SetupGL func(display, window uintptr) (GL, error)
	// Exit terminates the process.
	Exit func(code int)

	Width, Height int32
	Title         string
	Order         event.Order
	// QuitRetries is the number of quit events delivered before the
	// process is terminated.
	QuitRetries int
	Logger      zerolog.Logger
}

type pointerKind uint8

const (
	pointerMotion pointerKind = iota
	pointerButton
)

type pointerEvent struct {
	kind   pointerKind
	x, y   float64
	button uint32
	state  pointer.State
}

// Window is a toplevel surface with a graphics context.
type Window struct {
	opts Options
	log  zerolog.Logger
	conn Conn
	// Set by the first failing callback during bring-up.
	err error

	compositor Compositor
	seat       Seat
	shm        Shm
	wm         WmBase
	decor      DecorationManager
	warp       PointerWarp

	surf       Surface
	xdgSurf    XdgSurface
	toplevel   Toplevel
	decoration ToplevelDecoration
	eglWin     EGLWindow
	gl         GL

	keyboard Keyboard
	keymap   Keymap
	ptr      Pointer
	cursor   Cursor

	stage        system.Stage
	configured   bool
	running      bool
	quitAttempts int

	width, height int32
	// Size suggested by the last toplevel configure.
	pendingW, pendingH int32
	title              string

	pointerEvents *event.Queue[pointerEvent]
	keyEvents     *event.Queue[key.Event]
	keys          key.Table

	x, y          float64
	buttons       pointer.Buttons
	enterSerial   uint32
	inside        bool
	cursorVisible bool

	glAttrs system.GLAttributes
	surface system.Surface
	info    system.VideoInfo
}

// New connects to the compositor and creates the window surface.
// The graphics context is bound when the compositor first configures
// the surface.
func New(opts Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = defaultWidth, defaultHeight
	}
	if opts.QuitRetries <= 0 {
		opts.QuitRetries = defaultQuitRetries
	}
	w := &Window{
		opts:          opts,
		log:           opts.Logger.With().Str("backend", "wayland").Logger(),
		running:       true,
		width:         opts.Width,
		height:        opts.Height,
		title:         opts.Title,
		pointerEvents: event.NewQueue[pointerEvent](opts.Order),
		keyEvents:     event.NewQueue[key.Event](opts.Order),
		surface:       system.NewSurface(opts.Width, opts.Height, system.OpenGL),
	}
	conn, err := opts.Connect((*callbacks)(w))
	if err != nil {
		return nil, fmt.Errorf("wayland: %w", err)
	}
	w.conn = conn
	// Wait for the server to register all its globals to the
	// registry listener.
	if err := conn.Roundtrip(); err != nil {
		w.Close()
		return nil, fmt.Errorf("wayland: roundtrip: %w", err)
	}
	switch {
	case w.err != nil:
		err = w.err
	case w.compositor == nil:
		err = fmt.Errorf("%w: %s", ErrMissingGlobal, ifaceCompositor)
	case w.wm == nil:
		err = fmt.Errorf("%w: %s", ErrMissingGlobal, ifaceWmBase)
	}
	if err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// Init blocks until the graphics context is bound.
func (w *Window) Init(flags uint32) int32 {
	if w.stage < system.StageInitialized {
		w.stage = system.StageInitialized
	}
	w.waitConfigured()
	return 0
}

// Quit marks the window as closing. Quit events are delivered from
// then on.
func (w *Window) Quit() {
	w.running = false
	w.stage = system.StageQuitting
}

// Close destroys every protocol object and disconnects.
func (w *Window) Close() {
	if w.gl != nil {
		w.gl.Release()
		w.gl = nil
	}
	if w.eglWin != nil {
		w.eglWin.Destroy()
		w.eglWin = nil
	}
	if w.decoration != nil {
		w.decoration.Destroy()
		w.decoration = nil
	}
	if w.toplevel != nil {
		w.toplevel.Destroy()
		w.toplevel = nil
	}
	if w.xdgSurf != nil {
		w.xdgSurf.Destroy()
		w.xdgSurf = nil
	}
	if w.surf != nil {
		w.surf.Destroy()
		w.surf = nil
	}
	if w.cursor != nil {
		w.cursor.Destroy()
		w.cursor = nil
	}
	if w.keyboard != nil {
		w.keyboard.Release()
		w.keyboard = nil
	}
	if w.keymap != nil {
		w.keymap.Destroy()
		w.keymap = nil
	}
	if w.ptr != nil {
		w.ptr.Release()
		w.ptr = nil
	}
	if w.seat != nil {
		w.seat.Release()
		w.seat = nil
	}
	if w.warp != nil {
		w.warp.Destroy()
		w.warp = nil
	}
	if w.decor != nil {
		w.decor.Destroy()
		w.decor = nil
	}
	if w.wm != nil {
		w.wm.Destroy()
		w.wm = nil
	}
	if w.shm != nil {
		w.shm.Destroy()
		w.shm = nil
	}
	if w.compositor != nil {
		w.compositor.Destroy()
		w.compositor = nil
	}
	if w.conn != nil {
		w.conn.Disconnect()
		w.conn = nil
	}
	w.stage = system.StageRestored
}

func (w *Window) Stage() system.Stage {
	return w.stage
}

// Handles returns the native display and the native EGL window.
func (w *Window) Handles() (display, drawable uintptr) {
	if w.conn != nil {
		display = w.conn.Display()
	}
	if w.eglWin != nil {
		drawable = w.eglWin.Ptr()
	}
	return display, drawable
}

func (w *Window) KeyState() *key.Table {
	return &w.keys
}

func (w *Window) ModState() key.Mod {
	if w.keymap == nil {
		return key.ModNone
	}
	return w.keymap.Modifiers()
}

func (w *Window) MouseState() (x, y int32, buttons uint8) {
	return int32(w.x), int32(w.y), uint8(w.buttons)
}

func (w *Window) GLGetAttribute(attr system.GLAttr) (int32, bool) {
	return w.glAttrs.Get(attr)
}

func (w *Window) GLSetAttribute(attr system.GLAttr, v int32) int32 {
	return w.glAttrs.Set(attr, v)
}

func (w *Window) GLProcAddress(name string) uintptr {
	w.waitConfigured()
	p := w.gl.ProcAddress(name)
	w.log.Debug().Str("proc", name).Bool("found", p != 0).Msg("proc address")
	return p
}

func (w *Window) GLSwapBuffers() {
	w.waitConfigured()
	if err := w.gl.SwapBuffers(); err != nil {
		panic(fmt.Errorf("wayland: error swapping buffers: %w", err))
	}
}

// PollEvent pumps the connection and fills ev with the next pending
// event. Pointer events take precedence over key events. Once the
// window is closing every poll without pending events yields a quit
// event, and the process is terminated when the application ignores
// them.
func (w *Window) PollEvent(ev *event.Event) bool {
	w.pump()
	if pe, ok := w.pointerEvents.Pop(); ok {
		w.fillPointer(ev, pe)
		return true
	}
	if ke, ok := w.keyEvents.Pop(); ok {
		ev.SetKey(event.KeyEvent(ke.State, ke.Code, w.ModState()))
		return true
	}
	if !w.running {
		w.quitAttempts++
		ev.SetQuit()
		if w.quitAttempts >= w.opts.QuitRetries {
			w.log.Warn().Int("attempts", w.quitAttempts).Msg("exiting because the application ignored the quit events")
			w.opts.Exit(0)
		}
		return true
	}
	return false
}

func (w *Window) fillPointer(ev *event.Event, pe pointerEvent) {
	switch pe.kind {
	case pointerMotion:
		ev.SetMotion(event.MouseMotionEvent{
			Type:  event.MouseMotion,
			State: w.buttons,
			X:     uint16(int32(pe.x)),
			Y:     uint16(int32(pe.y)),
			XRel:  int16(int32(pe.x - w.x)),
			YRel:  int16(int32(pe.y - w.y)),
		})
		w.x, w.y = pe.x, pe.y
	case pointerButton:
		b := pointer.FromWire(pe.button)
		t := event.MouseButtonUp
		if pe.state == pointer.Pressed {
			t = event.MouseButtonDown
			w.buttons |= b.Mask()
		} else {
			w.buttons &^= b.Mask()
		}
		ev.SetButton(event.MouseButtonEvent{
			Type:   t,
			Button: b,
			State:  pe.state,
			X:      uint16(int32(w.x)),
			Y:      uint16(int32(w.y)),
		})
	}
}

func (w *Window) SetVideoMode(width, height, bpp int32, flags uint32) *system.Surface {
	w.waitConfigured()
	if width > 0 && height > 0 {
		w.width, w.height = width, height
		w.eglWin.Resize(width, height)
		w.setOpaqueRegion()
	}
	w.surface.Resize(w.width, w.height)
	w.surface.Flags = flags
	w.log.Debug().Int32("width", w.width).Int32("height", w.height).Int32("bpp", bpp).Msg("video mode")
	return &w.surface
}

func (w *Window) VideoInfo() *system.VideoInfo {
	w.info.Flags = system.HWAvailable | system.WMAvailable
	w.info.VideoMem = videoMem
	w.info.CurrentW = w.width
	w.info.CurrentH = w.height
	return &w.info
}

// ShowCursor hides the cursor for toggle 0, shows it for 1 and only
// queries otherwise. It returns the previous visibility.
func (w *Window) ShowCursor(toggle int32) int32 {
	prev := int32(0)
	if w.cursorVisible {
		prev = 1
	}
	switch toggle {
	case 0:
		w.cursorVisible = false
	case 1:
		w.cursorVisible = true
	default:
		return prev
	}
	if w.inside && w.ptr != nil {
		w.applyCursor(w.enterSerial)
	}
	return prev
}

func (w *Window) WarpMouse(x, y uint16) {
	w.x, w.y = float64(x), float64(y)
	if w.warp == nil || w.ptr == nil || w.surf == nil {
		return
	}
	w.warp.WarpPointer(w.surf, w.ptr, float64(x), float64(y), w.enterSerial)
}

func (w *Window) SetCaption(title, icon string) {
	w.title = title
	if w.toplevel != nil {
		w.toplevel.SetTitle(title)
	}
}

// Delay pumps the connection until ms milliseconds have passed.
func (w *Window) Delay(ms uint32) {
	deadline := time.Now().Add(time.Duration(ms) * time.Millisecond)
	for {
		w.pump()
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		w.wait(remaining)
	}
}

func (w *Window) EnableKeyRepeat(delay, interval int32) int32 {
	return 0
}

func (w *Window) Error() string {
	return ""
}

// waitConfigured pumps the connection until the surface is configured
// and the graphics context is bound.
func (w *Window) waitConfigured() {
	for !w.configured {
		w.pump()
		if w.configured {
			return
		}
		w.wait(-1)
	}
}

func (w *Window) setOpaqueRegion() {
	reg := w.compositor.CreateRegion()
	reg.Add(0, 0, w.width, w.height)
	w.surf.SetOpaqueRegion(reg)
	reg.Destroy()
}

// createToplevel turns the surface into a toplevel window.
func (w *Window) createToplevel() {
	w.xdgSurf = w.wm.GetXdgSurface(w.surf)
	w.toplevel = w.xdgSurf.GetToplevel()
	if w.title != "" {
		w.toplevel.SetTitle(w.title)
	}
	w.requestDecoration()
	w.surf.Commit()
}

func (w *Window) requestDecoration() {
	if w.decor == nil || w.toplevel == nil || w.decoration != nil {
		return
	}
	w.decoration = w.decor.GetToplevelDecoration(w.toplevel)
	w.decoration.SetMode(DecorationServerSide)
}

// themeCursor loads the default cursor on first use.
func (w *Window) themeCursor() Cursor {
	if w.cursor != nil || w.shm == nil || w.compositor == nil {
		return w.cursor
	}
	c, err := w.shm.LoadCursor(w.compositor, cursorName, cursorSize)
	if err != nil {
		w.log.Debug().Err(err).Msg("no cursor theme")
		return nil
	}
	w.cursor = c
	return c
}

func (w *Window) applyCursor(serial uint32) {
	if w.cursorVisible {
		w.ptr.SetCursor(serial, w.themeCursor())
	} else {
		w.ptr.SetCursor(serial, nil)
	}
}

func (w *Window) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}
