// SPDX-License-Identifier: Unlicense OR MIT

// Package kms implements a fullscreen window drawn directly to a
// display output, for sessions without a compositor. Buffers rendered
// by EGL are scanned out with legacy mode-setting after every swap.
package kms

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"sdlshim.org/io/event"
	"sdlshim.org/io/key"
	"sdlshim.org/io/system"
)

// Buffer formats and usage flags passed to Allocator.CreateSurface.
const (
	// FormatXRGB8888 is the fourcc code 'XR24'.
	FormatXRGB8888 uint32 = 0x34325258
	UseScanout     uint32 = 1 << 0
	UseRendering   uint32 = 1 << 2
)

const (
	videoMem = 2048000
	// Framebuffer depth and bits per pixel of XRGB8888.
	fbDepth = 24
	fbBPP   = 32
)

// Options configure a Window.
type Options struct {
	OpenDevice func() (Device, error)
	// NewAllocator creates a buffer allocator sharing the device fd.
	NewAllocator func(fd uintptr) (Allocator, error)
	// SetupGL binds a graphics context to the native device and
	// surface.
	SetupGL    func(device, surface uintptr) (GL, error)
	OpenSeat   func() (Seat, error)
	LoadKeymap func() (Keymap, error)
	// Terminal is put in raw mode by Init, when set.
	Terminal Terminal
	Order    event.Order
	Logger   zerolog.Logger
}

// Window is a fullscreen window on the first connected output.
type Window struct {
	opts Options
	log  zerolog.Logger

	dev   Device
	alloc Allocator
	surf  BufferSurface
	gl    GL
	seat  Seat
	km    Keymap

	out   output
	plane uint32
	phase Phase
	stage system.Stage
	raw   bool

	// fbs maps buffer handles to their framebuffer. A buffer is
	// registered on its first presentation.
	fbs  map[uint64]uint32
	prev Buffer

	keyEvents *event.Queue[key.Event]
	keys      key.Table
	glAttrs   system.GLAttributes
	surface   system.Surface
	info      system.VideoInfo
}

// New opens the device, lights up its first connected output and
// binds a graphics context to a scanout surface of the output size.
func New(opts Options) (*Window, error) {
	w := &Window{
		opts:      opts,
		log:       opts.Logger.With().Str("backend", "drm").Logger(),
		fbs:       make(map[uint64]uint32),
		keyEvents: event.NewQueue[key.Event](opts.Order),
	}
	if err := w.bringUp(); err != nil {
		w.log.Debug().Err(err).Stringer("phase", w.phase).Msg("bring-up failed")
		w.Close()
		return nil, err
	}
	return w, nil
}

func (w *Window) bringUp() error {
	dev, err := w.opts.OpenDevice()
	if err != nil {
		return fmt.Errorf("kms: %w", err)
	}
	w.dev = dev
	w.phase = PhaseDeviceOpened

	if w.out, err = chooseOutput(dev, w.log); err != nil {
		return err
	}
	if w.plane, err = choosePlane(dev); err != nil {
		return err
	}
	w.phase = PhaseOutputChosen
	width, height := uint32(w.out.mode.HDisplay), uint32(w.out.mode.VDisplay)
	w.log.Debug().
		Uint32("connector", w.out.connector).
		Stringer("mode", &w.out.mode).
		Uint32("crtc", w.out.crtc).
		Uint32("plane", w.plane).
		Msg("output")

	if w.alloc, err = w.opts.NewAllocator(dev.Fd()); err != nil {
		return fmt.Errorf("kms: %w", err)
	}
	if w.surf, err = w.alloc.CreateSurface(width, height, FormatXRGB8888, UseScanout|UseRendering); err != nil {
		return fmt.Errorf("kms: %w", err)
	}
	w.phase = PhaseSurfaceCreated

	if w.gl, err = w.opts.SetupGL(w.alloc.Ptr(), w.surf.Ptr()); err != nil {
		return fmt.Errorf("kms: %w", err)
	}
	w.phase = PhaseContextBound

	if w.seat, err = w.opts.OpenSeat(); err != nil {
		return fmt.Errorf("kms: %w", err)
	}
	if w.km, err = w.opts.LoadKeymap(); err != nil {
		return fmt.Errorf("kms: %w", err)
	}
	w.surface = system.NewSurface(int32(width), int32(height), system.OpenGL|system.Fullscreen)
	return nil
}

// Init puts the terminal in raw mode, so that key presses do not
// echo on the console under the output.
func (w *Window) Init(flags uint32) int32 {
	if w.opts.Terminal != nil && !w.raw {
		if err := w.opts.Terminal.MakeRaw(); err != nil {
			w.log.Warn().Err(err).Msg("terminal raw mode")
		} else {
			w.raw = true
		}
	}
	w.stage = system.StageRunning
	return 0
}

// Quit restores the terminal.
func (w *Window) Quit() {
	w.restoreTerminal()
	w.phase = PhaseQuitting
	w.stage = system.StageQuitting
}

// Close releases the graphics context, the buffers and the device.
func (w *Window) Close() {
	w.restoreTerminal()
	if w.km != nil {
		w.km.Destroy()
		w.km = nil
	}
	if w.seat != nil {
		w.seat.Destroy()
		w.seat = nil
	}
	if w.gl != nil {
		w.gl.Release()
		w.gl = nil
	}
	if w.prev != nil {
		w.surf.ReleaseBuffer(w.prev)
		w.prev = nil
	}
	for h, fb := range w.fbs {
		if err := w.dev.RemoveFramebuffer(fb); err != nil {
			w.log.Debug().Err(err).Uint32("fb", fb).Msg("remove framebuffer")
		}
		delete(w.fbs, h)
	}
	if w.surf != nil {
		w.surf.Destroy()
		w.surf = nil
	}
	if w.alloc != nil {
		w.alloc.Destroy()
		w.alloc = nil
	}
	if w.dev != nil {
		w.dev.Close()
		w.dev = nil
	}
	w.phase = PhaseRestored
	w.stage = system.StageRestored
}

func (w *Window) restoreTerminal() {
	if !w.raw {
		return
	}
	w.raw = false
	if err := w.opts.Terminal.Restore(); err != nil {
		w.log.Warn().Err(err).Msg("terminal restore")
	}
}

func (w *Window) Stage() system.Stage {
	return w.stage
}

// Phase returns the bring-up and presentation phase.
func (w *Window) Phase() Phase {
	return w.phase
}

// Handles returns the native buffer device and surface.
func (w *Window) Handles() (display, drawable uintptr) {
	if w.alloc != nil {
		display = w.alloc.Ptr()
	}
	if w.surf != nil {
		drawable = w.surf.Ptr()
	}
	return display, drawable
}

func (w *Window) KeyState() *key.Table {
	return &w.keys
}

func (w *Window) ModState() key.Mod {
	if w.km == nil {
		return key.ModNone
	}
	return w.km.Modifiers()
}

// MouseState reports no pointer: pointer devices are not read on
// this path.
func (w *Window) MouseState() (x, y int32, buttons uint8) {
	return 0, 0, 0
}

func (w *Window) GLGetAttribute(attr system.GLAttr) (int32, bool) {
	return w.glAttrs.Get(attr)
}

func (w *Window) GLSetAttribute(attr system.GLAttr, v int32) int32 {
	return w.glAttrs.Set(attr, v)
}

func (w *Window) GLProcAddress(name string) uintptr {
	p := w.gl.ProcAddress(name)
	w.log.Debug().Str("proc", name).Bool("found", p != 0).Msg("proc address")
	return p
}

// GLSwapBuffers presents the rendered frame on the output.
func (w *Window) GLSwapBuffers() {
	if err := w.present(); err != nil {
		panic(err)
	}
}

// PollEvent reads the pending input and fills ev with the next key
// event.
func (w *Window) PollEvent(ev *event.Event) bool {
	w.dispatch()
	ke, ok := w.keyEvents.Pop()
	if !ok {
		return false
	}
	ev.SetKey(event.KeyEvent(ke.State, ke.Code, w.ModState()))
	return true
}

// SetVideoMode reports the output mode: the size of the scanout
// surface cannot change.
func (w *Window) SetVideoMode(width, height, bpp int32, flags uint32) *system.Surface {
	w.surface.Flags = flags
	w.log.Debug().Int32("width", width).Int32("height", height).Int32("bpp", bpp).Stringer("mode", &w.out.mode).Msg("video mode")
	return &w.surface
}

func (w *Window) VideoInfo() *system.VideoInfo {
	w.info.Flags = system.HWAvailable
	w.info.VideoMem = videoMem
	w.info.CurrentW = int32(w.out.mode.HDisplay)
	w.info.CurrentH = int32(w.out.mode.VDisplay)
	return &w.info
}

func (w *Window) ShowCursor(toggle int32) int32 {
	return 0
}

func (w *Window) WarpMouse(x, y uint16) {
	w.log.Debug().Uint16("x", x).Uint16("y", y).Msg("warp mouse ignored")
}

func (w *Window) SetCaption(title, icon string) {
	w.log.Debug().Str("title", title).Msg("caption ignored")
}

// Delay reads input until ms milliseconds have passed.
func (w *Window) Delay(ms uint32) {
	deadline := time.Now().Add(time.Duration(ms) * time.Millisecond)
	for {
		w.dispatch()
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
