// SPDX-License-Identifier: Unlicense OR MIT

// Package egl binds the EGL context negotiation API. Entry points are
// resolved by name at load time; any of them may be missing on a given
// driver, in which case the corresponding method reports ErrNotFound.
package egl

import (
	"errors"
	"fmt"
	"strings"
)

type (
	Int        int32
	Boolean    uint32
	Display    uintptr
	Config     uintptr
	Surface    uintptr
	RawContext uintptr
	// Attrib is EGLAttrib, a pointer sized attribute used by the
	// EGL 1.5 platform entry points.
	Attrib uintptr
)

// Platform is an EGL platform enumerant for the platform display
// entry points.
type Platform uint32

const (
	PlatformGBM     Platform = 0x31D7
	PlatformWayland Platform = 0x31D8
)

const (
	_EGL_SUCCESS                     = 0x3000
	_EGL_BLUE_SIZE                   = 0x3022
	_EGL_GREEN_SIZE                  = 0x3023
	_EGL_RED_SIZE                    = 0x3024
	_EGL_NATIVE_VISUAL_ID            = 0x302e
	_EGL_SURFACE_TYPE                = 0x3033
	_EGL_NONE                        = 0x3038
	_EGL_RENDERABLE_TYPE             = 0x3040
	_EGL_VENDOR                      = 0x3053
	_EGL_VERSION                     = 0x3054
	_EGL_EXTENSIONS                  = 0x3055
	_EGL_CLIENT_APIS                 = 0x308d
	_EGL_CONTEXT_MAJOR_VERSION       = 0x3098
	_EGL_OPENGL_API                  = 0x30a2
	_EGL_CONTEXT_MINOR_VERSION       = 0x30fb
	_EGL_CONTEXT_OPENGL_PROFILE_MASK = 0x30fd
	_EGL_CONTEXT_OPENGL_CORE_BIT     = 0x1
	_EGL_OPENGL_BIT                  = 0x8
	_EGL_WINDOW_BIT                  = 0x4
)

var (
	nilEGLDisplay Display
	nilEGLSurface Surface
	nilEGLContext RawContext
)

// ErrNotFound is reported by calls whose entry point could not be
// resolved.
var ErrNotFound = errors.New("symbol not found")

// Error is a failed EGL call and the decoded eglGetError code.
type Error struct {
	Op   string
	Code Int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%x)", e.Op, ErrorString(e.Code), int32(e.Code))
}

func notFound(name string) error {
	return fmt.Errorf("egl: %s: %w", name, ErrNotFound)
}

// ErrorString describes an eglGetError code.
func ErrorString(code Int) string {
	switch code {
	case 0x3000:
		return "The last function succeeded without error."
	case 0x3001:
		return "EGL is not initialized, or could not be initialized, for the specified EGL display connection."
	case 0x3002:
		return "EGL cannot access a requested resource (for example a context is bound in another thread)."
	case 0x3003:
		return "EGL failed to allocate resources for the requested operation."
	case 0x3004:
		return "An unrecognized attribute or attribute value was passed in the attribute list."
	case 0x3005:
		return "An EGLConfig argument does not name a valid EGL frame buffer configuration."
	case 0x3006:
		return "An EGLContext argument does not name a valid EGL rendering context."
	case 0x3007:
		return "The current surface of the calling thread is a window, pixel buffer or pixmap that is no longer valid."
	case 0x3008:
		return "An EGLDisplay argument does not name a valid EGL display connection."
	case 0x3009:
		return "Arguments are inconsistent (for example, a valid context requires buffers not supplied by a valid surface)."
	case 0x300a:
		return "A NativePixmapType argument does not refer to a valid native pixmap."
	case 0x300b:
		return "A NativeWindowType argument does not refer to a valid native window."
	case 0x300c:
		return "One or more argument values are invalid."
	case 0x300d:
		return "An EGLSurface argument does not name a valid surface configured for GL rendering."
	case 0x300e:
		return "A power management event has occurred. The application must destroy all contexts and reinitialise OpenGL ES state and objects to continue rendering."
	default:
		return "Unknown"
	}
}

// WindowKind selects how Target.Window is turned into a surface.
type WindowKind uint8

const (
	// NativeWindow is a platform window handle passed to
	// eglCreateWindowSurface, such as a wl_egl_window.
	NativeWindow WindowKind = iota
	// NativePointer is an opaque platform object passed to
	// eglCreatePlatformWindowSurface, such as a gbm_surface.
	NativePointer
)

// Target is the drawable a context is set up for.
type Target struct {
	Platform Platform
	// Display is the native display: a wl_display or a gbm_device.
	Display uintptr
	Window  uintptr
	Kind    WindowKind
	// VisualID restricts configs to a native visual, when non-zero.
	VisualID Int
}

// Attribs are the requested config and context attributes.
type Attribs struct {
	Major, Minor Int
	ColorBits    Int
}

func DefaultAttribs() Attribs {
	return Attribs{Major: 1, Minor: 0, ColorBits: 8}
}

// Context is a current EGL context with its window surface.
type Context struct {
	lib     *Lib
	disp    Display
	surf    Surface
	ctx     RawContext
	config  Config
	Version [2]Int
}

// Setup runs the full bring-up sequence for t: platform display,
// initialization, API binding, config selection, surface and context
// creation, and make-current. The context is verified to be current
// before Setup returns.
func (l *Lib) Setup(t Target, a Attribs) (*Context, error) {
	disp, err := l.PlatformDisplay(t.Platform, t.Display)
	if err != nil {
		return nil, err
	}
	major, minor, err := l.Initialize(disp)
	if err != nil {
		return nil, err
	}
	if err := l.BindAPI(_EGL_OPENGL_API); err != nil {
		return nil, err
	}
	n, err := l.NumConfigs(disp)
	if err != nil {
		return nil, err
	}
	attribs := []Int{
		_EGL_SURFACE_TYPE, _EGL_WINDOW_BIT,
		_EGL_RENDERABLE_TYPE, _EGL_OPENGL_BIT,
		_EGL_RED_SIZE, a.ColorBits,
		_EGL_GREEN_SIZE, a.ColorBits,
		_EGL_BLUE_SIZE, a.ColorBits,
		_EGL_NONE,
	}
	cfgs, err := l.ChooseConfig(disp, attribs, n)
	if err != nil {
		return nil, err
	}
	if len(cfgs) == 0 {
		return nil, errors.New("egl: eglChooseConfig returned 0 configs")
	}
	var (
		cfg  Config
		surf Surface
	)
	err = errors.New("egl: no config with a native visual")
	for _, c := range cfgs {
		vid, verr := l.ConfigAttrib(disp, c, _EGL_NATIVE_VISUAL_ID)
		if verr != nil {
			continue
		}
		if t.VisualID != 0 && vid != t.VisualID {
			continue
		}
		s, serr := l.createSurface(disp, c, t)
		if serr != nil {
			err = serr
			continue
		}
		cfg, surf = c, s
		break
	}
	if surf == nilEGLSurface {
		return nil, err
	}
	ctxAttribs := []Int{
		_EGL_CONTEXT_MAJOR_VERSION, a.Major,
		_EGL_CONTEXT_MINOR_VERSION, a.Minor,
		_EGL_CONTEXT_OPENGL_PROFILE_MASK, _EGL_CONTEXT_OPENGL_CORE_BIT,
		_EGL_NONE,
	}
	ctx, err := l.CreateContext(disp, cfg, nilEGLContext, ctxAttribs)
	if err != nil {
		l.DestroySurface(disp, surf)
		return nil, err
	}
	if err := l.MakeCurrent(disp, surf, surf, ctx); err != nil {
		l.DestroyContext(disp, ctx)
		l.DestroySurface(disp, surf)
		return nil, err
	}
	cur, err := l.CurrentContext()
	if err != nil {
		return nil, err
	}
	if cur != ctx {
		return nil, fmt.Errorf("egl: current context %#x is not the created context %#x", cur, ctx)
	}
	return &Context{
		lib:     l,
		disp:    disp,
		surf:    surf,
		ctx:     ctx,
		config:  cfg,
		Version: [2]Int{major, minor},
	}, nil
}

func (l *Lib) createSurface(disp Display, cfg Config, t Target) (Surface, error) {
	switch t.Kind {
	case NativePointer:
		return l.CreatePlatformWindowSurface(disp, cfg, t.Window)
	default:
		return l.CreateWindowSurface(disp, cfg, t.Window)
	}
}

// PlatformDisplay returns the display for a native display of the
// given platform, trying the EXT entry point, the EGL 1.5 entry point
// and finally eglGetDisplay.
func (l *Lib) PlatformDisplay(p Platform, native uintptr) (Display, error) {
	var d Display
	switch {
	case l.eglGetPlatformDisplayEXT != nil:
		d = l.eglGetPlatformDisplayEXT(uint32(p), native, nil)
		if d == nilEGLDisplay {
			return 0, l.fail("eglGetPlatformDisplayEXT")
		}
	case l.eglGetPlatformDisplay != nil:
		d = l.eglGetPlatformDisplay(uint32(p), native, nil)
		if d == nilEGLDisplay {
			return 0, l.fail("eglGetPlatformDisplay")
		}
	case l.eglGetDisplay != nil:
		d = l.eglGetDisplay(native)
		if d == nilEGLDisplay {
			return 0, l.fail("eglGetDisplay")
		}
	default:
		return 0, notFound("eglGetPlatformDisplay")
	}
	return d, nil
}

// Extensions returns the extension list of disp, or of the client
// when disp is zero.
func (l *Lib) Extensions(disp Display) ([]string, error) {
	s, err := l.QueryString(disp, _EGL_EXTENSIONS)
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}

// Describe returns the vendor, version and client API strings
// of disp.
func (l *Lib) Describe(disp Display) (vendor, version, apis string, err error) {
	if vendor, err = l.QueryString(disp, _EGL_VENDOR); err != nil {
		return
	}
	if version, err = l.QueryString(disp, _EGL_VERSION); err != nil {
		return
	}
	apis, err = l.QueryString(disp, _EGL_CLIENT_APIS)
	return
}

func (c *Context) SwapBuffers() error {
	return c.lib.SwapBuffers(c.disp, c.surf)
}

// ProcAddress returns the address of a client API function, or zero.
func (c *Context) ProcAddress(name string) uintptr {
	p, err := c.lib.ProcAddress(name)
	if err != nil {
		return 0
	}
	return p
}

func (c *Context) Display() Display {
	return c.disp
}

func (c *Context) Surface() Surface {
	return c.surf
}

func (c *Context) Release() {
	if c.ctx == nilEGLContext {
		return
	}
	c.lib.MakeCurrent(c.disp, nilEGLSurface, nilEGLSurface, nilEGLContext)
	c.lib.DestroySurface(c.disp, c.surf)
	c.lib.DestroyContext(c.disp, c.ctx)
	c.lib.Terminate(c.disp)
	c.lib.ReleaseThread()
	c.ctx = nilEGLContext
	c.surf = nilEGLSurface
}
