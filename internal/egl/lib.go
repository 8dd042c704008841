// SPDX-License-Identifier: Unlicense OR MIT

package egl

import "reflect"

// Lib holds the resolved EGL entry points. A nil field is an entry
// point the driver does not provide.
type Lib struct {
	handle uintptr

	eglGetDisplay                     func(native uintptr) Display
	eglGetPlatformDisplay             func(platform uint32, native uintptr, attribs *Attrib) Display
	eglGetPlatformDisplayEXT          func(platform uint32, native uintptr, attribs *Int) Display
	eglInitialize                     func(disp Display, major, minor *Int) Boolean
	eglTerminate                      func(disp Display) Boolean
	eglBindAPI                        func(api uint32) Boolean
	eglGetConfigs                     func(disp Display, configs *Config, size Int, num *Int) Boolean
	eglChooseConfig                   func(disp Display, attribs *Int, configs *Config, size Int, num *Int) Boolean
	eglGetConfigAttrib                func(disp Display, cfg Config, attr Int, val *Int) Boolean
	eglCreateWindowSurface            func(disp Display, cfg Config, win uintptr, attribs *Int) Surface
	eglCreatePixmapSurface            func(disp Display, cfg Config, pixmap uintptr, attribs *Int) Surface
	eglCreatePlatformWindowSurface    func(disp Display, cfg Config, win uintptr, attribs *Attrib) Surface
	eglCreatePlatformWindowSurfaceEXT func(disp Display, cfg Config, win uintptr, attribs *Int) Surface
	eglCreateContext                  func(disp Display, cfg Config, share RawContext, attribs *Int) RawContext
	eglDestroyContext                 func(disp Display, ctx RawContext) Boolean
	eglDestroySurface                 func(disp Display, surf Surface) Boolean
	eglMakeCurrent                    func(disp Display, draw, read Surface, ctx RawContext) Boolean
	eglGetCurrentContext              func() RawContext
	eglSwapBuffers                    func(disp Display, surf Surface) Boolean
	eglSwapInterval                   func(disp Display, interval Int) Boolean
	eglQueryString                    func(disp Display, name Int) string
	eglGetProcAddress                 func(name string) uintptr
	eglGetError                       func() Int
	eglReleaseThread                  func() Boolean
}

// procs maps entry point names to their field in l.
func (l *Lib) procs() map[string]any {
	return map[string]any{
		"eglGetDisplay":                     &l.eglGetDisplay,
		"eglGetPlatformDisplay":             &l.eglGetPlatformDisplay,
		"eglGetPlatformDisplayEXT":          &l.eglGetPlatformDisplayEXT,
		"eglInitialize":                     &l.eglInitialize,
		"eglTerminate":                      &l.eglTerminate,
		"eglBindAPI":                        &l.eglBindAPI,
		"eglGetConfigs":                     &l.eglGetConfigs,
		"eglChooseConfig":                   &l.eglChooseConfig,
		"eglGetConfigAttrib":                &l.eglGetConfigAttrib,
		"eglCreateWindowSurface":            &l.eglCreateWindowSurface,
		"eglCreatePixmapSurface":            &l.eglCreatePixmapSurface,
		"eglCreatePlatformWindowSurface":    &l.eglCreatePlatformWindowSurface,
		"eglCreatePlatformWindowSurfaceEXT": &l.eglCreatePlatformWindowSurfaceEXT,
		"eglCreateContext":                  &l.eglCreateContext,
		"eglDestroyContext":                 &l.eglDestroyContext,
		"eglDestroySurface":                 &l.eglDestroySurface,
		"eglMakeCurrent":                    &l.eglMakeCurrent,
		"eglGetCurrentContext":              &l.eglGetCurrentContext,
		"eglSwapBuffers":                    &l.eglSwapBuffers,
		"eglSwapInterval":                   &l.eglSwapInterval,
		"eglQueryString":                    &l.eglQueryString,
		"eglGetProcAddress":                 &l.eglGetProcAddress,
		"eglGetError":                       &l.eglGetError,
		"eglReleaseThread":                  &l.eglReleaseThread,
	}
}

// fail returns the error of the last failed call named op.
func (l *Lib) fail(op string) error {
	code := Int(0)
	if l.eglGetError != nil {
		code = l.eglGetError()
	}
	return &Error{Op: op, Code: code}
}

func (l *Lib) Initialize(disp Display) (major, minor Int, err error) {
	if l.eglInitialize == nil {
		return 0, 0, notFound("eglInitialize")
	}
	if l.eglInitialize(disp, &major, &minor) == 0 {
		return 0, 0, l.fail("eglInitialize")
	}
	return major, minor, nil
}

func (l *Lib) Terminate(disp Display) error {
	if l.eglTerminate == nil {
		return notFound("eglTerminate")
	}
	if l.eglTerminate(disp) == 0 {
		return l.fail("eglTerminate")
	}
	return nil
}

func (l *Lib) BindAPI(api uint32) error {
	if l.eglBindAPI == nil {
		return notFound("eglBindAPI")
	}
	if l.eglBindAPI(api) == 0 {
		return l.fail("eglBindAPI")
	}
	return nil
}

// NumConfigs returns the number of configs of disp.
func (l *Lib) NumConfigs(disp Display) (Int, error) {
	if l.eglGetConfigs == nil {
		return 0, notFound("eglGetConfigs")
	}
	var n Int
	if l.eglGetConfigs(disp, nil, 0, &n) == 0 {
		return 0, l.fail("eglGetConfigs")
	}
	return n, nil
}

// ChooseConfig returns up to size configs matching the
// EGL_NONE-terminated attribs.
func (l *Lib) ChooseConfig(disp Display, attribs []Int, size Int) ([]Config, error) {
	if l.eglChooseConfig == nil {
		return nil, notFound("eglChooseConfig")
	}
	if size <= 0 {
		return nil, nil
	}
	cfgs := make([]Config, size)
	var n Int
	if l.eglChooseConfig(disp, &attribs[0], &cfgs[0], size, &n) == 0 {
		return nil, l.fail("eglChooseConfig")
	}
	return cfgs[:n], nil
}

func (l *Lib) ConfigAttrib(disp Display, cfg Config, attr Int) (Int, error) {
	if l.eglGetConfigAttrib == nil {
		return 0, notFound("eglGetConfigAttrib")
	}
	var v Int
	if l.eglGetConfigAttrib(disp, cfg, attr, &v) == 0 {
		return 0, l.fail("eglGetConfigAttrib")
	}
	return v, nil
}

var noAttribs = []Int{_EGL_NONE}

func (l *Lib) CreateWindowSurface(disp Display, cfg Config, win uintptr) (Surface, error) {
	if l.eglCreateWindowSurface == nil {
		return 0, notFound("eglCreateWindowSurface")
	}
	s := l.eglCreateWindowSurface(disp, cfg, win, &noAttribs[0])
	if s == nilEGLSurface {
		return 0, l.fail("eglCreateWindowSurface")
	}
	return s, nil
}

func (l *Lib) CreatePixmapSurface(disp Display, cfg Config, pixmap uintptr) (Surface, error) {
	if l.eglCreatePixmapSurface == nil {
		return 0, notFound("eglCreatePixmapSurface")
	}
	s := l.eglCreatePixmapSurface(disp, cfg, pixmap, &noAttribs[0])
	if s == nilEGLSurface {
		return 0, l.fail("eglCreatePixmapSurface")
	}
	return s, nil
}

// CreatePlatformWindowSurface creates a surface from an opaque
// platform window, preferring the EXT entry point.
func (l *Lib) CreatePlatformWindowSurface(disp Display, cfg Config, win uintptr) (Surface, error) {
	var s Surface
	switch {
	case l.eglCreatePlatformWindowSurfaceEXT != nil:
		s = l.eglCreatePlatformWindowSurfaceEXT(disp, cfg, win, &noAttribs[0])
	case l.eglCreatePlatformWindowSurface != nil:
		none := []Attrib{_EGL_NONE}
		s = l.eglCreatePlatformWindowSurface(disp, cfg, win, &none[0])
	default:
		return 0, notFound("eglCreatePlatformWindowSurface")
	}
	if s == nilEGLSurface {
		return 0, l.fail("eglCreatePlatformWindowSurface")
	}
	return s, nil
}

func (l *Lib) CreateContext(disp Display, cfg Config, share RawContext, attribs []Int) (RawContext, error) {
	if l.eglCreateContext == nil {
		return 0, notFound("eglCreateContext")
	}
	c := l.eglCreateContext(disp, cfg, share, &attribs[0])
	if c == nilEGLContext {
		return 0, l.fail("eglCreateContext")
	}
	return c, nil
}

func (l *Lib) DestroyContext(disp Display, ctx RawContext) error {
	if l.eglDestroyContext == nil {
		return notFound("eglDestroyContext")
	}
	if l.eglDestroyContext(disp, ctx) == 0 {
		return l.fail("eglDestroyContext")
	}
	return nil
}

func (l *Lib) DestroySurface(disp Display, surf Surface) error {
	if l.eglDestroySurface == nil {
		return notFound("eglDestroySurface")
	}
	if l.eglDestroySurface(disp, surf) == 0 {
		return l.fail("eglDestroySurface")
	}
	return nil
}

func (l *Lib) MakeCurrent(disp Display, draw, read Surface, ctx RawContext) error {
	if l.eglMakeCurrent == nil {
		return notFound("eglMakeCurrent")
	}
	if l.eglMakeCurrent(disp, draw, read, ctx) == 0 {
		return l.fail("eglMakeCurrent")
	}
	return nil
}

func (l *Lib) CurrentContext() (RawContext, error) {
	if l.eglGetCurrentContext == nil {
		return 0, notFound("eglGetCurrentContext")
	}
	return l.eglGetCurrentContext(), nil
}

func (l *Lib) SwapBuffers(disp Display, surf Surface) error {
	if l.eglSwapBuffers == nil {
		return notFound("eglSwapBuffers")
	}
	if l.eglSwapBuffers(disp, surf) == 0 {
		return l.fail("eglSwapBuffers")
	}
	return nil
}

func (l *Lib) SwapInterval(disp Display, interval Int) error {
	if l.eglSwapInterval == nil {
		return notFound("eglSwapInterval")
	}
	if l.eglSwapInterval(disp, interval) == 0 {
		return l.fail("eglSwapInterval")
	}
	return nil
}

func (l *Lib) QueryString(disp Display, name Int) (string, error) {
	if l.eglQueryString == nil {
		return "", notFound("eglQueryString")
	}
	return l.eglQueryString(disp, name), nil
}

// ProcAddress returns the address of a client API or extension
// function. A zero address is reported as ErrNotFound.
func (l *Lib) ProcAddress(name string) (uintptr, error) {
	if l.eglGetProcAddress == nil {
		return 0, notFound("eglGetProcAddress")
	}
	p := l.eglGetProcAddress(name)
	if p == 0 {
		return 0, notFound(name)
	}
	return p, nil
}

func (l *Lib) ReleaseThread() error {
	if l.eglReleaseThread == nil {
		return notFound("eglReleaseThread")
	}
	if l.eglReleaseThread() == 0 {
		return l.fail("eglReleaseThread")
	}
	return nil
}

// Resolved reports which entry points were found, by name.
func (l *Lib) Resolved() map[string]bool {
	res := make(map[string]bool)
	for name, fptr := range l.procs() {
		res[name] = !isNilFunc(fptr)
	}
	return res
}

func isNilFunc(fptr any) bool {
	return reflect.ValueOf(fptr).Elem().IsNil()
}
