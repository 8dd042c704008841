// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && !nowayland

// Package wl binds libwayland-client to the connection and proxy
// interfaces of package wayland.
package wl

/*
#cgo LDFLAGS: -lwayland-client -lwayland-cursor -lwayland-egl

#include <stdlib.h>
#include <wayland-client.h>
#include <wayland-cursor.h>
#include <wayland-egl.h>
#include "wl_protocols.h"
#include "wl_glue.h"

static struct wl_cursor_image *shim_cursor_image(struct wl_cursor *c) {
	return c->image_count > 0 ? c->images[0] : NULL;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"runtime/cgo"
	"unsafe"

	"golang.org/x/sys/unix"

	"sdlshim.org/app/internal/wayland"
)

type conn struct {
	disp    *C.struct_wl_display
	reg     *C.struct_wl_registry
	handle  cgo.Handle
	handler wayland.Handler
}

type (
	compositor         struct{ p *C.struct_wl_compositor }
	surface            struct{ p *C.struct_wl_surface }
	region             struct{ p *C.struct_wl_region }
	toplevel           struct{ p *C.struct_xdg_toplevel }
	decorationManager  struct{ p *C.struct_zxdg_decoration_manager_v1 }
	toplevelDecoration struct{ p *C.struct_zxdg_toplevel_decoration_v1 }
	keyboard           struct{ p *C.struct_wl_keyboard }
	pointer            struct{ p *C.struct_wl_pointer }
	pointerWarp        struct{ p *C.struct_wp_pointer_warp_v1 }
	eglWindow          struct{ p *C.struct_wl_egl_window }
)

// Proxies with listeners keep the connection that receives their
// events.
type (
	wmBase struct {
		c *conn
		p *C.struct_xdg_wm_base
	}
	xdgSurface struct {
		c *conn
		p *C.struct_xdg_surface
	}
	seat struct {
		c *conn
		p *C.struct_wl_seat
	}
)

type shm struct {
	p     *C.struct_wl_shm
	theme *C.struct_wl_cursor_theme
}

// cursor is a theme image attached to a surface of its own.
type cursor struct {
	surf *C.struct_wl_surface
	img  *C.struct_wl_cursor_image
}

var _ wayland.Conn = (*conn)(nil)

// Connect connects to the compositor named by the environment and
// routes its events to h.
func Connect(h wayland.Handler) (wayland.Conn, error) {
	disp := C.wl_display_connect(nil)
	if disp == nil {
		return nil, errors.New("wl: wl_display_connect failed")
	}
	c := &conn{disp: disp, handler: h}
	c.handle = cgo.NewHandle(c)
	c.reg = C.wl_display_get_registry(disp)
	if c.reg == nil {
		c.Disconnect()
		return nil, errors.New("wl: wl_display_get_registry failed")
	}
	C.shim_wl_registry_add_listener(c.reg, C.uintptr_t(c.handle))
	return c, nil
}

func (c *conn) data() C.uintptr_t {
	return C.uintptr_t(c.handle)
}

func (c *conn) Display() uintptr {
	return uintptr(unsafe.Pointer(c.disp))
}

func (c *conn) Fd() int {
	return int(C.wl_display_get_fd(c.disp))
}

func (c *conn) Roundtrip() error {
	if r, err := C.wl_display_roundtrip(c.disp); r < 0 {
		return fmt.Errorf("wl: roundtrip: %w", errnoOr(err))
	}
	return nil
}

func (c *conn) DispatchPending() (int, error) {
	n, err := C.wl_display_dispatch_pending(c.disp)
	if n < 0 {
		return 0, fmt.Errorf("wl: dispatch: %w", errnoOr(err))
	}
	return int(n), nil
}

func (c *conn) Flush() error {
	if r, err := C.wl_display_flush(c.disp); r < 0 {
		return errnoOr(err)
	}
	return nil
}

func (c *conn) PrepareRead() bool {
	return C.wl_display_prepare_read(c.disp) == 0
}

func (c *conn) ReadEvents() error {
	if r, err := C.wl_display_read_events(c.disp); r < 0 {
		return errnoOr(err)
	}
	return nil
}

func (c *conn) CancelRead() {
	C.wl_display_cancel_read(c.disp)
}

func (c *conn) Disconnect() {
	if c.disp == nil {
		return
	}
	if c.reg != nil {
		C.wl_registry_destroy(c.reg)
		c.reg = nil
	}
	C.wl_display_disconnect(c.disp)
	c.disp = nil
	c.handle.Delete()
}

func (c *conn) bind(name uint32, iface *C.struct_wl_interface, version uint32) unsafe.Pointer {
	return C.wl_registry_bind(c.reg, C.uint32_t(name), iface, C.uint32_t(version))
}

func (c *conn) BindCompositor(name, version uint32) wayland.Compositor {
	return &compositor{p: (*C.struct_wl_compositor)(c.bind(name, &C.wl_compositor_interface, version))}
}

func (c *conn) BindSeat(name, version uint32) wayland.Seat {
	s := &seat{c: c, p: (*C.struct_wl_seat)(c.bind(name, &C.wl_seat_interface, version))}
	C.shim_wl_seat_add_listener(s.p, c.data())
	return s
}

func (c *conn) BindShm(name, version uint32) wayland.Shm {
	return &shm{p: (*C.struct_wl_shm)(c.bind(name, &C.wl_shm_interface, version))}
}

func (c *conn) BindWmBase(name, version uint32) wayland.WmBase {
	wm := &wmBase{c: c, p: (*C.struct_xdg_wm_base)(c.bind(name, &C.xdg_wm_base_interface, version))}
	C.shim_xdg_wm_base_add_listener(wm.p, c.data())
	return wm
}

func (c *conn) BindDecorationManager(name, version uint32) wayland.DecorationManager {
	return &decorationManager{p: (*C.struct_zxdg_decoration_manager_v1)(c.bind(name, &C.zxdg_decoration_manager_v1_interface, version))}
}

func (c *conn) BindPointerWarp(name, version uint32) wayland.PointerWarp {
	return &pointerWarp{p: (*C.struct_wp_pointer_warp_v1)(c.bind(name, &C.wp_pointer_warp_v1_interface, version))}
}

func (c *conn) NewEGLWindow(s wayland.Surface, width, height int32) (wayland.EGLWindow, error) {
	w := C.wl_egl_window_create(s.(*surface).p, C.int(width), C.int(height))
	if w == nil {
		return nil, errors.New("wl: wl_egl_window_create failed")
	}
	return &eglWindow{p: w}, nil
}

func (c *compositor) CreateSurface() wayland.Surface {
	return &surface{p: C.wl_compositor_create_surface(c.p)}
}

func (c *compositor) CreateRegion() wayland.Region {
	return &region{p: C.wl_compositor_create_region(c.p)}
}

func (c *compositor) Destroy() { C.wl_compositor_destroy(c.p) }

func (s *surface) SetOpaqueRegion(r wayland.Region) {
	C.wl_surface_set_opaque_region(s.p, r.(*region).p)
}

func (s *surface) Commit()  { C.wl_surface_commit(s.p) }
func (s *surface) Destroy() { C.wl_surface_destroy(s.p) }

func (r *region) Add(x, y, width, height int32) {
	C.wl_region_add(r.p, C.int32_t(x), C.int32_t(y), C.int32_t(width), C.int32_t(height))
}

func (r *region) Destroy() { C.wl_region_destroy(r.p) }

func (wm *wmBase) GetXdgSurface(s wayland.Surface) wayland.XdgSurface {
	xs := &xdgSurface{c: wm.c, p: C.xdg_wm_base_get_xdg_surface(wm.p, s.(*surface).p)}
	C.shim_xdg_surface_add_listener(xs.p, wm.c.data())
	return xs
}

func (wm *wmBase) Pong(serial uint32) { C.xdg_wm_base_pong(wm.p, C.uint32_t(serial)) }
func (wm *wmBase) Destroy()           { C.xdg_wm_base_destroy(wm.p) }

func (s *xdgSurface) GetToplevel() wayland.Toplevel {
	t := &toplevel{p: C.xdg_surface_get_toplevel(s.p)}
	C.shim_xdg_toplevel_add_listener(t.p, s.c.data())
	return t
}

func (s *xdgSurface) AckConfigure(serial uint32) {
	C.xdg_surface_ack_configure(s.p, C.uint32_t(serial))
}

func (s *xdgSurface) Destroy() { C.xdg_surface_destroy(s.p) }

func (t *toplevel) SetTitle(title string) {
	ctitle := C.CString(title)
	defer C.free(unsafe.Pointer(ctitle))
	C.xdg_toplevel_set_title(t.p, ctitle)
}

func (t *toplevel) Destroy() { C.xdg_toplevel_destroy(t.p) }

func (d *decorationManager) GetToplevelDecoration(t wayland.Toplevel) wayland.ToplevelDecoration {
	return &toplevelDecoration{p: C.zxdg_decoration_manager_v1_get_toplevel_decoration(d.p, t.(*toplevel).p)}
}

func (d *decorationManager) Destroy() { C.zxdg_decoration_manager_v1_destroy(d.p) }

func (d *toplevelDecoration) SetMode(mode uint32) {
	C.zxdg_toplevel_decoration_v1_set_mode(d.p, C.uint32_t(mode))
}

func (d *toplevelDecoration) Destroy() { C.zxdg_toplevel_decoration_v1_destroy(d.p) }

func (s *seat) GetKeyboard() wayland.Keyboard {
	k := &keyboard{p: C.wl_seat_get_keyboard(s.p)}
	C.shim_wl_keyboard_add_listener(k.p, s.c.data())
	return k
}

func (s *seat) GetPointer() wayland.Pointer {
	p := &pointer{p: C.wl_seat_get_pointer(s.p)}
	C.shim_wl_pointer_add_listener(p.p, s.c.data())
	return p
}

func (s *seat) Release() {
	if C.shim_proxy_version(unsafe.Pointer(s.p)) >= C.WL_SEAT_RELEASE_SINCE_VERSION {
		C.wl_seat_release(s.p)
		return
	}
	C.wl_seat_destroy(s.p)
}

func (k *keyboard) Release() {
	if C.shim_proxy_version(unsafe.Pointer(k.p)) >= C.WL_KEYBOARD_RELEASE_SINCE_VERSION {
		C.wl_keyboard_release(k.p)
		return
	}
	C.wl_keyboard_destroy(k.p)
}

func (p *pointer) SetCursor(serial uint32, c wayland.Cursor) {
	if c == nil {
		C.wl_pointer_set_cursor(p.p, C.uint32_t(serial), nil, 0, 0)
		return
	}
	cur := c.(*cursor)
	C.wl_pointer_set_cursor(p.p, C.uint32_t(serial), cur.surf, C.int32_t(cur.img.hotspot_x), C.int32_t(cur.img.hotspot_y))
	C.wl_surface_attach(cur.surf, C.wl_cursor_image_get_buffer(cur.img), 0, 0)
	C.wl_surface_damage(cur.surf, 0, 0, C.int32_t(cur.img.width), C.int32_t(cur.img.height))
	C.wl_surface_commit(cur.surf)
}

func (p *pointer) Release() {
	if C.shim_proxy_version(unsafe.Pointer(p.p)) >= C.WL_POINTER_RELEASE_SINCE_VERSION {
		C.wl_pointer_release(p.p)
		return
	}
	C.wl_pointer_destroy(p.p)
}

func (w *pointerWarp) WarpPointer(s wayland.Surface, p wayland.Pointer, x, y float64, serial uint32) {
	C.wp_pointer_warp_v1_warp_pointer(w.p, s.(*surface).p, p.(*pointer).p, toFixed(x), toFixed(y), C.uint32_t(serial))
}

func (w *pointerWarp) Destroy() { C.wp_pointer_warp_v1_destroy(w.p) }

func (s *shm) LoadCursor(c wayland.Compositor, name string, size int) (wayland.Cursor, error) {
	if s.theme == nil {
		s.theme = C.wl_cursor_theme_load(nil, C.int(size), s.p)
		if s.theme == nil {
			return nil, errors.New("wl: wl_cursor_theme_load failed")
		}
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	wc := C.wl_cursor_theme_get_cursor(s.theme, cname)
	if wc == nil {
		return nil, fmt.Errorf("wl: no cursor %q in theme", name)
	}
	img := C.shim_cursor_image(wc)
	if img == nil {
		return nil, fmt.Errorf("wl: cursor %q has no images", name)
	}
	surf := C.wl_compositor_create_surface(c.(*compositor).p)
	if surf == nil {
		return nil, errors.New("wl: wl_compositor_create_surface failed")
	}
	return &cursor{surf: surf, img: img}, nil
}

func (s *shm) Destroy() {
	if s.theme != nil {
		C.wl_cursor_theme_destroy(s.theme)
		s.theme = nil
	}
	C.wl_shm_destroy(s.p)
}

func (c *cursor) Destroy() { C.wl_surface_destroy(c.surf) }

func (w *eglWindow) Ptr() uintptr { return uintptr(unsafe.Pointer(w.p)) }

func (w *eglWindow) Resize(width, height int32) {
	C.wl_egl_window_resize(w.p, C.int(width), C.int(height), 0, 0)
}

func (w *eglWindow) Destroy() { C.wl_egl_window_destroy(w.p) }

func toFixed(v float64) C.wl_fixed_t {
	return C.wl_fixed_t(int32(v * 256))
}

func fromFixed(v C.wl_fixed_t) float64 {
	return float64(v) / 256
}

// errnoOr returns the errno of a failed libwayland call, or EPROTO
// when it left none.
func errnoOr(err error) error {
	if err == nil {
		return unix.EPROTO
	}
	return err
}

func handler(data C.uintptr_t) wayland.Handler {
	return cgo.Handle(data).Value().(*conn).handler
}

//export shim_onRegistryGlobal
func shim_onRegistryGlobal(data C.uintptr_t, name C.uint32_t, iface *C.char, version C.uint32_t) {
	handler(data).Global(uint32(name), C.GoString(iface), uint32(version))
}

//export shim_onRegistryGlobalRemove
func shim_onRegistryGlobalRemove(data C.uintptr_t, name C.uint32_t) {
	handler(data).GlobalRemove(uint32(name))
}

//export shim_onWmBasePing
func shim_onWmBasePing(data C.uintptr_t, serial C.uint32_t) {
	handler(data).Ping(uint32(serial))
}

//export shim_onXdgSurfaceConfigure
func shim_onXdgSurfaceConfigure(data C.uintptr_t, serial C.uint32_t) {
	handler(data).SurfaceConfigure(uint32(serial))
}

//export shim_onToplevelConfigure
func shim_onToplevelConfigure(data C.uintptr_t, width, height C.int32_t) {
	handler(data).ToplevelConfigure(int32(width), int32(height))
}

//export shim_onToplevelClose
func shim_onToplevelClose(data C.uintptr_t) {
	handler(data).ToplevelClose()
}

//export shim_onSeatCapabilities
func shim_onSeatCapabilities(data C.uintptr_t, caps C.uint32_t) {
	handler(data).SeatCapabilities(uint32(caps))
}

//export shim_onKeyboardKeymap
func shim_onKeyboardKeymap(data C.uintptr_t, format C.uint32_t, fd C.int32_t, size C.uint32_t) {
	defer unix.Close(int(fd))
	handler(data).KeyboardKeymap(uint32(format), int(fd), uint32(size))
}

//export shim_onKeyboardKey
func shim_onKeyboardKey(data C.uintptr_t, serial, time, key, state C.uint32_t) {
	handler(data).KeyboardKey(uint32(serial), uint32(time), uint32(key), uint32(state))
}

//export shim_onKeyboardModifiers
func shim_onKeyboardModifiers(data C.uintptr_t, depressed, latched, locked, group C.uint32_t) {
	handler(data).KeyboardModifiers(uint32(depressed), uint32(latched), uint32(locked), uint32(group))
}

//export shim_onPointerEnter
func shim_onPointerEnter(data C.uintptr_t, serial C.uint32_t, x, y C.wl_fixed_t) {
	handler(data).PointerEnter(uint32(serial), fromFixed(x), fromFixed(y))
}

//export shim_onPointerLeave
func shim_onPointerLeave(data C.uintptr_t, serial C.uint32_t) {
	handler(data).PointerLeave(uint32(serial))
}

//export shim_onPointerMotion
func shim_onPointerMotion(data C.uintptr_t, time C.uint32_t, x, y C.wl_fixed_t) {
	handler(data).PointerMotion(uint32(time), fromFixed(x), fromFixed(y))
}

//export shim_onPointerButton
func shim_onPointerButton(data C.uintptr_t, serial, time, button, state C.uint32_t) {
	handler(data).PointerButton(uint32(serial), uint32(time), uint32(button), uint32(state))
}
