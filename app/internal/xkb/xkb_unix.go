// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux

// Package xkb implements a Go interface for the X Keyboard Extension library.
package xkb

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"sdlshim.org/io/key"
)

/*
#cgo LDFLAGS: -lxkbcommon

#include <stdlib.h>
#include <xkbcommon/xkbcommon.h>
*/
import "C"

// FormatTextV1 is the only keymap format accepted from a compositor.
const FormatTextV1 = 1

// Names selects a keymap by rules, model, layout, variant and
// options. Empty fields are filled from the XKB_DEFAULT_* environment
// variables by libxkbcommon.
type Names struct {
	Rules, Model, Layout, Variant, Options string
}

// Context is a compiled keymap and its state.
type Context struct {
	ctx    *C.struct_xkb_context
	keyMap *C.struct_xkb_keymap
	state  *C.struct_xkb_state
	syms   []key.Sym
}

var _ key.Keymap = (*Context)(nil)

var modNames = []struct {
	name []byte
	mod  key.Mod
}{
	{[]byte("Shift\x00"), key.ModLShift},
	{[]byte("Control\x00"), key.ModLCtrl},
	{[]byte("Mod1\x00"), key.ModLAlt},
	{[]byte("Mod4\x00"), key.ModLMeta},
	{[]byte("Lock\x00"), key.ModCaps},
	{[]byte("Mod2\x00"), key.ModNum},
}

func newContext() (*Context, error) {
	ctx := &Context{
		ctx: C.xkb_context_new(C.XKB_CONTEXT_NO_FLAGS),
	}
	if ctx.ctx == nil {
		return nil, errors.New("xkb: xkb_context_new failed")
	}
	return ctx, nil
}

func (x *Context) newState() error {
	x.state = C.xkb_state_new(x.keyMap)
	if x.state == nil {
		x.Destroy()
		return errors.New("xkb: xkb_state_new failed")
	}
	return nil
}

// NewFromFD compiles the keymap of the given format shared through
// fd. The mapping is copied and unmapped before returning.
func NewFromFD(format uint32, fd int, size int) (*Context, error) {
	if format != FormatTextV1 {
		return nil, fmt.Errorf("xkb: unsupported keymap format %d", format)
	}
	if size <= 0 {
		return nil, errors.New("xkb: empty keymap")
	}
	mapData, err := unix.Mmap(fd, 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("xkb: mmap of keymap failed: %w", err)
	}
	buf := make([]byte, len(mapData))
	copy(buf, mapData)
	unix.Munmap(mapData)
	return NewFromBuffer(buf)
}

// NewFromBuffer compiles a text keymap. A trailing NUL is ignored.
func NewFromBuffer(buf []byte) (*Context, error) {
	for len(buf) > 0 && buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	if len(buf) == 0 {
		return nil, errors.New("xkb: empty keymap")
	}
	ctx, err := newContext()
	if err != nil {
		return nil, err
	}
	cbuf := C.CBytes(buf)
	defer C.free(cbuf)
	ctx.keyMap = C.xkb_keymap_new_from_buffer(ctx.ctx, (*C.char)(cbuf), C.size_t(len(buf)), C.XKB_KEYMAP_FORMAT_TEXT_V1, C.XKB_KEYMAP_COMPILE_NO_FLAGS)
	if ctx.keyMap == nil {
		ctx.Destroy()
		return nil, errors.New("xkb: xkb_keymap_new_from_buffer failed")
	}
	return ctx, ctx.newState()
}

// NewFromNames compiles the keymap described by n.
func NewFromNames(n Names) (*Context, error) {
	ctx, err := newContext()
	if err != nil {
		return nil, err
	}
	var rmlvo C.struct_xkb_rule_names
	fields := []struct {
		dst **C.char
		val string
	}{
		{&rmlvo.rules, n.Rules},
		{&rmlvo.model, n.Model},
		{&rmlvo.layout, n.Layout},
		{&rmlvo.variant, n.Variant},
		{&rmlvo.options, n.Options},
	}
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		cs := C.CString(f.val)
		defer C.free(unsafe.Pointer(cs))
		*f.dst = cs
	}
	ctx.keyMap = C.xkb_keymap_new_from_names(ctx.ctx, &rmlvo, C.XKB_KEYMAP_COMPILE_NO_FLAGS)
	if ctx.keyMap == nil {
		ctx.Destroy()
		return nil, fmt.Errorf("xkb: xkb_keymap_new_from_names failed for %+v", n)
	}
	return ctx, ctx.newState()
}

func (x *Context) Destroy() {
	if x.state != nil {
		C.xkb_state_unref(x.state)
		x.state = nil
	}
	if x.keyMap != nil {
		C.xkb_keymap_unref(x.keyMap)
		x.keyMap = nil
	}
	if x.ctx != nil {
		C.xkb_context_unref(x.ctx)
		x.ctx = nil
	}
}

func (x *Context) LayoutForKey(kc uint32) uint32 {
	return uint32(C.xkb_state_key_get_layout(x.state, C.xkb_keycode_t(kc)))
}

func (x *Context) NumLevels(kc, layout uint32) uint32 {
	return uint32(C.xkb_keymap_num_levels_for_key(x.keyMap, C.xkb_keycode_t(kc), C.xkb_layout_index_t(layout)))
}

// SymsByLevel returns the keysyms of the key. The slice is reused by
// the next call.
func (x *Context) SymsByLevel(kc, layout, level uint32) []key.Sym {
	var syms *C.xkb_keysym_t
	n := C.xkb_keymap_key_get_syms_by_level(x.keyMap, C.xkb_keycode_t(kc), C.xkb_layout_index_t(layout), C.xkb_level_index_t(level), &syms)
	x.syms = x.syms[:0]
	if n <= 0 || syms == nil {
		return x.syms
	}
	for _, s := range unsafe.Slice(syms, int(n)) {
		x.syms = append(x.syms, key.Sym(s))
	}
	return x.syms
}

// Modifiers reports the effective modifiers as left-hand legacy flags.
func (x *Context) Modifiers() key.Mod {
	var m key.Mod
	for _, n := range modNames {
		if C.xkb_state_mod_name_is_active(x.state, (*C.char)(unsafe.Pointer(&n.name[0])), C.XKB_STATE_MODS_EFFECTIVE) == 1 {
			m |= n.mod
		}
	}
	return m
}

func (x *Context) UpdateMask(depressed, latched, locked, group uint32) {
	xkbGrp := C.xkb_layout_index_t(group)
	C.xkb_state_update_mask(x.state, C.xkb_mod_mask_t(depressed), C.xkb_mod_mask_t(latched), C.xkb_mod_mask_t(locked), xkbGrp, xkbGrp, xkbGrp)
}

// UpdateKey feeds a key transition of the XKB key code kc into the
// modifier state, for sources without a modifiers event.
func (x *Context) UpdateKey(kc uint32, s key.State) {
	dir := C.enum_xkb_key_direction(C.XKB_KEY_UP)
	if s == key.Pressed {
		dir = C.XKB_KEY_DOWN
	}
	C.xkb_state_update_key(x.state, C.xkb_keycode_t(kc), dir)
}
