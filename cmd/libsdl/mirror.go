// SPDX-License-Identifier: Unlicense OR MIT

package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"sdlshim.org/io/key"
	"sdlshim.org/io/system"
)

// cbox is a T in C memory, so that the host program may keep a
// pointer to it. It is allocated on first use and never freed.
type cbox[T any] struct {
	p *T
}

func (b *cbox[T]) ptr() *T {
	if b.p == nil {
		var zero T
		b.p = (*T)(C.calloc(1, C.size_t(unsafe.Sizeof(zero))))
	}
	return b.p
}

func (b *cbox[T]) set(v T) *T {
	p := b.ptr()
	*p = v
	return p
}

// mirrors are the records handed to the host program. They are
// refreshed from the window on every call returning them, and keys
// also after every call that dispatches input.
type mirrors struct {
	keys    cbox[key.Table]
	format  cbox[system.PixelFormat]
	surface cbox[system.Surface]
	info    cbox[system.VideoInfo]
	err     *C.char
}

var mem mirrors

func (m *mirrors) pixelFormat() uintptr {
	return uintptr(unsafe.Pointer(m.format.set(system.XRGB8888)))
}

func (m *mirrors) setSurface(s *system.Surface) unsafe.Pointer {
	v := *s
	v.Format = m.pixelFormat()
	return unsafe.Pointer(m.surface.set(v))
}

func (m *mirrors) setVideoInfo(i *system.VideoInfo) unsafe.Pointer {
	v := *i
	v.Format = m.pixelFormat()
	return unsafe.Pointer(m.info.set(v))
}

func (m *mirrors) setError(s string) *C.char {
	if m.err != nil {
		C.free(unsafe.Pointer(m.err))
	}
	m.err = C.CString(s)
	return m.err
}
