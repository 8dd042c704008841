// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux

// Package gbm binds the generic buffer manager used to allocate
// scanout surfaces for EGL on a DRM device.
package gbm

/*
#cgo pkg-config: gbm

#include <gbm.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

const (
	FormatXRGB8888 = uint32(C.GBM_FORMAT_XRGB8888)

	UseScanout   = uint32(C.GBM_BO_USE_SCANOUT)
	UseRendering = uint32(C.GBM_BO_USE_RENDERING)
)

// Device is a buffer allocator on a DRM file descriptor. The
// descriptor stays owned by the caller.
type Device struct {
	dev *C.struct_gbm_device
}

// Surface is a queue of buffers an EGL window surface renders into.
type Surface struct {
	surf          *C.struct_gbm_surface
	width, height uint32
}

// BO is a buffer object locked from a surface.
type BO struct {
	bo *C.struct_gbm_bo
}

func NewDevice(fd uintptr) (*Device, error) {
	dev := C.gbm_create_device(C.int(fd))
	if dev == nil {
		return nil, errors.New("gbm: gbm_create_device failed")
	}
	return &Device{dev: dev}, nil
}

// Ptr returns the native display handle for EGL.
func (d *Device) Ptr() uintptr {
	return uintptr(unsafe.Pointer(d.dev))
}

func (d *Device) Destroy() {
	if d.dev != nil {
		C.gbm_device_destroy(d.dev)
		d.dev = nil
	}
}

func (d *Device) CreateSurface(width, height, format, flags uint32) (*Surface, error) {
	s := C.gbm_surface_create(d.dev, C.uint32_t(width), C.uint32_t(height), C.uint32_t(format), C.uint32_t(flags))
	if s == nil {
		return nil, fmt.Errorf("gbm: gbm_surface_create %dx%d failed", width, height)
	}
	return &Surface{surf: s, width: width, height: height}, nil
}

// Ptr returns the native window handle for EGL.
func (s *Surface) Ptr() uintptr {
	return uintptr(unsafe.Pointer(s.surf))
}

// LockFrontBuffer locks the buffer of the last swap for scanout.
func (s *Surface) LockFrontBuffer() (*BO, error) {
	bo := C.gbm_surface_lock_front_buffer(s.surf)
	if bo == nil {
		return nil, errors.New("gbm: gbm_surface_lock_front_buffer failed")
	}
	return &BO{bo: bo}, nil
}

// ReleaseBuffer returns a locked buffer to the surface. A nil bo is
// ignored.
func (s *Surface) ReleaseBuffer(bo *BO) {
	if bo == nil || bo.bo == nil {
		return
	}
	C.gbm_surface_release_buffer(s.surf, bo.bo)
}

func (s *Surface) Destroy() {
	if s.surf != nil {
		C.gbm_surface_destroy(s.surf)
		s.surf = nil
	}
}

// Handle returns the buffer's kernel handle, unique per buffer on the
// device.
func (b *BO) Handle() uint64 {
	h := C.gbm_bo_get_handle(b.bo)
	return uint64(*(*C.uint64_t)(unsafe.Pointer(&h)))
}

func (b *BO) Width() uint32  { return uint32(C.gbm_bo_get_width(b.bo)) }
func (b *BO) Height() uint32 { return uint32(C.gbm_bo_get_height(b.bo)) }
func (b *BO) Stride() uint32 { return uint32(C.gbm_bo_get_stride(b.bo)) }
func (b *BO) BPP() uint32    { return uint32(C.gbm_bo_get_bpp(b.bo)) }
