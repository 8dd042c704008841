// SPDX-License-Identifier: Unlicense OR MIT

package kms

import (
	"sdlshim.org/internal/drm"
	"sdlshim.org/io/key"
)

// Device is an open mode-setting device. *drm.Card implements it.
type Device interface {
	Fd() uintptr
	SetClientCap(capability, value uint64) error
	Resources() (*drm.Resources, error)
	Connector(id uint32) (*drm.Connector, error)
	Encoder(id uint32) (*drm.Encoder, error)
	PlaneIDs() ([]uint32, error)
	ObjectProperties(id, objType uint32) ([]drm.PropertyValue, error)
	Property(id uint32) (*drm.Property, error)
	AddFramebuffer(fb drm.FB) (uint32, error)
	RemoveFramebuffer(id uint32) error
	SetCrtc(crtc, fb uint32, connectors []uint32, mode *drm.Mode) error
	WaitVBlank(pipe int, seq uint32) error
	Close() error
}

// Allocator allocates scanout buffers on a Device.
type Allocator interface {
	// Ptr returns the native device for EGL.
	Ptr() uintptr
	CreateSurface(width, height, format, flags uint32) (BufferSurface, error)
	Destroy()
}

// BufferSurface is a chain of buffers rendered by EGL.
type BufferSurface interface {
	// Ptr returns the native surface for EGL.
	Ptr() uintptr
	// LockFrontBuffer locks the buffer of the last swap.
	LockFrontBuffer() (Buffer, error)
	ReleaseBuffer(b Buffer)
	Destroy()
}

// Buffer is a locked buffer object.
type Buffer interface {
	Handle() uint64
	Width() uint32
	Height() uint32
	Stride() uint32
	BPP() uint32
}

// KeyEvent is a keyboard transition read from a Seat. Key is an
// evdev code.
type KeyEvent struct {
	Key   uint32
	State key.State
}

// Seat is the input device set of a session.
type Seat interface {
	// Fd returns the descriptor to poll for pending events.
	Fd() int
	// Dispatch reads the pending events and returns the keyboard
	// transitions.
	Dispatch() ([]KeyEvent, error)
	Destroy()
}

// Keymap is a keyboard layout with a state tracked from raw key
// transitions.
type Keymap interface {
	key.Keymap
	// UpdateKey records the transition of the XKB key code kc.
	UpdateKey(kc uint32, s key.State)
	Destroy()
}

// GL is a graphics context bound to the scanout surface.
type GL interface {
	SwapBuffers() error
	ProcAddress(name string) uintptr
	Release()
}

// Terminal is the controlling terminal of the session.
type Terminal interface {
	// MakeRaw disables line editing and echo.
	MakeRaw() error
	// Restore discards pending terminal I/O and restores the state
	// saved by MakeRaw.
	Restore() error
}
