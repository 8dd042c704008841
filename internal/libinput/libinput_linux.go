// SPDX-License-Identifier: Unlicense OR MIT

package libinput

/*
#cgo pkg-config: libinput libudev

#include <stdlib.h>
#include <libinput.h>
#include <libudev.h>

extern const struct libinput_interface shim_libinput_interface;
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Context is a libinput context on a udev seat.
type Context struct {
	udev *C.struct_udev
	li   *C.struct_libinput
}

// NewUdev creates a context and assigns it to seat.
func NewUdev(seat string) (*Context, error) {
	udev := C.udev_new()
	if udev == nil {
		return nil, errors.New("libinput: udev_new failed")
	}
	li := C.libinput_udev_create_context(&C.shim_libinput_interface, nil, udev)
	if li == nil {
		C.udev_unref(udev)
		return nil, errors.New("libinput: libinput_udev_create_context failed")
	}
	c := &Context{udev: udev, li: li}
	cseat := C.CString(seat)
	defer C.free(unsafe.Pointer(cseat))
	if C.libinput_udev_assign_seat(li, cseat) != 0 {
		c.Destroy()
		return nil, fmt.Errorf("libinput: failed to assign seat %q", seat)
	}
	return c, nil
}

// Fd returns the descriptor to poll for pending events.
func (c *Context) Fd() int {
	return int(C.libinput_get_fd(c.li))
}

// Dispatch reads pending device events and returns the keyboard key
// transitions among them, in order. Other events are discarded.
func (c *Context) Dispatch() ([]KeyEvent, error) {
	if r := C.libinput_dispatch(c.li); r != 0 {
		return nil, fmt.Errorf("libinput: dispatch: %w", unix.Errno(-r))
	}
	var keys []KeyEvent
	for {
		ev := C.libinput_get_event(c.li)
		if ev == nil {
			return keys, nil
		}
		if C.libinput_event_get_type(ev) == C.LIBINPUT_EVENT_KEYBOARD_KEY {
			kev := C.libinput_event_get_keyboard_event(ev)
			keys = append(keys, KeyEvent{
				Key:   uint32(C.libinput_event_keyboard_get_key(kev)),
				State: KeyState(C.libinput_event_keyboard_get_key_state(kev)),
			})
		}
		C.libinput_event_destroy(ev)
	}
}

func (c *Context) Destroy() {
	if c.li != nil {
		C.libinput_unref(c.li)
		c.li = nil
	}
	if c.udev != nil {
		C.udev_unref(c.udev)
		c.udev = nil
	}
}

//export shim_libinputOpen
func shim_libinputOpen(path *C.char, flags C.int) C.int {
	fd, err := unix.Open(C.GoString(path), AccessMode(int(flags)), 0)
	if err != nil {
		var errno unix.Errno
		if !errors.As(err, &errno) {
			errno = unix.EIO
		}
		return -C.int(errno)
	}
	return C.int(fd)
}

//export shim_libinputClose
func shim_libinputClose(fd C.int) {
	unix.Close(int(fd))
}
