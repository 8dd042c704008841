// SPDX-License-Identifier: Unlicense OR MIT

// Package libinput binds the libinput udev backend with restricted
// device open and close callbacks.
package libinput

import "golang.org/x/sys/unix"

// AccessMode returns the open flags used for a restricted open: the
// access mode of flags plus O_CLOEXEC and O_NONBLOCK when requested.
// Every other flag is dropped.
func AccessMode(flags int) int {
	return flags & (unix.O_ACCMODE | unix.O_CLOEXEC | unix.O_NONBLOCK)
}

// KeyState is the state of a keyboard key event.
type KeyState uint32

const (
	KeyReleased KeyState = 0
	KeyPressed  KeyState = 1
)

// KeyEvent is a keyboard key transition. Key is an evdev key code.
type KeyEvent struct {
	Key   uint32
	State KeyState
}
