// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sdlshim.org/io/event"
	"sdlshim.org/io/key"
	"sdlshim.org/io/system"
)

// Window is the capability set shared by every backend.
type Window interface {
	// Init completes the bring-up of the window. It returns 0 on
	// success.
	Init(flags uint32) int32
	// Quit restores the state altered by the window.
	Quit()
	Stage() system.Stage
	// Handles returns the native display and drawable.
	Handles() (display, drawable uintptr)

	// KeyState returns the key table indexed by key.Code. The table
	// is updated in place by PollEvent.
	KeyState() *key.Table
	ModState() key.Mod
	// MouseState returns the last known pointer position and the
	// button mask.
	MouseState() (x, y int32, buttons uint8)

	GLGetAttribute(attr system.GLAttr) (int32, bool)
	GLSetAttribute(attr system.GLAttr, v int32) int32
	GLProcAddress(name string) uintptr
	// GLSwapBuffers presents the frame. It panics if presentation
	// fails.
	GLSwapBuffers()

	// PollEvent fills ev with the next pending event and reports
	// whether there was one.
	PollEvent(ev *event.Event) bool

	// SetVideoMode returns a placeholder surface of the window size.
	SetVideoMode(width, height, bpp int32, flags uint32) *system.Surface
	VideoInfo() *system.VideoInfo
	ShowCursor(toggle int32) int32
	WarpMouse(x, y uint16)
	SetCaption(title, icon string)
	// Delay waits ms milliseconds while processing input.
	Delay(ms uint32)
	EnableKeyRepeat(delay, interval int32) int32
	Error() string

	// Close releases every platform resource.
	Close()
}
