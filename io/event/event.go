// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the legacy event records filled by the
// polling call, with the exact field layout the hosted application
// was compiled against.
package event

import (
	"unsafe"

	"sdlshim.org/io/key"
	"sdlshim.org/io/pointer"
)

// Type identifies the kind of an event record.
type Type uint8

const (
	NoEvent         Type = 0
	ActiveEvent     Type = 1
	KeyDown         Type = 2
	KeyUp           Type = 3
	MouseMotion     Type = 4
	MouseButtonDown Type = 5
	MouseButtonUp   Type = 6
	Quit            Type = 12
)

// Keysym describes a key in a keyboard event.
type Keysym struct {
	Scancode uint8
	Sym      key.Code
	Mod      key.Mod
	Unicode  uint16
}

// KeyboardEvent is filled for KeyDown and KeyUp.
type KeyboardEvent struct {
	Type   Type
	Which  uint8
	State  key.State
	Keysym Keysym
}

// MouseMotionEvent is filled for MouseMotion. X and Y are absolute,
// XRel and YRel are relative to the previous motion.
type MouseMotionEvent struct {
	Type  Type
	Which uint8
	State pointer.Buttons
	X, Y  uint16
	XRel  int16
	YRel  int16
}

// MouseButtonEvent is filled for MouseButtonDown and MouseButtonUp.
type MouseButtonEvent struct {
	Type   Type
	Which  uint8
	Button pointer.Button
	State  pointer.State
	X, Y   uint16
}

// QuitEvent is filled for Quit.
type QuitEvent struct {
	Type Type
}

// Event is the union of all event records. Its size and alignment
// match the largest legacy member, a user event carrying two
// pointers.
type Event struct {
	raw [3]uint64
}

// Type returns the type shared by all members of the union.
func (e *Event) Type() Type {
	return *(*Type)(unsafe.Pointer(e))
}

func (e *Event) SetKey(k KeyboardEvent) {
	*e = Event{}
	*(*KeyboardEvent)(unsafe.Pointer(e)) = k
}

func (e *Event) Key() KeyboardEvent {
	return *(*KeyboardEvent)(unsafe.Pointer(e))
}

func (e *Event) SetMotion(m MouseMotionEvent) {
	*e = Event{}
	*(*MouseMotionEvent)(unsafe.Pointer(e)) = m
}

func (e *Event) Motion() MouseMotionEvent {
	return *(*MouseMotionEvent)(unsafe.Pointer(e))
}

func (e *Event) SetButton(b MouseButtonEvent) {
	*e = Event{}
	*(*MouseButtonEvent)(unsafe.Pointer(e)) = b
}

func (e *Event) Button() MouseButtonEvent {
	return *(*MouseButtonEvent)(unsafe.Pointer(e))
}

func (e *Event) SetQuit() {
	*e = Event{}
	*(*QuitEvent)(unsafe.Pointer(e)) = QuitEvent{Type: Quit}
}

// KeyEvent builds the record for a translated key event.
func KeyEvent(s key.State, c key.Code, mods key.Mod) KeyboardEvent {
	t := KeyUp
	if s == key.Pressed {
		t = KeyDown
	}
	return KeyboardEvent{
		Type:  t,
		State: s,
		Keysym: Keysym{
			Sym: c,
			Mod: mods,
		},
	}
}

func (t Type) String() string {
	switch t {
	case NoEvent:
		return "NoEvent"
	case ActiveEvent:
		return "ActiveEvent"
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case MouseMotion:
		return "MouseMotion"
	case MouseButtonDown:
		return "MouseButtonDown"
	case MouseButtonUp:
		return "MouseButtonUp"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}
