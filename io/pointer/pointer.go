// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements the legacy mouse button numbering and its
// mapping from the wire codes reported by Wayland and evdev.
package pointer

import (
	"strconv"
	"strings"
)

// Button is a legacy mouse button number.
type Button uint8

// Buttons is a set of mouse buttons, as returned by the mouse state
// query. Button n is bit n-1.
type Buttons uint8

// State is the state of a button during an event.
type State uint8

const (
	ButtonLeft      Button = 1
	ButtonMiddle    Button = 2
	ButtonRight     Button = 3
	ButtonWheelUp   Button = 4
	ButtonWheelDown Button = 5
)

const (
	// Released is the state of a button that has been released.
	Released State = iota
	// Pressed is the state of a pressed button.
	Pressed
)

// WireOffset is subtracted from a wire button code (BTN_LEFT is
// 0x110) to produce the legacy button number.
const WireOffset = 271

// FromWire converts a wire button code. Codes below WireOffset wrap
// and are passed through unchecked.
func FromWire(code uint32) Button {
	return Button(code - WireOffset)
}

// StateFromWire converts a wl_pointer button state. The second result
// is false for states other than released and pressed.
func StateFromWire(state uint32) (State, bool) {
	switch state {
	case 0:
		return Released, true
	case 1:
		return Pressed, true
	default:
		return 0, false
	}
}

// Mask returns the set containing only b. Buttons above 8 have no
// representation and yield the empty set.
func (b Button) Mask() Buttons {
	if b == 0 || b > 8 {
		return 0
	}
	return Buttons(1 << (b - 1))
}

// Contain reports whether the set b contains
// all of buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "ButtonLeft"
	case ButtonMiddle:
		return "ButtonMiddle"
	case ButtonRight:
		return "ButtonRight"
	case ButtonWheelUp:
		return "ButtonWheelUp"
	case ButtonWheelDown:
		return "ButtonWheelDown"
	default:
		return "Button(" + strconv.Itoa(int(b)) + ")"
	}
}

func (b Buttons) String() string {
	var strs []string
	for i := Button(1); i <= 8; i++ {
		if b.Contain(i.Mask()) {
			strs = append(strs, i.String())
		}
	}
	return strings.Join(strs, "|")
}

func (s State) String() string {
	switch s {
	case Released:
		return "Released"
	case Pressed:
		return "Pressed"
	default:
		panic("invalid State")
	}
}
