// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestFromWire(t *testing.T) {
	for _, tc := range []struct {
		name string
		code uint32
		want Button
	}{
		{"BTN_LEFT", 0x110, 1},
		{"BTN_RIGHT", 0x111, 2},
		{"BTN_MIDDLE", 0x112, 3},
		{"BTN_SIDE", 0x113, 4},
		{"BTN_EXTRA", 0x114, 5},
		{"offset", WireOffset, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromWire(tc.code); got != tc.want {
				t.Errorf("FromWire(%#x) = %d; want %d", tc.code, got, tc.want)
			}
		})
	}
}

func TestFromWireIsOffset(t *testing.T) {
	for b := uint32(272); b < 300; b++ {
		if got, want := FromWire(b), Button(b-271); got != want {
			t.Fatalf("FromWire(%d) = %d; want %d", b, got, want)
		}
	}
}

func TestStateFromWire(t *testing.T) {
	for _, tc := range []struct {
		wire uint32
		want State
		ok   bool
	}{
		{0, Released, true},
		{1, Pressed, true},
		{2, 0, false},
	} {
		got, ok := StateFromWire(tc.wire)
		if got != tc.want || ok != tc.ok {
			t.Errorf("StateFromWire(%d) = %v, %v; want %v, %v", tc.wire, got, ok, tc.want, tc.ok)
		}
	}
}

func TestButtonsString(t *testing.T) {
	for _, tc := range []struct {
		b   Buttons
		res string
	}{
		{0, ""},
		{ButtonLeft.Mask(), "ButtonLeft"},
		{ButtonLeft.Mask() | ButtonRight.Mask(), "ButtonLeft|ButtonRight"},
		{ButtonWheelDown.Mask(), "ButtonWheelDown"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.b.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestMask(t *testing.T) {
	if got := Button(0).Mask(); got != 0 {
		t.Errorf("Button(0).Mask() = %d; want 0", got)
	}
	if got := Button(9).Mask(); got != 0 {
		t.Errorf("Button(9).Mask() = %d; want 0", got)
	}
	if got := ButtonMiddle.Mask(); got != 2 {
		t.Errorf("ButtonMiddle.Mask() = %d; want 2", got)
	}
}
