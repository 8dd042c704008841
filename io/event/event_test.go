// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdlshim.org/io/key"
	"sdlshim.org/io/pointer"
)

func TestLayout(t *testing.T) {
	var (
		ks Keysym
		kb KeyboardEvent
		mm MouseMotionEvent
		mb MouseButtonEvent
		ev Event
	)
	for _, tc := range []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"sizeof(Keysym)", unsafe.Sizeof(ks), 16},
		{"Keysym.Sym", unsafe.Offsetof(ks.Sym), 4},
		{"Keysym.Mod", unsafe.Offsetof(ks.Mod), 8},
		{"Keysym.Unicode", unsafe.Offsetof(ks.Unicode), 12},
		{"sizeof(KeyboardEvent)", unsafe.Sizeof(kb), 20},
		{"KeyboardEvent.State", unsafe.Offsetof(kb.State), 2},
		{"KeyboardEvent.Keysym", unsafe.Offsetof(kb.Keysym), 4},
		{"sizeof(MouseMotionEvent)", unsafe.Sizeof(mm), 12},
		{"MouseMotionEvent.X", unsafe.Offsetof(mm.X), 4},
		{"MouseMotionEvent.Y", unsafe.Offsetof(mm.Y), 6},
		{"MouseMotionEvent.XRel", unsafe.Offsetof(mm.XRel), 8},
		{"MouseMotionEvent.YRel", unsafe.Offsetof(mm.YRel), 10},
		{"sizeof(MouseButtonEvent)", unsafe.Sizeof(mb), 8},
		{"MouseButtonEvent.Button", unsafe.Offsetof(mb.Button), 2},
		{"MouseButtonEvent.X", unsafe.Offsetof(mb.X), 4},
		{"sizeof(Event)", unsafe.Sizeof(ev), 24},
		{"alignof(Event)", unsafe.Alignof(ev), 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestEventUnion(t *testing.T) {
	var e Event
	e.SetMotion(MouseMotionEvent{Type: MouseMotion, X: 10, Y: 20, XRel: -3, YRel: 4})
	require.Equal(t, MouseMotion, e.Type())
	m := e.Motion()
	assert.Equal(t, uint16(10), m.X)
	assert.Equal(t, int16(-3), m.XRel)

	e.SetKey(KeyEvent(key.Pressed, key.CodeEscape, key.ModLCtrl))
	require.Equal(t, KeyDown, e.Type())
	k := e.Key()
	assert.Equal(t, key.CodeEscape, k.Keysym.Sym)
	assert.Equal(t, key.ModLCtrl, k.Keysym.Mod)
	assert.Equal(t, key.Pressed, k.State)

	e.SetButton(MouseButtonEvent{Type: MouseButtonUp, Button: pointer.ButtonLeft, State: pointer.Released})
	assert.Equal(t, MouseButtonUp, e.Type())
	assert.Equal(t, pointer.ButtonLeft, e.Button().Button)

	e.SetQuit()
	assert.Equal(t, Quit, e.Type())
	// Setting a record clears the previous contents.
	assert.Equal(t, Event{raw: [3]uint64{uint64(Quit), 0, 0}}, e)
}

func TestKeyEventType(t *testing.T) {
	assert.Equal(t, KeyDown, KeyEvent(key.Pressed, key.CodeA, 0).Type)
	assert.Equal(t, KeyUp, KeyEvent(key.Released, key.CodeA, 0).Type)
}

func TestQueueOrder(t *testing.T) {
	for _, tc := range []struct {
		order Order
		want  []int
	}{
		{LIFO, []int{3, 2, 1}},
		{FIFO, []int{1, 2, 3}},
	} {
		t.Run(tc.order.String(), func(t *testing.T) {
			q := NewQueue[int](tc.order)
			q.Push(1, 2)
			q.Push(3)
			var got []int
			for {
				v, ok := q.Pop()
				if !ok {
					break
				}
				got = append(got, v)
			}
			assert.Equal(t, tc.want, got)
			assert.Zero(t, q.Len())
		})
	}
}

func TestQueueInterleaved(t *testing.T) {
	q := NewQueue[string](FIFO)
	q.Push("a", "b")
	v, _ := q.Pop()
	assert.Equal(t, "a", v)
	q.Push("c")
	assert.Equal(t, 2, q.Len())
	v, _ = q.Pop()
	assert.Equal(t, "b", v)
	v, _ = q.Pop()
	assert.Equal(t, "c", v)
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestParseOrder(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Order
		err  bool
	}{
		{"", LIFO, false},
		{"lifo", LIFO, false},
		{"FIFO", FIFO, false},
		{"random", 0, true},
	} {
		got, err := ParseOrder(tc.in)
		if tc.err {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
