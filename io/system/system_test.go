// SPDX-License-Identifier: Unlicense OR MIT

package system

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	var (
		r  Rect
		pf PixelFormat
		s  Surface
		vi VideoInfo
	)
	for _, tc := range []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"sizeof(Rect)", unsafe.Sizeof(r), 8},
		{"sizeof(PixelFormat)", unsafe.Sizeof(pf), 48},
		{"PixelFormat.BitsPerPixel", unsafe.Offsetof(pf.BitsPerPixel), 8},
		{"PixelFormat.RMask", unsafe.Offsetof(pf.RMask), 20},
		{"PixelFormat.ColorKey", unsafe.Offsetof(pf.ColorKey), 36},
		{"PixelFormat.Alpha", unsafe.Offsetof(pf.Alpha), 40},
		{"sizeof(Surface)", unsafe.Sizeof(s), 88},
		{"Surface.Format", unsafe.Offsetof(s.Format), 8},
		{"Surface.W", unsafe.Offsetof(s.W), 16},
		{"Surface.Pitch", unsafe.Offsetof(s.Pitch), 24},
		{"Surface.Pixels", unsafe.Offsetof(s.Pixels), 32},
		{"Surface.ClipRect", unsafe.Offsetof(s.ClipRect), 56},
		{"Surface.Map", unsafe.Offsetof(s.Map), 72},
		{"Surface.RefCount", unsafe.Offsetof(s.RefCount), 84},
		{"sizeof(VideoInfo)", unsafe.Sizeof(vi), 24},
		{"VideoInfo.VideoMem", unsafe.Offsetof(vi.VideoMem), 4},
		{"VideoInfo.Format", unsafe.Offsetof(vi.Format), 8},
		{"VideoInfo.CurrentH", unsafe.Offsetof(vi.CurrentH), 20},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestSurfaceResize(t *testing.T) {
	s := NewSurface(640, 480, OpenGL)
	assert.Equal(t, Rect{W: 640, H: 480}, s.ClipRect)
	assert.Equal(t, uint16(2560), s.Pitch)
	assert.Equal(t, OpenGL, s.Flags)

	s.Resize(800, 600)
	assert.Equal(t, int32(800), s.W)
	assert.Equal(t, int32(600), s.H)
	assert.Equal(t, Rect{W: 800, H: 600}, s.ClipRect)
}

func TestGLAttributes(t *testing.T) {
	var g GLAttributes
	_, ok := g.Get(GLDepthSize)
	assert.False(t, ok)

	assert.Equal(t, int32(0), g.Set(GLDepthSize, 24))
	v, ok := g.Get(GLDepthSize)
	assert.True(t, ok)
	assert.Equal(t, int32(24), v)

	assert.Equal(t, int32(-1), g.Set(-1, 1))
	assert.Equal(t, int32(-1), g.Set(32, 1))
	_, ok = g.Get(32)
	assert.False(t, ok)
}

func TestStageString(t *testing.T) {
	for s, want := range map[Stage]string{
		StageCreated:     "StageCreated",
		StageInitialized: "StageInitialized",
		StageRunning:     "StageRunning",
		StageQuitting:    "StageQuitting",
		StageRestored:    "StageRestored",
	} {
		assert.Equal(t, want, s.String())
	}
}
