// SPDX-License-Identifier: Unlicense OR MIT

package system

// Surface flags.
const (
	HWSurface  uint32 = 0x00000001
	OpenGL     uint32 = 0x00000002
	Fullscreen uint32 = 0x80000000
)

// VideoInfo flags. The legacy record packs them in a bit field at the
// start of the structure.
const (
	HWAvailable uint32 = 1 << 0
	WMAvailable uint32 = 1 << 1
	BlitHW      uint32 = 1 << 9
	BlitHWCC    uint32 = 1 << 10
	BlitHWA     uint32 = 1 << 11
	BlitSW      uint32 = 1 << 12
	BlitSWCC    uint32 = 1 << 13
	BlitSWA     uint32 = 1 << 14
	BlitFill    uint32 = 1 << 15
)

// Rect is a clipping rectangle.
type Rect struct {
	X, Y int16
	W, H uint16
}

// PixelFormat describes the pixel layout of a surface. Palette is a C
// address owned by the boundary layer.
type PixelFormat struct {
	Palette       uintptr
	BitsPerPixel  uint8
	BytesPerPixel uint8
	RLoss         uint8
	GLoss         uint8
	BLoss         uint8
	ALoss         uint8
	RShift        uint8
	GShift        uint8
	BShift        uint8
	AShift        uint8
	RMask         uint32
	GMask         uint32
	BMask         uint32
	AMask         uint32
	ColorKey      uint32
	Alpha         uint8
}

// Surface is the video-mode descriptor returned by SetVideoMode. The
// backends are GL drawable based: Pixels is always zero and the
// record only reports the mode. Address fields are owned by the
// boundary layer.
type Surface struct {
	Flags         uint32
	Format        uintptr
	W, H          int32
	Pitch         uint16
	Pixels        uintptr
	Offset        int32
	HWData        uintptr
	ClipRect      Rect
	Unused1       uint32
	Locked        uint32
	Map           uintptr
	FormatVersion uint32
	RefCount      int32
}

// VideoInfo describes the video hardware.
type VideoInfo struct {
	Flags    uint32
	VideoMem uint32
	Format   uintptr
	CurrentW int32
	CurrentH int32
}

// XRGB8888 is the pixel format of every drawable created by the
// backends.
var XRGB8888 = PixelFormat{
	BitsPerPixel:  32,
	BytesPerPixel: 4,
	ALoss:         8,
	RShift:        16,
	GShift:        8,
	RMask:         0x00ff0000,
	GMask:         0x0000ff00,
	BMask:         0x000000ff,
	Alpha:         0xff,
}

// NewSurface returns a placeholder surface of the given size.
func NewSurface(w, h int32, flags uint32) Surface {
	var s Surface
	s.Resize(w, h)
	s.Flags = flags
	s.RefCount = 1
	return s
}

// Resize updates the size, pitch and clip rectangle of s.
func (s *Surface) Resize(w, h int32) {
	s.W, s.H = w, h
	s.Pitch = uint16(w * int32(XRGB8888.BytesPerPixel))
	s.ClipRect = Rect{W: uint16(w), H: uint16(h)}
}
