// SPDX-License-Identifier: Unlicense OR MIT

package drm

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	iocWrite = 1
	iocRead  = 2

	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	drmIoctlBase = 'd'
)

func ioc(dir, nr, size uintptr) uintptr {
	return dir<<iocDirShift | drmIoctlBase<<iocTypeShift | nr<<iocNRShift | size<<iocSizeShift
}

func iow(nr, size uintptr) uintptr  { return ioc(iocWrite, nr, size) }
func iowr(nr, size uintptr) uintptr { return ioc(iocRead|iocWrite, nr, size) }

var (
	ioctlSetClientCap     = iow(0x0d, unsafe.Sizeof(setClientCap{}))
	ioctlWaitVBlank       = iowr(0x3a, unsafe.Sizeof(waitVBlank{}))
	ioctlModeGetResources = iowr(0xa0, unsafe.Sizeof(cardRes{}))
	ioctlModeGetCrtc      = iowr(0xa1, unsafe.Sizeof(modeCrtc{}))
	ioctlModeSetCrtc      = iowr(0xa2, unsafe.Sizeof(modeCrtc{}))
	ioctlModeGetEncoder   = iowr(0xa6, unsafe.Sizeof(getEncoder{}))
	ioctlModeGetConnector = iowr(0xa7, unsafe.Sizeof(getConnector{}))
	ioctlModeGetProperty  = iowr(0xaa, unsafe.Sizeof(getProperty{}))
	ioctlModeAddFB        = iowr(0xae, unsafe.Sizeof(fbCmd{}))
	ioctlModeRmFB         = iowr(0xaf, unsafe.Sizeof(uint32(0)))
	ioctlModeGetPlaneRes  = iowr(0xb5, unsafe.Sizeof(getPlaneRes{}))
	ioctlModeGetPlane     = iowr(0xb6, unsafe.Sizeof(getPlane{}))
	ioctlModeObjGetProps  = iowr(0xb9, unsafe.Sizeof(objGetProperties{}))
)

// ioctl issues req on fd, restarting when interrupted.
func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
		switch {
		case errno == 0:
			return nil
		case errors.Is(errno, unix.EINTR), errors.Is(errno, unix.EAGAIN):
			continue
		default:
			return errno
		}
	}
}

// ptr returns the address of the first element of s as a uint64, for
// the pointer fields of the DRM structures. The caller must keep s
// alive until the ioctl returns.
func ptr[T any](s []T) uint64 {
	if len(s) == 0 {
		return 0
	}
	return uint64(uintptr(unsafe.Pointer(&s[0])))
}

type setClientCap struct {
	capability uint64
	value      uint64
}

type waitVBlank struct {
	typ      uint32
	sequence uint32
	signal   uint64
	_        uint64
}

type cardRes struct {
	fbIDPtr        uint64
	crtcIDPtr      uint64
	connectorIDPtr uint64
	encoderIDPtr   uint64
	countFbs       uint32
	countCrtcs     uint32
	countConns     uint32
	countEncoders  uint32
	minWidth       uint32
	maxWidth       uint32
	minHeight      uint32
	maxHeight      uint32
}

type modeCrtc struct {
	setConnectorsPtr uint64
	countConnectors  uint32
	crtcID           uint32
	fbID             uint32
	x, y             uint32
	gammaSize        uint32
	modeValid        uint32
	mode             Mode
}

type getEncoder struct {
	encoderID      uint32
	encoderType    uint32
	crtcID         uint32
	possibleCrtcs  uint32
	possibleClones uint32
}

type getConnector struct {
	encodersPtr     uint64
	modesPtr        uint64
	propsPtr        uint64
	propValuesPtr   uint64
	countModes      uint32
	countProps      uint32
	countEncoders   uint32
	encoderID       uint32
	connectorID     uint32
	connectorType   uint32
	connectorTypeID uint32
	connection      uint32
	mmWidth         uint32
	mmHeight        uint32
	subpixel        uint32
	_               uint32
}

type getProperty struct {
	valuesPtr      uint64
	enumBlobPtr    uint64
	propID         uint32
	flags          uint32
	name           [32]byte
	countValues    uint32
	countEnumBlobs uint32
}

type fbCmd struct {
	fbID   uint32
	width  uint32
	height uint32
	pitch  uint32
	bpp    uint32
	depth  uint32
	handle uint32
}

type getPlaneRes struct {
	planeIDPtr  uint64
	countPlanes uint32
}

type getPlane struct {
	planeID          uint32
	crtcID           uint32
	fbID             uint32
	possibleCrtcs    uint32
	gammaSize        uint32
	countFormatTypes uint32
	formatTypePtr    uint64
}

type objGetProperties struct {
	propsPtr      uint64
	propValuesPtr uint64
	countProps    uint32
	objID         uint32
	objType       uint32
}
