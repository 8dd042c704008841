// SPDX-License-Identifier: Unlicense OR MIT

// Package drm implements the subset of the DRM/KMS kernel interface
// needed to light up a single output: resource and connector
// enumeration, plane properties, framebuffer registration, legacy
// CRTC mode-setting and vertical blank waits.
package drm

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Connection is the state of a connector.
type Connection uint32

const (
	Connected         Connection = 1
	Disconnected      Connection = 2
	UnknownConnection Connection = 3
)

// Object types for property queries.
const (
	ObjectCRTC      uint32 = 0xcccccccc
	ObjectConnector uint32 = 0xc0c0c0c0
	ObjectEncoder   uint32 = 0xe0e0e0e0
	ObjectPlane     uint32 = 0xeeeeeeee
)

// Client capabilities.
const (
	ClientCapStereo3D        uint64 = 1
	ClientCapUniversalPlanes uint64 = 2
	ClientCapAtomic          uint64 = 3
)

const (
	vblankRelative       = 0x1
	vblankSecondary      = 0x20000000
	vblankHighCrtcShift  = 1
	vblankHighCrtcMask   = 0x3e
	maxCards             = 256
	maxEnumerationPasses = 4
)

var (
	ErrNoDevice    = errors.New("drm: no device")
	ErrNoConnector = errors.New("drm: no connected connector")
)

// Mode is a display mode, laid out as struct drm_mode_modeinfo.
type Mode struct {
	Clock      uint32
	HDisplay   uint16
	HSyncStart uint16
	HSyncEnd   uint16
	HTotal     uint16
	HSkew      uint16
	VDisplay   uint16
	VSyncStart uint16
	VSyncEnd   uint16
	VTotal     uint16
	VScan      uint16
	VRefresh   uint32
	Flags      uint32
	Type       uint32
	RawName    [32]byte
}

func (m *Mode) Name() string {
	if i := bytes.IndexByte(m.RawName[:], 0); i >= 0 {
		return string(m.RawName[:i])
	}
	return string(m.RawName[:])
}

func (m *Mode) String() string {
	return fmt.Sprintf("%dx%d@%d", m.HDisplay, m.VDisplay, m.VRefresh)
}

// Resources lists the mode-setting objects of a card.
type Resources struct {
	Framebuffers []uint32
	Crtcs        []uint32
	Connectors   []uint32
	Encoders     []uint32
	MinWidth     uint32
	MaxWidth     uint32
	MinHeight    uint32
	MaxHeight    uint32
}

// Connector is a display output.
type Connector struct {
	ID         uint32
	Type       uint32
	TypeID     uint32
	Connection Connection
	EncoderID  uint32
	MMWidth    uint32
	MMHeight   uint32
	Modes      []Mode
	Encoders   []uint32
}

// Encoder feeds a connector from a CRTC.
type Encoder struct {
	ID            uint32
	Type          uint32
	CrtcID        uint32
	PossibleCrtcs uint32
}

// Plane is a hardware plane.
type Plane struct {
	ID            uint32
	CrtcID        uint32
	FBID          uint32
	PossibleCrtcs uint32
	Formats       []uint32
}

// PropertyValue is a property attached to an object.
type PropertyValue struct {
	ID    uint32
	Value uint64
}

// Property describes a property.
type Property struct {
	ID     uint32
	Flags  uint32
	Name   string
	Values []uint64
}

// FB describes a buffer to register as a framebuffer.
type FB struct {
	Width, Height uint32
	Pitch         uint32
	BPP           uint32
	Depth         uint32
	Handle        uint32
}

// Card is an open DRM device node.
type Card struct {
	fd   int
	path string
}

// Open opens the device node at path.
func Open(path string) (*Card, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("drm: open %s: %w", path, err)
	}
	return &Card{fd: fd, path: path}, nil
}

// OpenFirst opens dir/cardN for ascending N and returns the first
// node that opens.
func OpenFirst(dir string) (*Card, error) {
	var errs []error
	for i := 0; i < maxCards; i++ {
		path := filepath.Join(dir, "card"+strconv.Itoa(i))
		c, err := Open(path)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, unix.ENOENT) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w in %s: %w", ErrNoDevice, dir, errors.Join(errs...))
	}
	return nil, fmt.Errorf("%w in %s", ErrNoDevice, dir)
}

func (c *Card) Fd() uintptr {
	return uintptr(c.fd)
}

func (c *Card) Path() string {
	return c.path
}

func (c *Card) Close() error {
	if c.fd < 0 {
		return nil
	}
	err := unix.Close(c.fd)
	c.fd = -1
	return err
}

func (c *Card) SetClientCap(capability, value uint64) error {
	arg := setClientCap{capability: capability, value: value}
	if err := ioctl(c.fd, ioctlSetClientCap, unsafe.Pointer(&arg)); err != nil {
		return fmt.Errorf("drm: set client cap %d: %w", capability, err)
	}
	return nil
}

// Resources returns the card's mode-setting resources.
func (c *Card) Resources() (*Resources, error) {
	for pass := 0; pass < maxEnumerationPasses; pass++ {
		var counts cardRes
		if err := ioctl(c.fd, ioctlModeGetResources, unsafe.Pointer(&counts)); err != nil {
			return nil, fmt.Errorf("drm: get resources: %w", err)
		}
		res := &Resources{
			Framebuffers: make([]uint32, counts.countFbs),
			Crtcs:        make([]uint32, counts.countCrtcs),
			Connectors:   make([]uint32, counts.countConns),
			Encoders:     make([]uint32, counts.countEncoders),
		}
		arg := cardRes{
			fbIDPtr:        ptr(res.Framebuffers),
			crtcIDPtr:      ptr(res.Crtcs),
			connectorIDPtr: ptr(res.Connectors),
			encoderIDPtr:   ptr(res.Encoders),
			countFbs:       counts.countFbs,
			countCrtcs:     counts.countCrtcs,
			countConns:     counts.countConns,
			countEncoders:  counts.countEncoders,
		}
		err := ioctl(c.fd, ioctlModeGetResources, unsafe.Pointer(&arg))
		runtime.KeepAlive(res)
		if err != nil {
			return nil, fmt.Errorf("drm: get resources: %w", err)
		}
		if arg.countFbs > counts.countFbs || arg.countCrtcs > counts.countCrtcs ||
			arg.countConns > counts.countConns || arg.countEncoders > counts.countEncoders {
			// Hotplug between the two calls.
			continue
		}
		res.Framebuffers = res.Framebuffers[:arg.countFbs]
		res.Crtcs = res.Crtcs[:arg.countCrtcs]
		res.Connectors = res.Connectors[:arg.countConns]
		res.Encoders = res.Encoders[:arg.countEncoders]
		res.MinWidth, res.MaxWidth = arg.minWidth, arg.maxWidth
		res.MinHeight, res.MaxHeight = arg.minHeight, arg.maxHeight
		return res, nil
	}
	return nil, errors.New("drm: get resources: resources kept changing")
}

// Connector returns the connector id, probing it for modes.
func (c *Card) Connector(id uint32) (*Connector, error) {
	for pass := 0; pass < maxEnumerationPasses; pass++ {
		counts := getConnector{connectorID: id}
		if err := ioctl(c.fd, ioctlModeGetConnector, unsafe.Pointer(&counts)); err != nil {
			return nil, fmt.Errorf("drm: get connector %d: %w", id, err)
		}
		modes := make([]Mode, counts.countModes)
		props := make([]uint32, counts.countProps)
		values := make([]uint64, counts.countProps)
		encs := make([]uint32, counts.countEncoders)
		arg := getConnector{
			connectorID:   id,
			modesPtr:      ptr(modes),
			propsPtr:      ptr(props),
			propValuesPtr: ptr(values),
			encodersPtr:   ptr(encs),
			countModes:    counts.countModes,
			countProps:    counts.countProps,
			countEncoders: counts.countEncoders,
		}
		err := ioctl(c.fd, ioctlModeGetConnector, unsafe.Pointer(&arg))
		runtime.KeepAlive(modes)
		runtime.KeepAlive(props)
		runtime.KeepAlive(values)
		runtime.KeepAlive(encs)
		if err != nil {
			return nil, fmt.Errorf("drm: get connector %d: %w", id, err)
		}
		if arg.countModes > counts.countModes || arg.countEncoders > counts.countEncoders ||
			arg.countProps > counts.countProps {
			continue
		}
		return &Connector{
			ID:         arg.connectorID,
			Type:       arg.connectorType,
			TypeID:     arg.connectorTypeID,
			Connection: Connection(arg.connection),
			EncoderID:  arg.encoderID,
			MMWidth:    arg.mmWidth,
			MMHeight:   arg.mmHeight,
			Modes:      modes[:arg.countModes],
			Encoders:   encs[:arg.countEncoders],
		}, nil
	}
	return nil, fmt.Errorf("drm: get connector %d: modes kept changing", id)
}

func (c *Card) Encoder(id uint32) (*Encoder, error) {
	arg := getEncoder{encoderID: id}
	if err := ioctl(c.fd, ioctlModeGetEncoder, unsafe.Pointer(&arg)); err != nil {
		return nil, fmt.Errorf("drm: get encoder %d: %w", id, err)
	}
	return &Encoder{
		ID:            arg.encoderID,
		Type:          arg.encoderType,
		CrtcID:        arg.crtcID,
		PossibleCrtcs: arg.possibleCrtcs,
	}, nil
}

// PlaneIDs lists the planes visible to the client. Primary and cursor
// planes are only listed after ClientCapUniversalPlanes is set.
func (c *Card) PlaneIDs() ([]uint32, error) {
	var counts getPlaneRes
	if err := ioctl(c.fd, ioctlModeGetPlaneRes, unsafe.Pointer(&counts)); err != nil {
		return nil, fmt.Errorf("drm: get plane resources: %w", err)
	}
	ids := make([]uint32, counts.countPlanes)
	arg := getPlaneRes{planeIDPtr: ptr(ids), countPlanes: counts.countPlanes}
	err := ioctl(c.fd, ioctlModeGetPlaneRes, unsafe.Pointer(&arg))
	runtime.KeepAlive(ids)
	if err != nil {
		return nil, fmt.Errorf("drm: get plane resources: %w", err)
	}
	if arg.countPlanes < counts.countPlanes {
		ids = ids[:arg.countPlanes]
	}
	return ids, nil
}

// Plane returns the state of plane id and the formats it scans out.
func (c *Card) Plane(id uint32) (*Plane, error) {
	counts := getPlane{planeID: id}
	if err := ioctl(c.fd, ioctlModeGetPlane, unsafe.Pointer(&counts)); err != nil {
		return nil, fmt.Errorf("drm: get plane %d: %w", id, err)
	}
	formats := make([]uint32, counts.countFormatTypes)
	arg := getPlane{planeID: id, countFormatTypes: counts.countFormatTypes, formatTypePtr: ptr(formats)}
	err := ioctl(c.fd, ioctlModeGetPlane, unsafe.Pointer(&arg))
	runtime.KeepAlive(formats)
	if err != nil {
		return nil, fmt.Errorf("drm: get plane %d: %w", id, err)
	}
	if arg.countFormatTypes < counts.countFormatTypes {
		formats = formats[:arg.countFormatTypes]
	}
	return &Plane{
		ID:            arg.planeID,
		CrtcID:        arg.crtcID,
		FBID:          arg.fbID,
		PossibleCrtcs: arg.possibleCrtcs,
		Formats:       formats,
	}, nil
}

// ObjectProperties returns the properties attached to the object id
// of the given type.
func (c *Card) ObjectProperties(id, objType uint32) ([]PropertyValue, error) {
	counts := objGetProperties{objID: id, objType: objType}
	if err := ioctl(c.fd, ioctlModeObjGetProps, unsafe.Pointer(&counts)); err != nil {
		return nil, fmt.Errorf("drm: get object %d properties: %w", id, err)
	}
	ids := make([]uint32, counts.countProps)
	values := make([]uint64, counts.countProps)
	arg := objGetProperties{
		objID:         id,
		objType:       objType,
		countProps:    counts.countProps,
		propsPtr:      ptr(ids),
		propValuesPtr: ptr(values),
	}
	err := ioctl(c.fd, ioctlModeObjGetProps, unsafe.Pointer(&arg))
	runtime.KeepAlive(ids)
	runtime.KeepAlive(values)
	if err != nil {
		return nil, fmt.Errorf("drm: get object %d properties: %w", id, err)
	}
	n := min(arg.countProps, counts.countProps)
	props := make([]PropertyValue, n)
	for i := range props {
		props[i] = PropertyValue{ID: ids[i], Value: values[i]}
	}
	return props, nil
}

// Property returns the name and flags of the property id. Enum and
// blob contents are not retrieved.
func (c *Card) Property(id uint32) (*Property, error) {
	counts := getProperty{propID: id}
	if err := ioctl(c.fd, ioctlModeGetProperty, unsafe.Pointer(&counts)); err != nil {
		return nil, fmt.Errorf("drm: get property %d: %w", id, err)
	}
	values := make([]uint64, counts.countValues)
	arg := getProperty{propID: id, countValues: counts.countValues, valuesPtr: ptr(values)}
	err := ioctl(c.fd, ioctlModeGetProperty, unsafe.Pointer(&arg))
	runtime.KeepAlive(values)
	if err != nil {
		return nil, fmt.Errorf("drm: get property %d: %w", id, err)
	}
	name := arg.name[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if arg.countValues < counts.countValues {
		values = values[:arg.countValues]
	}
	return &Property{ID: arg.propID, Flags: arg.flags, Name: string(name), Values: values}, nil
}

// AddFramebuffer registers a buffer for scanout and returns the
// framebuffer id.
func (c *Card) AddFramebuffer(fb FB) (uint32, error) {
	arg := fbCmd{
		width:  fb.Width,
		height: fb.Height,
		pitch:  fb.Pitch,
		bpp:    fb.BPP,
		depth:  fb.Depth,
		handle: fb.Handle,
	}
	if err := ioctl(c.fd, ioctlModeAddFB, unsafe.Pointer(&arg)); err != nil {
		return 0, fmt.Errorf("drm: add framebuffer: %w", err)
	}
	return arg.fbID, nil
}

func (c *Card) RemoveFramebuffer(id uint32) error {
	if err := ioctl(c.fd, ioctlModeRmFB, unsafe.Pointer(&id)); err != nil {
		return fmt.Errorf("drm: remove framebuffer %d: %w", id, err)
	}
	return nil
}

// SetCrtc programs crtc to scan out fb on connectors with mode.
func (c *Card) SetCrtc(crtc, fb uint32, connectors []uint32, mode *Mode) error {
	arg := modeCrtc{
		setConnectorsPtr: ptr(connectors),
		countConnectors:  uint32(len(connectors)),
		crtcID:           crtc,
		fbID:             fb,
	}
	if mode != nil {
		arg.mode = *mode
		arg.modeValid = 1
	}
	err := ioctl(c.fd, ioctlModeSetCrtc, unsafe.Pointer(&arg))
	runtime.KeepAlive(connectors)
	if err != nil {
		return fmt.Errorf("drm: set crtc %d: %w", crtc, err)
	}
	return nil
}

// WaitVBlank blocks until seq vertical blanks after the current one on
// the CRTC at index pipe of the resources.
func (c *Card) WaitVBlank(pipe int, seq uint32) error {
	arg := waitVBlank{typ: vblankType(pipe), sequence: seq}
	if err := ioctl(c.fd, ioctlWaitVBlank, unsafe.Pointer(&arg)); err != nil {
		return fmt.Errorf("drm: wait vblank: %w", err)
	}
	return nil
}

func vblankType(pipe int) uint32 {
	t := uint32(vblankRelative)
	switch {
	case pipe == 1:
		t |= vblankSecondary
	case pipe > 1:
		t |= uint32(pipe<<vblankHighCrtcShift) & vblankHighCrtcMask
	}
	return t
}
