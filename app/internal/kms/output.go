// SPDX-License-Identifier: Unlicense OR MIT

package kms

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"sdlshim.org/internal/drm"
)

// ErrNoPlane is returned when no plane of the device exposes a type
// property.
var ErrNoPlane = errors.New("kms: no usable plane")

// output is a connector driven by a CRTC in a fixed mode.
type output struct {
	connector uint32
	crtc      uint32
	// pipe is the index of crtc in the device resources.
	pipe int
	mode drm.Mode
}

// chooseOutput picks the first connected connector, its preferred
// mode and a CRTC able to drive it. Connectors that cannot be queried
// are skipped.
func chooseOutput(dev Device, log zerolog.Logger) (output, error) {
	res, err := dev.Resources()
	if err != nil {
		return output{}, fmt.Errorf("kms: resources: %w", err)
	}
	if len(res.Crtcs) == 0 {
		return output{}, errors.New("kms: device has no crtc")
	}
	for _, id := range res.Connectors {
		conn, err := dev.Connector(id)
		if err != nil {
			log.Debug().Err(err).Uint32("connector", id).Msg("skipping connector")
			continue
		}
		if conn.Connection != drm.Connected || len(conn.Modes) == 0 {
			continue
		}
		crtc := chooseCrtc(dev, res, conn)
		out := output{connector: conn.ID, crtc: crtc, mode: conn.Modes[0]}
		for i, c := range res.Crtcs {
			if c == crtc {
				out.pipe = i
			}
		}
		return out, nil
	}
	return output{}, drm.ErrNoConnector
}

// chooseCrtc returns the CRTC of the current encoder of conn, or the
// first CRTC that encoder can drive. Without encoder information it
// falls back to the first CRTC of the device.
func chooseCrtc(dev Device, res *drm.Resources, conn *drm.Connector) uint32 {
	if conn.EncoderID == 0 {
		return res.Crtcs[0]
	}
	enc, err := dev.Encoder(conn.EncoderID)
	if err != nil {
		return res.Crtcs[0]
	}
	if enc.CrtcID != 0 {
		return enc.CrtcID
	}
	for i, c := range res.Crtcs {
		if i < 32 && enc.PossibleCrtcs&(1<<i) != 0 {
			return c
		}
	}
	return res.Crtcs[0]
}

// choosePlane returns the first plane exposing a type property.
func choosePlane(dev Device) (uint32, error) {
	if err := dev.SetClientCap(drm.ClientCapUniversalPlanes, 1); err != nil {
		return 0, fmt.Errorf("kms: universal planes: %w", err)
	}
	ids, err := dev.PlaneIDs()
	if err != nil {
		return 0, fmt.Errorf("kms: planes: %w", err)
	}
	for _, id := range ids {
		props, err := dev.ObjectProperties(id, drm.ObjectPlane)
		if err != nil {
			return 0, fmt.Errorf("kms: plane %d properties: %w", id, err)
		}
		for _, pv := range props {
			p, err := dev.Property(pv.ID)
			if err != nil {
				return 0, fmt.Errorf("kms: property %d: %w", pv.ID, err)
			}
			if p.Name == "type" {
				return id, nil
			}
		}
	}
	return 0, ErrNoPlane
}
