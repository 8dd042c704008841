// SPDX-License-Identifier: Unlicense OR MIT

package drm

import "strconv"

var connectorTypes = [...]string{
	"Unknown", "VGA", "DVI-I", "DVI-D", "DVI-A", "Composite", "SVIDEO",
	"LVDS", "Component", "DIN", "DP", "HDMI-A", "HDMI-B", "TV", "eDP",
	"Virtual", "DSI", "DPI", "Writeback", "SPI", "USB",
}

func (c Connection) String() string {
	switch c {
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	case UnknownConnection:
		return "unknown"
	default:
		return "Connection(" + strconv.FormatUint(uint64(c), 10) + ")"
	}
}

// Name returns the name the kernel gives the connector, such as
// HDMI-A-1.
func (c *Connector) Name() string {
	typ := "Unknown"
	if int(c.Type) < len(connectorTypes) {
		typ = connectorTypes[c.Type]
	}
	return typ + "-" + strconv.FormatUint(uint64(c.TypeID), 10)
}
