// SPDX-License-Identifier: Unlicense OR MIT

// Package probe gathers the diagnostics reported by shimprobe.
package probe

import (
	"fmt"
	"path/filepath"
	"sort"

	"sdlshim.org/app"
	"sdlshim.org/internal/config"
	"sdlshim.org/internal/drm"
)

// SessionReport describes the backend choice for a configuration.
type SessionReport struct {
	Session string
	Set     bool
	Backend string
	Err     string
	// Drivers lists the backends built into the binary.
	Drivers []string
}

// OK reports whether a window could be created for the session.
func (r SessionReport) OK() bool {
	if r.Err != "" {
		return false
	}
	for _, d := range r.Drivers {
		if d == r.Backend {
			return true
		}
	}
	return false
}

// Session reports the backend selected for cfg.
func Session(cfg *config.Config) SessionReport {
	r := SessionReport{Session: cfg.Session, Set: cfg.Session != ""}
	for _, b := range []app.Backend{app.Wayland, app.DRM} {
		if app.Registered(b) {
			r.Drivers = append(r.Drivers, b.String())
		}
	}
	b, err := app.Select(cfg.Session, r.Set)
	if err != nil {
		r.Err = err.Error()
		return r
	}
	r.Backend = b.String()
	return r
}

// Card is the part of a DRM device read by the probe. *drm.Card
// implements it.
type Card interface {
	Path() string
	SetClientCap(capability, value uint64) error
	Resources() (*drm.Resources, error)
	Connector(id uint32) (*drm.Connector, error)
	PlaneIDs() ([]uint32, error)
	Plane(id uint32) (*drm.Plane, error)
	Close() error
}

// CardReport lists the outputs of one device.
type CardReport struct {
	Path       string
	Crtcs      int
	Planes     []PlaneReport
	Connectors []ConnectorReport
	Err        string
}

// PlaneReport describes one plane. Crtcs holds the indices of the
// CRTCs the plane can be attached to.
type PlaneReport struct {
	ID      uint32
	Crtcs   []int
	Formats int
	Err     string
}

// ConnectorReport describes one connector and its modes, preferred
// mode first.
type ConnectorReport struct {
	ID         uint32
	Name       string
	Connection string
	Modes      []string
}

// Cards opens every card node in dir with open and reports its
// outputs. Nodes that fail to open are reported with their error.
func Cards(dir string, open func(path string) (Card, error)) ([]CardReport, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "card*"))
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", drm.ErrNoDevice, dir)
	}
	sort.Strings(paths)
	reports := make([]CardReport, 0, len(paths))
	for _, p := range paths {
		c, err := open(p)
		if err != nil {
			reports = append(reports, CardReport{Path: p, Err: err.Error()})
			continue
		}
		r := describeCard(c)
		r.Path = p
		c.Close()
		reports = append(reports, r)
	}
	return reports, nil
}

func describeCard(c Card) CardReport {
	var r CardReport
	res, err := c.Resources()
	if err != nil {
		r.Err = err.Error()
		return r
	}
	r.Crtcs = len(res.Crtcs)
	if c.SetClientCap(drm.ClientCapUniversalPlanes, 1) == nil {
		if ids, err := c.PlaneIDs(); err == nil {
			for _, id := range ids {
				r.Planes = append(r.Planes, describePlane(c, id))
			}
		}
	}
	for _, id := range res.Connectors {
		conn, err := c.Connector(id)
		if err != nil {
			r.Connectors = append(r.Connectors, ConnectorReport{ID: id, Connection: err.Error()})
			continue
		}
		cr := ConnectorReport{
			ID:         conn.ID,
			Name:       conn.Name(),
			Connection: conn.Connection.String(),
		}
		for i := range conn.Modes {
			cr.Modes = append(cr.Modes, conn.Modes[i].String())
		}
		r.Connectors = append(r.Connectors, cr)
	}
	return r
}

func describePlane(c Card, id uint32) PlaneReport {
	p, err := c.Plane(id)
	if err != nil {
		return PlaneReport{ID: id, Err: err.Error()}
	}
	r := PlaneReport{ID: p.ID, Formats: len(p.Formats)}
	for i := 0; i < 32; i++ {
		if p.PossibleCrtcs&(1<<i) != 0 {
			r.Crtcs = append(r.Crtcs, i)
		}
	}
	return r
}

// EGLReport describes the EGL library and, when a display could be
// initialized, its implementation.
type EGLReport struct {
	Library    string
	Missing    []string
	Platform   string
	Vendor     string
	Version    string
	APIs       string
	Extensions []string
	Err        string
}

// MissingSymbols returns the sorted names whose entry point was not
// resolved.
func MissingSymbols(resolved map[string]bool) []string {
	var missing []string
	for name, ok := range resolved {
		if !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
