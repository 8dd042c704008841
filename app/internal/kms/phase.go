// SPDX-License-Identifier: Unlicense OR MIT

package kms

// Phase is the progress of a Window through bring-up and shutdown.
type Phase uint8

const (
	PhaseUninitialized Phase = iota
	PhaseDeviceOpened
	PhaseOutputChosen
	PhaseSurfaceCreated
	PhaseContextBound
	// PhasePresenting is entered on the first presented frame.
	PhasePresenting
	PhaseQuitting
	PhaseRestored
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhaseDeviceOpened:
		return "DeviceOpened"
	case PhaseOutputChosen:
		return "OutputChosen"
	case PhaseSurfaceCreated:
		return "SurfaceCreated"
	case PhaseContextBound:
		return "ContextBound"
	case PhasePresenting:
		return "Presenting"
	case PhaseQuitting:
		return "Quitting"
	case PhaseRestored:
		return "Restored"
	default:
		panic("unexpected Phase value")
	}
}
