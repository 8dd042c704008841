// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains the window lifecycle stages and the video
// records handed back to the hosted application.
package system

// Stage of a Window.
type Stage uint8

const (
	// StageCreated is the Stage of a window that completed bring-up but
	// was not initialized by the application.
	StageCreated Stage = iota
	// StageInitialized is the Stage after Init.
	StageInitialized
	// StageRunning is the Stage of a window with a bound graphics
	// context.
	StageRunning
	// StageQuitting is the Stage of a window asked to close, or whose
	// application called Quit.
	StageQuitting
	// StageRestored is the Stage after altered terminal or input state
	// was restored.
	StageRestored
)

func (l Stage) String() string {
	switch l {
	case StageCreated:
		return "StageCreated"
	case StageInitialized:
		return "StageInitialized"
	case StageRunning:
		return "StageRunning"
	case StageQuitting:
		return "StageQuitting"
	case StageRestored:
		return "StageRestored"
	default:
		panic("unexpected Stage value")
	}
}
