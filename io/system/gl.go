// SPDX-License-Identifier: Unlicense OR MIT

package system

// GLAttr is a legacy GL attribute selector.
type GLAttr int32

const (
	GLRedSize GLAttr = iota
	GLGreenSize
	GLBlueSize
	GLAlphaSize
	GLBufferSize
	GLDoubleBuffer
	GLDepthSize
	GLStencilSize
	GLAccumRedSize
	GLAccumGreenSize
	GLAccumBlueSize
	GLAccumAlphaSize
	GLStereo
	GLMultisampleBuffers
	GLMultisampleSamples
	GLAcceleratedVisual
	GLSwapControl
)

const maxGLAttrs = 32

// GLAttributes stores the attributes requested by the application.
// The values are informational: the graphics context is negotiated
// with a fixed attribute set.
type GLAttributes struct {
	vals [maxGLAttrs]int32
	set  [maxGLAttrs]bool
}

// Set stores v for a. It returns 0 on success and -1 for an
// attribute outside the table, like the legacy call.
func (g *GLAttributes) Set(a GLAttr, v int32) int32 {
	if a < 0 || a >= maxGLAttrs {
		return -1
	}
	g.vals[a] = v
	g.set[a] = true
	return 0
}

// Get returns the value stored for a and whether it was ever set.
func (g *GLAttributes) Get(a GLAttr) (int32, bool) {
	if a < 0 || a >= maxGLAttrs {
		return 0, false
	}
	return g.vals[a], g.set[a]
}
