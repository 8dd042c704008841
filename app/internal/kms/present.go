// SPDX-License-Identifier: Unlicense OR MIT

package kms

import (
	"fmt"

	"sdlshim.org/internal/drm"
)

// present waits for the next vertical blank, swaps and scans out the
// new front buffer. The buffer of the previous frame is released once
// the output no longer reads from it.
func (w *Window) present() error {
	if err := w.dev.WaitVBlank(w.out.pipe, 1); err != nil {
		return fmt.Errorf("kms: wait vblank: %w", err)
	}
	if err := w.gl.SwapBuffers(); err != nil {
		return fmt.Errorf("kms: swap buffers: %w", err)
	}
	bo, err := w.surf.LockFrontBuffer()
	if err != nil {
		return fmt.Errorf("kms: %w", err)
	}
	fb, err := w.framebuffer(bo)
	if err != nil {
		w.surf.ReleaseBuffer(bo)
		return err
	}
	if err := w.dev.SetCrtc(w.out.crtc, fb, []uint32{w.out.connector}, &w.out.mode); err != nil {
		w.surf.ReleaseBuffer(bo)
		return fmt.Errorf("kms: set crtc: %w", err)
	}
	if w.prev != nil {
		w.surf.ReleaseBuffer(w.prev)
	}
	w.prev = bo
	w.phase = PhasePresenting
	return nil
}

// framebuffer returns the framebuffer of bo, registering it on first
// use.
func (w *Window) framebuffer(bo Buffer) (uint32, error) {
	h := bo.Handle()
	if fb, ok := w.fbs[h]; ok {
		return fb, nil
	}
	fb, err := w.dev.AddFramebuffer(drm.FB{
		Width:  bo.Width(),
		Height: bo.Height(),
		Pitch:  bo.Stride(),
		BPP:    fbBPP,
		Depth:  fbDepth,
		Handle: uint32(h),
	})
	if err != nil {
		return 0, fmt.Errorf("kms: add framebuffer: %w", err)
	}
	w.fbs[h] = fb
	w.log.Debug().Uint64("handle", h).Uint32("fb", fb).Msg("framebuffer")
	return fb, nil
}
