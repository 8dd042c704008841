// SPDX-License-Identifier: Unlicense OR MIT

package kms

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"

	"sdlshim.org/io/key"
)

// dispatch reads the pending seat events into the key queue and the
// key-state table.
func (w *Window) dispatch() {
	evts, err := w.seat.Dispatch()
	if err != nil {
		w.log.Debug().Err(err).Msg("input dispatch")
	}
	for _, e := range evts {
		w.km.UpdateKey(key.XKBCode(e.Key), e.State)
		for _, ke := range key.Events(w.km, e.Key, e.State) {
			w.keyEvents.Push(ke)
			w.keys.Set(ke.Code, ke.State)
		}
	}
}

// wait polls the seat for at most d and reports whether input is
// pending.
func (w *Window) wait(d time.Duration) bool {
	timeout := int((d + time.Millisecond - 1) / time.Millisecond)
	fds := []unix.PollFd{{Fd: int32(w.seat.Fd()), Events: unix.POLLIN}}
	for {
		_, err := unix.Poll(fds, timeout)
		if err == nil {
			break
		}
		if !errors.Is(err, unix.EINTR) {
			w.log.Debug().Err(err).Msg("input poll")
			return false
		}
	}
	return fds[0].Revents&unix.POLLIN != 0
}
