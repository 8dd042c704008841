// SPDX-License-Identifier: Unlicense OR MIT

package wayland

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// pump dispatches queued events, or reads and dispatches the events
// available on the connection without blocking. Requests issued by
// the callbacks are flushed before it returns, so a following wait
// never blocks on unsent requests.
func (w *Window) pump() {
	defer w.flush()
	n, err := w.conn.DispatchPending()
	if err != nil {
		panic(fmt.Errorf("wayland: dispatch: %w", err))
	}
	if n > 0 {
		return
	}
	w.flush()
	if w.conn.PrepareRead() {
		if w.wait(0) {
			if err := w.conn.ReadEvents(); err != nil && !errors.Is(err, unix.EAGAIN) {
				panic(fmt.Errorf("wayland: read events: %w", err))
			}
		} else {
			w.conn.CancelRead()
		}
	}
	if _, err := w.conn.DispatchPending(); err != nil {
		panic(fmt.Errorf("wayland: dispatch: %w", err))
	}
}

func (w *Window) flush() {
	// EAGAIN means the output buffer is full; the requests are sent
	// by a later flush.
	if err := w.conn.Flush(); err != nil && !errors.Is(err, unix.EAGAIN) {
		panic(fmt.Errorf("wayland: flush: %w", err))
	}
}

// wait polls the connection for at most d and reports whether it is
// readable. A negative d waits indefinitely.
func (w *Window) wait(d time.Duration) bool {
	timeout := -1
	if d >= 0 {
		timeout = int((d + time.Millisecond - 1) / time.Millisecond)
	}
	fds := []unix.PollFd{{Fd: int32(w.conn.Fd()), Events: unix.POLLIN}}
	for {
		_, err := unix.Poll(fds, timeout)
		if err == nil {
			break
		}
		if !errors.Is(err, unix.EINTR) {
			panic(fmt.Errorf("wayland: poll: %w", err))
		}
	}
	return fds[0].Revents&(unix.POLLIN|unix.POLLERR|unix.POLLHUP) != 0
}
