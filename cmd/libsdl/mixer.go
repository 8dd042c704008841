// SPDX-License-Identifier: Unlicense OR MIT

package main

/*
extern int Mix_AllocateChannels(int) __attribute__((weak));

// shim_allocate_channels returns -1 when the host does not link the
// mixer.
static int shim_allocate_channels(int n) {
	if (!Mix_AllocateChannels) {
		return -1;
	}
	return Mix_AllocateChannels(n);
}
*/
import "C"

import "github.com/rs/zerolog"

func allocateChannels(n int, l *zerolog.Logger) {
	got := int(C.shim_allocate_channels(C.int(n)))
	if got < 0 {
		l.Debug().Msg("no mixer")
		return
	}
	l.Debug().Int("requested", n).Int("allocated", got).Msg("mixer channels")
}
