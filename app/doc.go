// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app selects and creates the single window of a legacy SDL 1.2
program.

# Backends

A window is provided by one of two backends. The Wayland backend runs
as a client of a compositor in a desktop session. The DRM backend
drives the first connected display output directly, for console
sessions without a compositor.

The backend is chosen from the session type, normally the
XDG_SESSION_TYPE environment variable:

	wayland       Wayland
	tty or unset  DRM, when built in
	x11           rejected with ErrX11

Any other session type is rejected with ErrUnknownSession. There is no
fallback from one backend to the other.

# Drivers

The backends are registered by importing package app/driver for its
side effects:

	import _ "sdlshim.org/app/driver"

The nowayland and nodrm build tags leave the corresponding backend
out.

# Threading

A Window is not safe for concurrent use. The caller serializes every
method call.
*/
package app
