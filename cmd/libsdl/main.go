// SPDX-License-Identifier: Unlicense OR MIT

// Command libsdl is a replacement for libSDL-1.2.so.0. Build it with
//
//	go build -buildmode=c-shared -o libSDL-1.2.so.0 ./cmd/libsdl
//
// and preload it, or put it on the library path, of a program linked
// against SDL 1.2.
package main

import "C"

import (
	"sdlshim.org/app"
	_ "sdlshim.org/app/driver"
	"sdlshim.org/internal/config"
	"sdlshim.org/internal/shim"
)

var sdl = shim.New(config.Load, app.NewWindow)

func main() {}
