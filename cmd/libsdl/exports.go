// SPDX-License-Identifier: Unlicense OR MIT

package main

/*
#include <stdint.h>
*/
import "C"

import (
	"os"
	"unsafe"

	"sdlshim.org/internal/shim"
	"sdlshim.org/io/event"
	"sdlshim.org/io/key"
	"sdlshim.org/io/system"
)

//export SDL_Init
func SDL_Init(flags C.uint32_t) C.int {
	sdl.Lock()
	defer sdl.Unlock()
	cfg, err := sdl.Config()
	if err != nil {
		sdl.Logger().Fatal().Err(err).Msg("SDL_Init")
	}
	if cfg.Signals.Segv {
		sdl.HandleSegv(os.Exit)
	}
	allocateChannels(cfg.Mixer.Channels, sdl.Logger())
	return C.int(sdl.Window().Init(uint32(flags)))
}

//export SDL_Quit
func SDL_Quit() {
	sdl.Lock()
	defer sdl.Unlock()
	if sdl.Opened() {
		sdl.Window().Quit()
	}
}

//export SDL_GetError
func SDL_GetError() *C.char {
	sdl.Lock()
	defer sdl.Unlock()
	return mem.setError(sdl.Error())
}

//export SDL_Delay
func SDL_Delay(ms C.uint32_t) {
	sdl.Lock()
	defer sdl.Unlock()
	sdl.Delay(uint32(ms))
}

//export SDL_SetVideoMode
func SDL_SetVideoMode(width, height, bpp C.int, flags C.uint32_t) unsafe.Pointer {
	sdl.Lock()
	defer sdl.Unlock()
	s := sdl.Window().SetVideoMode(int32(width), int32(height), int32(bpp), uint32(flags))
	return mem.setSurface(s)
}

//export SDL_GetVideoInfo
func SDL_GetVideoInfo() unsafe.Pointer {
	sdl.Lock()
	defer sdl.Unlock()
	return mem.setVideoInfo(sdl.Window().VideoInfo())
}

//export SDL_WM_SetCaption
func SDL_WM_SetCaption(title, icon *C.char) {
	sdl.Lock()
	defer sdl.Unlock()
	sdl.Window().SetCaption(C.GoString(title), C.GoString(icon))
}

//export SDL_ShowCursor
func SDL_ShowCursor(toggle C.int) C.int {
	sdl.Lock()
	defer sdl.Unlock()
	return C.int(sdl.Window().ShowCursor(int32(toggle)))
}

//export SDL_WarpMouse
func SDL_WarpMouse(x, y C.uint16_t) {
	sdl.Lock()
	defer sdl.Unlock()
	sdl.Window().WarpMouse(uint16(x), uint16(y))
}

//export SDL_EnableKeyRepeat
func SDL_EnableKeyRepeat(delay, interval C.int) C.int {
	sdl.Lock()
	defer sdl.Unlock()
	return C.int(sdl.Window().EnableKeyRepeat(int32(delay), int32(interval)))
}

//export SDL_GetKeyState
func SDL_GetKeyState(numkeys *C.int) *C.uint8_t {
	sdl.Lock()
	defer sdl.Unlock()
	if numkeys != nil {
		*numkeys = key.Last
	}
	keys := mem.keys.ptr()
	sdl.KeyState(keys)
	return (*C.uint8_t)(unsafe.Pointer(keys))
}

//export SDL_GetModState
func SDL_GetModState() C.int {
	sdl.Lock()
	defer sdl.Unlock()
	return C.int(sdl.Window().ModState())
}

//export SDL_GetMouseState
func SDL_GetMouseState(x, y *C.int) C.uint8_t {
	sdl.Lock()
	defer sdl.Unlock()
	px, py, buttons := sdl.Window().MouseState()
	if x != nil {
		*x = C.int(px)
	}
	if y != nil {
		*y = C.int(py)
	}
	return C.uint8_t(buttons)
}

//export SDL_PollEvent
func SDL_PollEvent(ev unsafe.Pointer) C.int {
	sdl.Lock()
	defer sdl.Unlock()
	if sdl.PollEvent((*event.Event)(ev)) {
		return 1
	}
	return 0
}

//export SDL_GL_GetAttribute
func SDL_GL_GetAttribute(attr C.int, value *C.int) C.int {
	sdl.Lock()
	defer sdl.Unlock()
	v, status := shim.GLAttribute(sdl.Window(), system.GLAttr(attr))
	if status == 0 && value != nil {
		*value = C.int(v)
	}
	return C.int(status)
}

//export SDL_GL_SetAttribute
func SDL_GL_SetAttribute(attr C.int, value C.int) C.int {
	sdl.Lock()
	defer sdl.Unlock()
	return C.int(sdl.Window().GLSetAttribute(system.GLAttr(attr), int32(value)))
}

//export SDL_GL_GetProcAddress
func SDL_GL_GetProcAddress(proc *C.char) unsafe.Pointer {
	sdl.Lock()
	defer sdl.Unlock()
	return unsafe.Pointer(sdl.Window().GLProcAddress(C.GoString(proc)))
}

//export SDL_GL_SwapBuffers
func SDL_GL_SwapBuffers() {
	sdl.Lock()
	defer sdl.Unlock()
	sdl.Window().GLSwapBuffers()
}
