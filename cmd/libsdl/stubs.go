// SPDX-License-Identifier: Unlicense OR MIT

package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"sdlshim.org/internal/shim"
)

// Joysticks are never present.

//export SDL_NumJoysticks
func SDL_NumJoysticks() C.int {
	return 0
}

//export SDL_JoystickEventState
func SDL_JoystickEventState(state C.int) C.int {
	return 0
}

//export SDL_JoystickOpen
func SDL_JoystickOpen(index C.int) unsafe.Pointer {
	shim.NotImplemented("SDL_JoystickOpen")
	return nil
}

//export SDL_JoystickName
func SDL_JoystickName(index C.int) *C.char {
	shim.NotImplemented("SDL_JoystickName")
	return nil
}

//export SDL_JoystickNumAxes
func SDL_JoystickNumAxes(joystick unsafe.Pointer) C.int {
	shim.NotImplemented("SDL_JoystickNumAxes")
	return 0
}

//export SDL_JoystickNumButtons
func SDL_JoystickNumButtons(joystick unsafe.Pointer) C.int {
	shim.NotImplemented("SDL_JoystickNumButtons")
	return 0
}

//export SDL_JoystickGetAxis
func SDL_JoystickGetAxis(joystick unsafe.Pointer, axis C.int) C.int16_t {
	shim.NotImplemented("SDL_JoystickGetAxis")
	return 0
}

//export SDL_JoystickGetButton
func SDL_JoystickGetButton(joystick unsafe.Pointer, button C.int) C.uint8_t {
	shim.NotImplemented("SDL_JoystickGetButton")
	return 0
}

//export SDL_RWFromFile
func SDL_RWFromFile(file, mode *C.char) unsafe.Pointer {
	shim.NotImplemented("SDL_RWFromFile")
	return nil
}

//export SDL_LockAudio
func SDL_LockAudio() {}

//export SDL_UnlockAudio
func SDL_UnlockAudio() {}
