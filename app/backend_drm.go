// SPDX-License-Identifier: Unlicense OR MIT

//go:build !nodrm

package app

var drmCompiled = true
