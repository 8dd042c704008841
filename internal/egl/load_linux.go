// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ebitengine/purego"
)

var defaultLibs = []string{"libEGL.so.1", "libEGL.so"}

var (
	loadOnce sync.Once
	loaded   *Lib
	loadErr  error
)

// Load opens the EGL library at path, or the system library when path
// is empty, and resolves its entry points. Entry points missing from
// the library's symbol table are looked up through eglGetProcAddress.
// Load is safe to call several times: the first path wins.
func Load(path string) (*Lib, error) {
	loadOnce.Do(func() {
		loaded, loadErr = load(path)
	})
	return loaded, loadErr
}

func load(path string) (*Lib, error) {
	names := defaultLibs
	if path != "" {
		names = []string{path}
	}
	var errs []error
	for _, name := range names {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		l := &Lib{handle: h}
		l.resolve()
		return l, nil
	}
	return nil, fmt.Errorf("egl: failed to load %s: %w", strings.Join(names, ", "), errors.Join(errs...))
}

func (l *Lib) resolve() {
	procs := l.procs()
	var deferred []string
	for name, fptr := range procs {
		p, err := purego.Dlsym(l.handle, name)
		if err != nil || p == 0 {
			deferred = append(deferred, name)
			continue
		}
		purego.RegisterFunc(fptr, p)
	}
	if l.eglGetProcAddress == nil {
		return
	}
	for _, name := range deferred {
		if p := l.eglGetProcAddress(name); p != 0 {
			purego.RegisterFunc(procs[name], p)
		}
	}
}
