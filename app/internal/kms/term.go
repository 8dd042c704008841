// SPDX-License-Identifier: Unlicense OR MIT

package kms

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// console is a Terminal on a file descriptor, typically stdin.
type console struct {
	fd    int
	saved *term.State
}

// NewTerminal returns the Terminal for fd. MakeRaw does nothing when
// fd is not a terminal.
func NewTerminal(fd int) Terminal {
	return &console{fd: fd}
}

func (c *console) MakeRaw() error {
	if !term.IsTerminal(c.fd) {
		return nil
	}
	s, err := term.MakeRaw(c.fd)
	if err != nil {
		return fmt.Errorf("kms: raw terminal: %w", err)
	}
	c.saved = s
	return nil
}

func (c *console) Restore() error {
	if c.saved == nil {
		return nil
	}
	if err := unix.IoctlSetInt(c.fd, unix.TCFLSH, unix.TCIOFLUSH); err != nil {
		return fmt.Errorf("kms: flush terminal: %w", err)
	}
	s := c.saved
	c.saved = nil
	if err := term.Restore(c.fd, s); err != nil {
		return fmt.Errorf("kms: restore terminal: %w", err)
	}
	return nil
}
