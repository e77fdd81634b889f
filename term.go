package main

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// rawMode scopes a raw-terminal configuration: no line buffering, no
// echo. Restore must run on every exit path so the invoking terminal is
// never left broken.
type rawMode struct {
	fd     uintptr
	saved  unix.Termios
	active bool
}

// enableRawMode puts f into raw mode. When f is not a terminal (tests,
// piped input) it returns an inert rawMode and does nothing.
func enableRawMode(f *os.File) (*rawMode, error) {
	if !term.IsTerminal(int(f.Fd())) {
		return &rawMode{}, nil
	}
	var ios unix.Termios
	if err := termios.Tcgetattr(f.Fd(), &ios); err != nil {
		return nil, err
	}
	r := &rawMode{fd: f.Fd(), saved: ios, active: true}
	ios.Lflag &^= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(f.Fd(), termios.TCSAFLUSH, &ios); err != nil {
		return nil, err
	}
	return r, nil
}

// Restore puts the terminal back the way it was. Safe to call more than
// once.
func (r *rawMode) Restore() {
	if !r.active {
		return
	}
	r.active = false
	termios.Tcsetattr(r.fd, termios.TCSANOW, &r.saved)
}
