package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// Console is the character device attached to the machine: a keyboard
// that can be polled or read from, and a display that accepts one byte
// at a time.
type Console interface {
	// Poll reports whether a character is pending without consuming it.
	Poll() (bool, error)
	// ReadByte blocks until one character is available.
	ReadByte() (byte, error)
	WriteByte(byte) error
}

// TTY is a Console backed by a pair of files, normally stdin and stdout.
type TTY struct {
	in  *os.File
	out *os.File
}

func NewTTY(in, out *os.File) *TTY {
	return &TTY{in: in, out: out}
}

// Poll asks the kernel whether in is readable right now, with a zero
// timeout so it never blocks.
func (t *TTY) Poll() (bool, error) {
	fd := int(t.in.Fd())
	var fds unix.FdSet
	fds.Zero()
	fds.Set(fd)
	tv := unix.Timeval{}
	n, err := unix.Select(fd+1, &fds, nil, nil, &tv)
	if err == unix.EINTR {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (t *TTY) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := t.in.Read(buf[:])
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return buf[0], nil
		}
	}
}

func (t *TTY) WriteByte(b byte) error {
	_, err := t.out.Write([]byte{b})
	return err
}

// writeString pushes s through the console one byte at a time.
func writeString(cons Console, s string) error {
	for i := 0; i < len(s); i++ {
		if err := cons.WriteByte(s[i]); err != nil {
			return err
		}
	}
	return nil
}
