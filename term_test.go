package main

import (
	"os"
	"testing"

	"github.com/matryer/is"
)

func TestTTYPollAndRead(t *testing.T) {
	is := is.New(t)
	r, w, err := os.Pipe()
	is.NoErr(err)
	defer r.Close()
	defer w.Close()

	tty := NewTTY(r, w)

	ready, err := tty.Poll()
	is.NoErr(err)
	is.True(!ready)

	_, err = w.Write([]byte{'q'})
	is.NoErr(err)

	ready, err = tty.Poll()
	is.NoErr(err)
	is.True(ready)

	b, err := tty.ReadByte()
	is.NoErr(err)
	is.Equal(b, byte('q'))
}

func TestTTYWrite(t *testing.T) {
	is := is.New(t)
	r, w, err := os.Pipe()
	is.NoErr(err)
	defer r.Close()
	defer w.Close()

	tty := NewTTY(r, w)
	is.NoErr(tty.WriteByte('z'))

	buf := make([]byte, 1)
	_, err = r.Read(buf)
	is.NoErr(err)
	is.Equal(buf[0], byte('z'))
}

func TestEnableRawModeNonTerminal(t *testing.T) {
	is := is.New(t)
	f, err := os.Open(os.DevNull)
	is.NoErr(err)
	defer f.Close()

	raw, err := enableRawMode(f)
	is.NoErr(err)
	raw.Restore()
	raw.Restore() // safe to call twice
}
