package main

import (
	"testing"

	"github.com/matryer/is"
)

func TestMemoryPlainStorage(t *testing.T) {
	is := is.New(t)
	var mem Memory
	mem.cons = &testConsole{}

	mem.Write(0x0000, 0x1234)
	mem.Write(0xFFFF, 0x5678)
	is.Equal(mem.Read(0x0000), uint16(0x1234))
	is.Equal(mem.Read(0xFFFF), uint16(0x5678))
	is.Equal(mem.Read(0x8000), uint16(0)) // untouched cells read zero
}

func TestKeyboardStatus(t *testing.T) {
	is := is.New(t)
	cons := &testConsole{}
	var mem Memory
	mem.cons = cons

	is.Equal(mem.Read(kbsr), uint16(0)) // nothing pending

	cons.in.WriteByte('k')
	is.Equal(mem.Read(kbsr), uint16(0x8000))
	is.Equal(mem.Read(kbsr), uint16(0x8000)) // polling does not consume
	is.Equal(cons.in.Len(), 1)
}

func TestKeyboardData(t *testing.T) {
	is := is.New(t)
	cons := &testConsole{}
	var mem Memory
	mem.cons = cons

	cons.in.WriteByte(0xE9)
	is.Equal(mem.Read(kbdr), uint16(0x00E9)) // zero-extended
	is.Equal(mem.Read(kbsr), uint16(0))      // consumed
}

func TestKeyboardStatusOverridesStoredData(t *testing.T) {
	is := is.New(t)
	cons := &testConsole{}
	var mem Memory
	mem.cons = cons

	// A write to the status register is accepted as plain data but must
	// never leak into reads, which always reflect the device.
	mem.Write(kbsr, 0x8000)
	is.Equal(mem.Read(kbsr), uint16(0))

	cons.in.WriteByte('k')
	mem.Write(kbsr, 0x0000)
	is.Equal(mem.Read(kbsr), uint16(0x8000))
}
