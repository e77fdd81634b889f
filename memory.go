package main

// Memory is the 64 KW address space. The two keyboard device registers
// are intercepted on read; everything else is plain storage.
type Memory struct {
	words [1 << 16]uint16
	cons  Console
}

// Keyboard device registers.
const (
	kbsr = 0xFE00 // keyboard status: bit 15 set while a character is pending
	kbdr = 0xFE02 // keyboard data: reading consumes one character
)

// Read returns the word at addr. Reading kbsr polls the console without
// consuming input; reading kbdr blocks until a character arrives and
// returns it zero-extended. Console failures panic with a consoleFault,
// which Step converts to an error.
func (m *Memory) Read(addr uint16) uint16 {
	switch addr {
	case kbsr:
		ready, err := m.cons.Poll()
		if err != nil {
			panic(consoleFault{err})
		}
		if ready {
			return 1 << 15
		}
		return 0
	case kbdr:
		b, err := m.cons.ReadByte()
		if err != nil {
			panic(consoleFault{err})
		}
		return uint16(b)
	}
	return m.words[addr]
}

// Write stores v at addr. The device registers are read-only from the
// program's point of view, so writes to them land in ordinary storage
// and never reach the console.
func (m *Memory) Write(addr, v uint16) {
	m.words[addr] = v
}

// consoleFault carries a console error out of the memory read path.
type consoleFault struct {
	err error
}
