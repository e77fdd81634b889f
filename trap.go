package main

import "fmt"

// Trap vectors. The six system calls are implemented natively rather
// than through a trap vector table in memory, so a guest program cannot
// install its own handlers.
const (
	trapGETC  = 0x20 // read one character, no echo
	trapOUT   = 0x21 // write one character
	trapPUTS  = 0x22 // write a word-per-character string
	trapIN    = 0x23 // prompt, read one character with echo
	trapPUTSP = 0x24 // write a packed two-characters-per-word string
	trapHALT  = 0x25 // stop the machine
)

// IllegalInstruction reports a word the ISA does not define, including
// the reserved opcode and RTI.
type IllegalInstruction struct {
	Addr  uint16
	Instr uint16
}

func (e IllegalInstruction) Error() string {
	return fmt.Sprintf("illegal instruction %04x at %04x", e.Instr, e.Addr)
}

// IllegalTrap reports a TRAP with an unrecognized vector.
type IllegalTrap struct {
	Addr  uint16
	Instr uint16
}

func (e IllegalTrap) Error() string {
	return fmt.Sprintf("illegal trap vector %02x at %04x", e.Instr&0xFF, e.Addr)
}

// TRAP 1111 0000 trapvect8
func (c *LC3) trap(addr, instr uint16) error {
	// The hardware would save the return address for the handler; keep
	// that visible side effect even though dispatch is native.
	c.R[7] = c.PC

	switch instr & 0xFF {
	case trapGETC:
		b, err := c.cons.ReadByte()
		if err != nil {
			return fmt.Errorf("GETC: %w", err)
		}
		c.R[0] = uint16(b)
	case trapOUT:
		if err := c.cons.WriteByte(byte(c.R[0])); err != nil {
			return fmt.Errorf("OUT: %w", err)
		}
	case trapPUTS:
		for a := c.R[0]; ; a++ {
			w := c.mem.Read(a)
			if w == 0 {
				break
			}
			if err := c.cons.WriteByte(byte(w)); err != nil {
				return fmt.Errorf("PUTS: %w", err)
			}
		}
	case trapIN:
		if err := writeString(c.cons, "Enter a character: "); err != nil {
			return fmt.Errorf("IN: %w", err)
		}
		b, err := c.cons.ReadByte()
		if err != nil {
			return fmt.Errorf("IN: %w", err)
		}
		if err := c.cons.WriteByte(b); err != nil {
			return fmt.Errorf("IN: %w", err)
		}
		c.R[0] = uint16(b)
	case trapPUTSP:
		// Each word holds two characters, low byte first. A zero low
		// byte ends the string before the high byte is looked at.
		for a := c.R[0]; ; a++ {
			w := c.mem.Read(a)
			lo, hi := byte(w), byte(w>>8)
			if lo == 0 {
				break
			}
			if err := c.cons.WriteByte(lo); err != nil {
				return fmt.Errorf("PUTSP: %w", err)
			}
			if hi == 0 {
				break
			}
			if err := c.cons.WriteByte(hi); err != nil {
				return fmt.Errorf("PUTSP: %w", err)
			}
		}
	case trapHALT:
		if err := writeString(c.cons, "HALT\n"); err != nil {
			return fmt.Errorf("HALT: %w", err)
		}
		c.halted = true
	default:
		return IllegalTrap{Addr: addr, Instr: instr}
	}
	return nil
}
