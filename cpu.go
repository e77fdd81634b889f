package main

import (
	"fmt"
	"os"
)

// LC3 is an LC-3 machine: eight general registers, a program counter,
// one-hot condition codes and 64 KW of memory with the keyboard device
// mapped into it.
type LC3 struct {
	R  [8]uint16 // R0-R7
	PC uint16
	CC uint16 // one of flagN, flagZ, flagP

	mem  Memory
	cons Console

	halted bool
	trace  bool
}

// Condition codes, matching the order of the NZP bits in a BR instruction.
const (
	flagP = 1 << 0
	flagZ = 1 << 1
	flagN = 1 << 2
)

// Opcodes occupy the top 4 bits of every instruction word.
const (
	opBR uint16 = iota
	opADD
	opLD
	opST
	opJSR
	opAND
	opLDR
	opSTR
	opRTI
	opNOT
	opLDI
	opSTI
	opJMP
	opRES
	opLEA
	opTRAP
)

// pcStart is the conventional entry address for user programs.
const pcStart = 0x3000

// New returns an LC3 with zeroed registers and memory, condition codes
// set to Z and the program counter at pcStart.
func New(cons Console) *LC3 {
	c := &LC3{PC: pcStart, CC: flagZ, cons: cons}
	c.mem.cons = cons
	return c
}

// Load stores words into memory starting at addr.
func (c *LC3) Load(addr uint16, words ...uint16) {
	for i, w := range words {
		c.mem.Write(addr+uint16(i), w)
	}
}

// Run steps the machine until it halts or faults.
func (c *LC3) Run() error {
	for !c.halted {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step fetches, decodes and executes one instruction. It returns an
// IllegalInstruction or IllegalTrap fault for words the ISA does not
// define, and a console error if the underlying character stream fails.
func (c *LC3) Step() (err error) {
	defer func() {
		if e := recover(); e != nil {
			cf, ok := e.(consoleFault)
			if !ok {
				panic(e)
			}
			err = fmt.Errorf("console: %w", cf.err)
		}
	}()

	addr := c.PC
	instr := c.mem.Read(addr)
	// PC-relative operands are relative to the incremented PC.
	c.PC++

	if c.trace {
		c.printstate(addr, instr)
	}

	switch instr >> 12 {
	case opADD:
		c.add(instr)
	case opAND:
		c.and(instr)
	case opNOT:
		c.not(instr)
	case opBR:
		c.br(instr)
	case opJMP:
		c.jmp(instr)
	case opJSR:
		c.jsr(instr)
	case opLD:
		c.ld(instr)
	case opLDI:
		c.ldi(instr)
	case opLDR:
		c.ldr(instr)
	case opLEA:
		c.lea(instr)
	case opST:
		c.st(instr)
	case opSTI:
		c.sti(instr)
	case opSTR:
		c.str(instr)
	case opTRAP:
		return c.trap(addr, instr)
	default: // opRES, opRTI
		return IllegalInstruction{Addr: addr, Instr: instr}
	}
	return nil
}

// ADD 0001 DR SR1 0 00 SR2 | 0001 DR SR1 1 imm5
func (c *LC3) add(instr uint16) {
	dr := instr >> 9 & 7
	sr1 := instr >> 6 & 7
	if instr&0x20 != 0 {
		c.R[dr] = c.R[sr1] + sext(instr&0x1F, 5)
	} else {
		c.R[dr] = c.R[sr1] + c.R[instr&7]
	}
	c.setcc(c.R[dr])
}

// AND 0101 DR SR1 0 00 SR2 | 0101 DR SR1 1 imm5
func (c *LC3) and(instr uint16) {
	dr := instr >> 9 & 7
	sr1 := instr >> 6 & 7
	if instr&0x20 != 0 {
		c.R[dr] = c.R[sr1] & sext(instr&0x1F, 5)
	} else {
		c.R[dr] = c.R[sr1] & c.R[instr&7]
	}
	c.setcc(c.R[dr])
}

// NOT 1001 DR SR 111111
func (c *LC3) not(instr uint16) {
	dr := instr >> 9 & 7
	c.R[dr] = ^c.R[instr>>6&7]
	c.setcc(c.R[dr])
}

// BR 0000 NZP PCoffset9
func (c *LC3) br(instr uint16) {
	if instr>>9&7&c.CC != 0 {
		c.PC += sext(instr&0x1FF, 9)
	}
}

// JMP 1100 000 BaseR 000000; RET is JMP with BaseR = R7.
func (c *LC3) jmp(instr uint16) {
	c.PC = c.R[instr>>6&7]
}

// JSR 0100 1 PCoffset11 | JSRR 0100 0 00 BaseR 000000
func (c *LC3) jsr(instr uint16) {
	c.R[7] = c.PC
	if instr&0x800 != 0 {
		c.PC += sext(instr&0x7FF, 11)
	} else {
		c.PC = c.R[instr>>6&7]
	}
}

// LD 0010 DR PCoffset9
func (c *LC3) ld(instr uint16) {
	dr := instr >> 9 & 7
	c.R[dr] = c.mem.Read(c.PC + sext(instr&0x1FF, 9))
	c.setcc(c.R[dr])
}

// LDI 1010 DR PCoffset9
func (c *LC3) ldi(instr uint16) {
	dr := instr >> 9 & 7
	c.R[dr] = c.mem.Read(c.mem.Read(c.PC + sext(instr&0x1FF, 9)))
	c.setcc(c.R[dr])
}

// LDR 0110 DR BaseR offset6
func (c *LC3) ldr(instr uint16) {
	dr := instr >> 9 & 7
	c.R[dr] = c.mem.Read(c.R[instr>>6&7] + sext(instr&0x3F, 6))
	c.setcc(c.R[dr])
}

// LEA 1110 DR PCoffset9
func (c *LC3) lea(instr uint16) {
	dr := instr >> 9 & 7
	c.R[dr] = c.PC + sext(instr&0x1FF, 9)
	c.setcc(c.R[dr])
}

// ST 0011 SR PCoffset9
func (c *LC3) st(instr uint16) {
	c.mem.Write(c.PC+sext(instr&0x1FF, 9), c.R[instr>>9&7])
}

// STI 1011 SR PCoffset9
func (c *LC3) sti(instr uint16) {
	c.mem.Write(c.mem.Read(c.PC+sext(instr&0x1FF, 9)), c.R[instr>>9&7])
}

// STR 0111 SR BaseR offset6
func (c *LC3) str(instr uint16) {
	c.mem.Write(c.R[instr>>6&7]+sext(instr&0x3F, 6), c.R[instr>>9&7])
}

// setcc derives the condition codes from the sign of v.
func (c *LC3) setcc(v uint16) {
	switch {
	case v == 0:
		c.CC = flagZ
	case v&0x8000 != 0:
		c.CC = flagN
	default:
		c.CC = flagP
	}
}

// sext sign-extends the low bits of x to 16 bits.
func sext(x uint16, bits uint) uint16 {
	if x&(1<<(bits-1)) != 0 {
		x |= 0xFFFF << bits
	}
	return x
}

func (c *LC3) ccString() string {
	switch c.CC {
	case flagN:
		return "N"
	case flagZ:
		return "Z"
	case flagP:
		return "P"
	}
	return "?"
}

func (c *LC3) printstate(addr, instr uint16) {
	fmt.Fprintf(os.Stderr, "R0 %04x R1 %04x R2 %04x R3 %04x R4 %04x R5 %04x R6 %04x R7 %04x\n",
		c.R[0], c.R[1], c.R[2], c.R[3], c.R[4], c.R[5], c.R[6], c.R[7])
	fmt.Fprintf(os.Stderr, "[%s]  %04x: %04x\t%s\n", c.ccString(), addr, instr, disasm(instr))
}
