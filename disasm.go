package main

import "fmt"

// Operand formats for the disassembly table.
const (
	fmtNone    = iota
	fmtDRSRSR  // ADD R0, R1, R2
	fmtDRSRImm // ADD R0, R1, #-5
	fmtDRSR    // NOT R0, R1
	fmtBR      // BRnz x1fd
	fmtBase    // JMP R2
	fmtOff11   // JSR x7ff
	fmtRegOff9 // LD R0, x1ff
	fmtBaseOff // LDR R0, R1, x3f
	fmtVect    // TRAP x26
)

type D struct {
	mask uint16
	ins  uint16
	msg  string
	flag uint8
}

var disamtable = [...]D{
	{0xFFFF, 0xC1C0, "RET", fmtNone},
	{0xFFFF, 0xF020, "GETC", fmtNone},
	{0xFFFF, 0xF021, "OUT", fmtNone},
	{0xFFFF, 0xF022, "PUTS", fmtNone},
	{0xFFFF, 0xF023, "IN", fmtNone},
	{0xFFFF, 0xF024, "PUTSP", fmtNone},
	{0xFFFF, 0xF025, "HALT", fmtNone},
	{0xF020, 0x1020, "ADD", fmtDRSRImm},
	{0xF020, 0x1000, "ADD", fmtDRSRSR},
	{0xF020, 0x5020, "AND", fmtDRSRImm},
	{0xF020, 0x5000, "AND", fmtDRSRSR},
	{0xF000, 0x9000, "NOT", fmtDRSR},
	{0xF000, 0x0000, "BR", fmtBR},
	{0xF000, 0xC000, "JMP", fmtBase},
	{0xF800, 0x4800, "JSR", fmtOff11},
	{0xF800, 0x4000, "JSRR", fmtBase},
	{0xF000, 0x2000, "LD", fmtRegOff9},
	{0xF000, 0xA000, "LDI", fmtRegOff9},
	{0xF000, 0x6000, "LDR", fmtBaseOff},
	{0xF000, 0xE000, "LEA", fmtRegOff9},
	{0xF000, 0x3000, "ST", fmtRegOff9},
	{0xF000, 0xB000, "STI", fmtRegOff9},
	{0xF000, 0x7000, "STR", fmtBaseOff},
	{0xF000, 0x8000, "RTI", fmtNone},
	{0xF000, 0xF000, "TRAP", fmtVect},
}

// disasm renders one instruction word for the trace output.
func disasm(instr uint16) string {
	for _, d := range disamtable {
		if instr&d.mask != d.ins {
			continue
		}
		dr := instr >> 9 & 7
		base := instr >> 6 & 7
		switch d.flag {
		case fmtNone:
			return d.msg
		case fmtDRSRSR:
			return fmt.Sprintf("%s R%d, R%d, R%d", d.msg, dr, base, instr&7)
		case fmtDRSRImm:
			return fmt.Sprintf("%s R%d, R%d, #%d", d.msg, dr, base, int16(sext(instr&0x1F, 5)))
		case fmtDRSR:
			return fmt.Sprintf("%s R%d, R%d", d.msg, dr, base)
		case fmtBR:
			nzp := ""
			if instr&0x800 != 0 {
				nzp += "n"
			}
			if instr&0x400 != 0 {
				nzp += "z"
			}
			if instr&0x200 != 0 {
				nzp += "p"
			}
			return fmt.Sprintf("%s%s x%03x", d.msg, nzp, instr&0x1FF)
		case fmtBase:
			return fmt.Sprintf("%s R%d", d.msg, base)
		case fmtOff11:
			return fmt.Sprintf("%s x%03x", d.msg, instr&0x7FF)
		case fmtRegOff9:
			return fmt.Sprintf("%s R%d, x%03x", d.msg, dr, instr&0x1FF)
		case fmtBaseOff:
			return fmt.Sprintf("%s R%d, R%d, x%02x", d.msg, dr, base, instr&0x3F)
		case fmtVect:
			return fmt.Sprintf("%s x%02x", d.msg, instr&0xFF)
		}
	}
	return fmt.Sprintf(".FILL x%04x", instr)
}
