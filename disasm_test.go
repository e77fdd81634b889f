package main

import "testing"

func TestDisasm(t *testing.T) {
	tests := []struct {
		instr uint16
		want  string
	}{
		{0x1401, "ADD R2, R0, R1"},
		{0x14FF, "ADD R2, R3, #-1"},
		{0x5430, "AND R2, R0, #-16"},
		{0x9441, "NOT R2, R1"},
		{0x0410, "BRz x010"},
		{0x0FFF, "BRnzp x1ff"},
		{0xC080, "JMP R2"},
		{0xC1C0, "RET"},
		{0x4802, "JSR x002"},
		{0x4080, "JSRR R2"},
		{0x2002, "LD R0, x002"},
		{0xA402, "LDI R2, x002"},
		{0x6702, "LDR R3, R4, x02"},
		{0xE5FE, "LEA R2, x1fe"},
		{0x3210, "ST R1, x010"},
		{0xB220, "STI R1, x020"},
		{0x7D02, "STR R6, R4, x02"},
		{0x8000, "RTI"},
		{0xF020, "GETC"},
		{0xF025, "HALT"},
		{0xF026, "TRAP x26"},
		{0xD000, ".FILL xd000"},
	}
	for _, tt := range tests {
		if got := disasm(tt.instr); got != tt.want {
			t.Errorf("disasm(%04x) = %q, want %q", tt.instr, got, tt.want)
		}
	}
}
