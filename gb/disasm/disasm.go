// Package disasm renders CPU instructions as assembly text for debugging
// tools, driven entirely by the cpu package's own opcode-length and
// mnemonic metadata rather than a second, separately maintained table.
package disasm

import (
	"github.com/mrsharp/gbcore/gb/bit"
	"github.com/mrsharp/gbcore/gb/cpu"
)

// Bus is the subset of the memory bus disassembly needs.
type Bus interface {
	Read(address uint16) byte
}

// Line is one disassembled instruction.
type Line struct {
	Address     uint16
	Instruction string
	Length      int
}

// At disassembles the instruction at pc without advancing it.
func At(pc uint16, bus Bus) Line {
	opcode := bus.Read(pc)

	if opcode == 0xCB {
		cbOpcode := bus.Read(pc + 1)
		return Line{Address: pc, Instruction: cpu.CBMnemonic(cbOpcode), Length: cpu.CBLength(cbOpcode)}
	}

	length := cpu.Length(opcode)
	var operand uint16
	switch length {
	case 2:
		operand = uint16(bus.Read(pc + 1))
	case 3:
		operand = bit.Combine(bus.Read(pc+2), bus.Read(pc+1))
	}

	return Line{Address: pc, Instruction: cpu.Mnemonic(opcode, operand), Length: length}
}

// Window disassembles count instructions starting at pc, for display in
// a debug view.
func Window(pc uint16, bus Bus, count int) []Line {
	lines := make([]Line, 0, count)
	addr := pc
	for i := 0; i < count; i++ {
		line := At(addr, bus)
		lines = append(lines, line)
		addr += uint16(line.Length)
	}
	return lines
}
