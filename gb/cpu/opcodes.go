package cpu

import "log/slog"

// execute decodes and runs a single unprefixed opcode, returning its cycle
// cost. The two large regular blocks (0x40-0x7F LD r,r' and 0x80-0xBF ALU
// A,r) are decoded generically from the opcode's bit pattern; everything
// else is irregular enough to list case by case.
func (c *CPU) execute(opcode byte) int {
	switch {
	case opcode == 0x76:
		c.halt()
		return 4
	case opcode >= 0x40 && opcode <= 0x7F:
		return c.executeLoad(opcode)
	case opcode >= 0x80 && opcode <= 0xBF:
		return c.executeALU(opcode)
	}

	switch opcode {
	case 0x00: // NOP
		return 4
	case 0x01:
		c.setBC(c.fetch16())
		return 12
	case 0x02:
		c.bus.Write(c.bc(), c.a)
		return 8
	case 0x03:
		c.setBC(c.bc() + 1)
		return 8
	case 0x04:
		c.b = c.inc8(c.b)
		return 4
	case 0x05:
		c.b = c.dec8(c.b)
		return 4
	case 0x06:
		c.b = c.fetch8()
		return 8
	case 0x07:
		c.a = c.rlc(c.a)
		c.clearFlag(flagZ)
		return 4
	case 0x08:
		addr := c.fetch16()
		c.bus.Write(addr, byte(c.sp))
		c.bus.Write(addr+1, byte(c.sp>>8))
		return 20
	case 0x09:
		c.addToHL(c.bc())
		return 8
	case 0x0A:
		c.a = c.bus.Read(c.bc())
		return 8
	case 0x0B:
		c.setBC(c.bc() - 1)
		return 8
	case 0x0C:
		c.c = c.inc8(c.c)
		return 4
	case 0x0D:
		c.c = c.dec8(c.c)
		return 4
	case 0x0E:
		c.c = c.fetch8()
		return 8
	case 0x0F:
		c.a = c.rrc(c.a)
		c.clearFlag(flagZ)
		return 4

	case 0x10:
		c.fetch8() // the padding byte following STOP
		c.stop()
		return 4
	case 0x11:
		c.setDE(c.fetch16())
		return 12
	case 0x12:
		c.bus.Write(c.de(), c.a)
		return 8
	case 0x13:
		c.setDE(c.de() + 1)
		return 8
	case 0x14:
		c.d = c.inc8(c.d)
		return 4
	case 0x15:
		c.d = c.dec8(c.d)
		return 4
	case 0x16:
		c.d = c.fetch8()
		return 8
	case 0x17:
		c.a = c.rl(c.a)
		c.clearFlag(flagZ)
		return 4
	case 0x18:
		c.pc += uint16(int8(c.fetch8()))
		return 12
	case 0x19:
		c.addToHL(c.de())
		return 8
	case 0x1A:
		c.a = c.bus.Read(c.de())
		return 8
	case 0x1B:
		c.setDE(c.de() - 1)
		return 8
	case 0x1C:
		c.e = c.inc8(c.e)
		return 4
	case 0x1D:
		c.e = c.dec8(c.e)
		return 4
	case 0x1E:
		c.e = c.fetch8()
		return 8
	case 0x1F:
		c.a = c.rr(c.a)
		c.clearFlag(flagZ)
		return 4

	case 0x20:
		offset := int8(c.fetch8())
		if c.condition(0) {
			c.pc += uint16(offset)
			return 12
		}
		return 8
	case 0x21:
		c.setHL(c.fetch16())
		return 12
	case 0x22:
		c.bus.Write(c.hl(), c.a)
		c.setHL(c.hl() + 1)
		return 8
	case 0x23:
		c.setHL(c.hl() + 1)
		return 8
	case 0x24:
		c.h = c.inc8(c.h)
		return 4
	case 0x25:
		c.h = c.dec8(c.h)
		return 4
	case 0x26:
		c.h = c.fetch8()
		return 8
	case 0x27:
		c.daa()
		return 4
	case 0x28:
		offset := int8(c.fetch8())
		if c.condition(1) {
			c.pc += uint16(offset)
			return 12
		}
		return 8
	case 0x29:
		c.addToHL(c.hl())
		return 8
	case 0x2A:
		c.a = c.bus.Read(c.hl())
		c.setHL(c.hl() + 1)
		return 8
	case 0x2B:
		c.setHL(c.hl() - 1)
		return 8
	case 0x2C:
		c.l = c.inc8(c.l)
		return 4
	case 0x2D:
		c.l = c.dec8(c.l)
		return 4
	case 0x2E:
		c.l = c.fetch8()
		return 8
	case 0x2F:
		c.cpl()
		return 4

	case 0x30:
		offset := int8(c.fetch8())
		if c.condition(2) {
			c.pc += uint16(offset)
			return 12
		}
		return 8
	case 0x31:
		c.sp = c.fetch16()
		return 12
	case 0x32:
		c.bus.Write(c.hl(), c.a)
		c.setHL(c.hl() - 1)
		return 8
	case 0x33:
		c.sp++
		return 8
	case 0x34:
		c.bus.Write(c.hl(), c.inc8(c.bus.Read(c.hl())))
		return 12
	case 0x35:
		c.bus.Write(c.hl(), c.dec8(c.bus.Read(c.hl())))
		return 12
	case 0x36:
		c.bus.Write(c.hl(), c.fetch8())
		return 12
	case 0x37:
		c.scf()
		return 4
	case 0x38:
		offset := int8(c.fetch8())
		if c.condition(3) {
			c.pc += uint16(offset)
			return 12
		}
		return 8
	case 0x39:
		c.addToHL(c.sp)
		return 8
	case 0x3A:
		c.a = c.bus.Read(c.hl())
		c.setHL(c.hl() - 1)
		return 8
	case 0x3B:
		c.sp--
		return 8
	case 0x3C:
		c.a = c.inc8(c.a)
		return 4
	case 0x3D:
		c.a = c.dec8(c.a)
		return 4
	case 0x3E:
		c.a = c.fetch8()
		return 8
	case 0x3F:
		c.ccf()
		return 4

	case 0xC0:
		if c.condition(0) {
			c.pc = c.popStack()
			return 20
		}
		return 8
	case 0xC1:
		c.setBC(c.popStack())
		return 12
	case 0xC2:
		target := c.fetch16()
		if c.condition(0) {
			c.pc = target
			return 16
		}
		return 12
	case 0xC3:
		c.pc = c.fetch16()
		return 16
	case 0xC4:
		target := c.fetch16()
		if c.condition(0) {
			c.pushStack(c.pc)
			c.pc = target
			return 24
		}
		return 12
	case 0xC5:
		c.pushStack(c.bc())
		return 16
	case 0xC6:
		c.addToA(c.fetch8())
		return 8
	case 0xC7:
		c.pushStack(c.pc)
		c.pc = 0x00
		return 16
	case 0xC8:
		if c.condition(1) {
			c.pc = c.popStack()
			return 20
		}
		return 8
	case 0xC9:
		c.pc = c.popStack()
		return 16
	case 0xCA:
		target := c.fetch16()
		if c.condition(1) {
			c.pc = target
			return 16
		}
		return 12
	case 0xCB:
		return c.executeCB(c.fetch8())
	case 0xCC:
		target := c.fetch16()
		if c.condition(1) {
			c.pushStack(c.pc)
			c.pc = target
			return 24
		}
		return 12
	case 0xCD:
		target := c.fetch16()
		c.pushStack(c.pc)
		c.pc = target
		return 24
	case 0xCE:
		c.adcToA(c.fetch8())
		return 8
	case 0xCF:
		c.pushStack(c.pc)
		c.pc = 0x08
		return 16

	case 0xD0:
		if c.condition(2) {
			c.pc = c.popStack()
			return 20
		}
		return 8
	case 0xD1:
		c.setDE(c.popStack())
		return 12
	case 0xD2:
		target := c.fetch16()
		if c.condition(2) {
			c.pc = target
			return 16
		}
		return 12
	case 0xD4:
		target := c.fetch16()
		if c.condition(2) {
			c.pushStack(c.pc)
			c.pc = target
			return 24
		}
		return 12
	case 0xD5:
		c.pushStack(c.de())
		return 16
	case 0xD6:
		c.subFromA(c.fetch8())
		return 8
	case 0xD7:
		c.pushStack(c.pc)
		c.pc = 0x10
		return 16
	case 0xD8:
		if c.condition(3) {
			c.pc = c.popStack()
			return 20
		}
		return 8
	case 0xD9:
		c.pc = c.popStack()
		c.ic.EnableNow()
		return 16
	case 0xDA:
		target := c.fetch16()
		if c.condition(3) {
			c.pc = target
			return 16
		}
		return 12
	case 0xDC:
		target := c.fetch16()
		if c.condition(3) {
			c.pushStack(c.pc)
			c.pc = target
			return 24
		}
		return 12
	case 0xDE:
		c.sbcFromA(c.fetch8())
		return 8
	case 0xDF:
		c.pushStack(c.pc)
		c.pc = 0x18
		return 16

	case 0xE0:
		c.bus.Write(0xFF00+uint16(c.fetch8()), c.a)
		return 12
	case 0xE1:
		c.setHL(c.popStack())
		return 12
	case 0xE2:
		c.bus.Write(0xFF00+uint16(c.c), c.a)
		return 8
	case 0xE5:
		c.pushStack(c.hl())
		return 16
	case 0xE6:
		c.andWithA(c.fetch8())
		return 8
	case 0xE7:
		c.pushStack(c.pc)
		c.pc = 0x20
		return 16
	case 0xE8:
		c.sp = c.addSPSigned(int8(c.fetch8()))
		return 16
	case 0xE9:
		c.pc = c.hl()
		return 4
	case 0xEA:
		c.bus.Write(c.fetch16(), c.a)
		return 16
	case 0xEE:
		c.xorWithA(c.fetch8())
		return 8
	case 0xEF:
		c.pushStack(c.pc)
		c.pc = 0x28
		return 16

	case 0xF0:
		c.a = c.bus.Read(0xFF00 + uint16(c.fetch8()))
		return 12
	case 0xF1:
		c.setAF(c.popStack())
		return 12
	case 0xF2:
		c.a = c.bus.Read(0xFF00 + uint16(c.c))
		return 8
	case 0xF3:
		c.ic.DisableNow()
		return 4
	case 0xF5:
		c.pushStack(c.af())
		return 16
	case 0xF6:
		c.orWithA(c.fetch8())
		return 8
	case 0xF7:
		c.pushStack(c.pc)
		c.pc = 0x30
		return 16
	case 0xF8:
		c.setHL(c.addSPSigned(int8(c.fetch8())))
		return 12
	case 0xF9:
		c.sp = c.hl()
		return 8
	case 0xFA:
		c.a = c.bus.Read(c.fetch16())
		return 16
	case 0xFB:
		c.ic.RequestEnable()
		return 4
	case 0xFE:
		c.cpWithA(c.fetch8())
		return 8
	case 0xFF:
		c.pushStack(c.pc)
		c.pc = 0x38
		return 16
	}

	// D3/DB/DD/E3/E4/EB/EC/ED/F4/FC/FD: not defined on real hardware and
	// lock the CPU up. Halting is the closest approximation available
	// without a dedicated crash state.
	slog.Warn("illegal opcode, CPU halted", "opcode", opcode, "address", c.pc-1)
	c.halted = true
	return 4
}

// executeLoad handles the 0x40-0x7F block: LD r,r' for every combination
// of the eight operand slots (0x76, LD (HL),(HL), is HALT instead and is
// intercepted by the caller before reaching here).
func (c *CPU) executeLoad(opcode byte) int {
	dst := (opcode >> 3) & 7
	src := opcode & 7

	c.writeR(dst, c.readR(src))

	if dst == 6 || src == 6 {
		return 8
	}
	return 4
}

// executeALU handles the 0x80-0xBF block: ADD/ADC/SUB/SBC/AND/XOR/OR/CP
// against A, operand selected by the low 3 bits.
func (c *CPU) executeALU(opcode byte) int {
	op := (opcode >> 3) & 7
	value := c.readR(opcode & 7)

	switch op {
	case 0:
		c.addToA(value)
	case 1:
		c.adcToA(value)
	case 2:
		c.subFromA(value)
	case 3:
		c.sbcFromA(value)
	case 4:
		c.andWithA(value)
	case 5:
		c.xorWithA(value)
	case 6:
		c.orWithA(value)
	case 7:
		c.cpWithA(value)
	}

	if opcode&7 == 6 {
		return 8
	}
	return 4
}
