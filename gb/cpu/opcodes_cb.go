package cpu

// executeCB decodes and runs a CB-prefixed opcode. The table is fully
// regular: the low 3 bits always select the operand (same r index as the
// unprefixed table, (HL) included), and the remaining bits select the
// operation, so no per-opcode case list is needed.
func (c *CPU) executeCB(opcode byte) int {
	reg := opcode & 7
	isHL := reg == 6

	switch {
	case opcode < 0x40:
		return c.executeCBShift(opcode, reg, isHL)
	case opcode < 0x80:
		bitIndex := (opcode >> 3) & 7
		c.bitTest(bitIndex, c.readR(reg))
		if isHL {
			return 12
		}
		return 8
	case opcode < 0xC0:
		bitIndex := (opcode >> 3) & 7
		c.writeR(reg, c.readR(reg)&^(1<<bitIndex))
		if isHL {
			return 16
		}
		return 8
	default:
		bitIndex := (opcode >> 3) & 7
		c.writeR(reg, c.readR(reg)|(1<<bitIndex))
		if isHL {
			return 16
		}
		return 8
	}
}

// executeCBShift handles opcodes 0x00-0x3F: RLC, RRC, RL, RR, SLA, SRA,
// SWAP, SRL, selected by the operation group (opcode/8) over the operand
// named by reg.
func (c *CPU) executeCBShift(opcode, reg byte, isHL bool) int {
	value := c.readR(reg)

	var result uint8
	switch opcode / 8 {
	case 0:
		result = c.rlc(value)
	case 1:
		result = c.rrc(value)
	case 2:
		result = c.rl(value)
	case 3:
		result = c.rr(value)
	case 4:
		result = c.sla(value)
	case 5:
		result = c.sra(value)
	case 6:
		result = c.swap(value)
	default:
		result = c.srl(value)
	}

	c.setZFromShift(result)
	c.writeR(reg, result)

	if isHL {
		return 16
	}
	return 8
}
