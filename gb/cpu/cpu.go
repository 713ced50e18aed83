// Package cpu implements the Sharp LR35902 instruction set: fetch-decode-
// execute, flag semantics, and interrupt servicing.
package cpu

import (
	"fmt"

	"github.com/mrsharp/gbcore/gb/addr"
	"github.com/mrsharp/gbcore/gb/interrupt"
)

// Bus is the subset of the memory bus the CPU needs.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// CPU executes Sharp LR35902 machine code one instruction at a time via
// Step, returning the number of cycles that instruction took.
type CPU struct {
	Registers

	bus Bus
	ic  *interrupt.Controller

	halted  bool
	haltBug bool
	stopped bool
}

// New returns a CPU wired to bus and ic, in its pre-boot-ROM state; call
// Reset for the state a real DMG is in once the boot ROM hands off.
func New(bus Bus, ic *interrupt.Controller) *CPU {
	return &CPU{bus: bus, ic: ic}
}

// Reset sets registers to the values the DMG boot ROM leaves behind at
// 0x0100, so a cartridge can run without the boot ROM being emulated.
func (c *CPU) Reset() {
	c.setAF(0x01B0)
	c.setBC(0x0013)
	c.setDE(0x00D8)
	c.setHL(0x014D)
	c.sp = 0xFFFE
	c.pc = 0x0100
	c.halted = false
	c.haltBug = false
	c.stopped = false
}

// PC reports the program counter, mainly for disassembly and debugging.
func (c *CPU) PC() uint16 { return c.pc }

// Halted reports whether the CPU is currently in the HALT low-power state.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is currently in the STOP low-power
// state, waiting for a joypad press; DIV is frozen for as long as this
// holds true.
func (c *CPU) Stopped() bool { return c.stopped }

// Step runs exactly one instruction (or one idle cycle while halted or
// stopped) and returns the number of cycles it took.
func (c *CPU) Step() int {
	if c.stopped {
		if c.bus.Read(addr.IF)&addr.Joypad.Bit() != 0 {
			c.stopped = false
		} else {
			return 4
		}
	}

	if c.halted {
		ie := c.bus.Read(addr.IE)
		iflag := c.bus.Read(addr.IF)
		if ie&iflag&0x1F == 0 {
			return 4
		}
		c.halted = false
	}

	if c.ic.Enabled() {
		if cycles, serviced := c.serviceInterrupt(); serviced {
			c.ic.Step()
			return cycles
		}
	}

	opcode := c.fetch8()
	if c.haltBug {
		c.pc--
		c.haltBug = false
	}

	cycles := c.execute(opcode)
	c.ic.Step()
	return cycles
}

// serviceInterrupt dispatches to the highest-priority pending interrupt's
// vector, costing 20 cycles: 2 wasted M-cycles, a PUSH of PC, and the jump.
func (c *CPU) serviceInterrupt() (int, bool) {
	ie := c.bus.Read(addr.IE)
	iflag := c.bus.Read(addr.IF)

	pending, ok := interrupt.Pending(ie, iflag)
	if !ok {
		return 0, false
	}

	c.ic.Acknowledge()
	c.bus.Write(addr.IF, iflag&^pending.Bit())
	c.pushStack(c.pc)
	c.pc = pending.Vector()

	return 20, true
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(c.pc)
	c.pc++
	return v
}

func (c *CPU) fetch16() uint16 {
	low := c.fetch8()
	high := c.fetch8()
	return uint16(high)<<8 | uint16(low)
}

// halt enters the HALT state. If interrupts are disabled and an
// interrupt is already pending, the next opcode fetch is replayed
// (the "HALT bug"): the byte after HALT is fetched twice, once as part
// of the instruction that should follow and once more because PC fails
// to advance.
func (c *CPU) halt() {
	ie := c.bus.Read(addr.IE)
	iflag := c.bus.Read(addr.IF)
	pendingNow := ie&iflag&0x1F != 0

	if !c.ic.Enabled() && pendingNow {
		c.haltBug = true
		return
	}

	c.halted = true
}

func (c *CPU) stop() {
	c.stopped = true
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X",
		c.pc, c.sp, c.af(), c.bc(), c.de(), c.hl())
}
