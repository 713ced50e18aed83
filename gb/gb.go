// Package gb wires the CPU, memory bus, interrupt controller and PPU
// together into a runnable DMG machine.
package gb

import (
	"fmt"

	"github.com/mrsharp/gbcore/gb/cpu"
	"github.com/mrsharp/gbcore/gb/interrupt"
	"github.com/mrsharp/gbcore/gb/memory"
	"github.com/mrsharp/gbcore/gb/video"
)

// Machine is a complete DMG: CPU, bus and PPU advancing in lockstep one
// instruction at a time. The CPU and PPU both poll the bus's IE/IF
// registers directly, so nothing beyond construction is needed to wire
// interrupts end to end.
type Machine struct {
	CPU *cpu.CPU
	Bus *memory.Bus
	PPU *video.PPU
}

// New returns a Machine with no cartridge loaded; call LoadROM before Step
// or RunUntilFrame.
func New() *Machine {
	bus := memory.New()
	ic := interrupt.New()

	return &Machine{
		Bus: bus,
		CPU: cpu.New(bus, ic),
		PPU: video.New(bus),
	}
}

// LoadROM attaches a cartridge image and sets the CPU/PPU to the state
// the boot ROM leaves behind at 0x0100, so play can start immediately.
func (m *Machine) LoadROM(romData []byte) error {
	if err := m.Bus.LoadCartridge(romData); err != nil {
		return fmt.Errorf("gb: load rom: %w", err)
	}
	m.Reset()
	return nil
}

// Reset reinstates post-boot register and PPU state without reloading
// the cartridge or reallocating any backing store.
func (m *Machine) Reset() {
	m.Bus.Reset()
	m.CPU.Reset()
	m.PPU.Reset()
}

// Step runs exactly one CPU instruction and advances every other
// component (PPU, timer, serial) by the same number of cycles, keeping
// the whole machine in lockstep the way the real hardware's shared
// clock does. The timer is not advanced while the CPU is stopped.
func (m *Machine) Step() int {
	cycles := m.CPU.Step()
	m.Bus.Tick(cycles, m.CPU.Stopped())
	m.PPU.Tick(cycles)
	return cycles
}

// RunUntilFrame steps the machine until the PPU completes a frame,
// returning once FrameReady is consumed.
func (m *Machine) RunUntilFrame() {
	for {
		m.Step()
		if m.PPU.FrameReady {
			m.PPU.FrameReady = false
			return
		}
	}
}

// CartridgeTitle reports the loaded cartridge's header title, for
// window titles and logging.
func (m *Machine) CartridgeTitle() string {
	return m.Bus.CartridgeTitle()
}
