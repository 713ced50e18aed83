// Package video implements the DMG's scanline picture-processing unit:
// the LCD mode timing, background/window/sprite compositing, and the
// STAT/LYC interrupt sources that drive it.
package video

import (
	"github.com/mrsharp/gbcore/gb/addr"
	"github.com/mrsharp/gbcore/gb/bit"
)

// Mode is the PPU's current rendering stage, matching STAT bits 1-0.
type Mode uint8

const (
	HBlank   Mode = 0
	VBlank   Mode = 1
	OAMScan  Mode = 2
	Transfer Mode = 3
)

const (
	oamScanCycles  = 80
	transferCycles = 172
	hblankCycles   = 204
	scanlineCycles = oamScanCycles + transferCycles + hblankCycles // 456

	visibleLines = 144
	totalLines   = 154
)

// Bus is the subset of the memory bus the PPU needs: VRAM/OAM/register
// access and the ability to raise interrupts.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	RequestInterrupt(i addr.Interrupt)
}

// PPU renders one frame's worth of scanlines driven by Tick, mirroring
// the real hardware's mode FSM one CPU-cycle-group at a time.
type PPU struct {
	bus         Bus
	framebuffer *FrameBuffer
	bgShade     [Width * Height]uint8 // per-pixel BG/window color index, for sprite priority

	mode       Mode
	line       int
	cycles     int
	windowLine int
	drawn      bool

	priority spritePriority

	// FrameReady is set to true whenever VBlank begins; the caller
	// resets it after consuming the frame.
	FrameReady bool
}

func New(bus Bus) *PPU {
	return &PPU{
		bus:         bus,
		framebuffer: NewFrameBuffer(),
		mode:        OAMScan,
	}
}

func (p *PPU) FrameBuffer() *FrameBuffer {
	return p.framebuffer
}

// Tick advances the PPU by cycles CPU cycles, running through as many
// mode transitions as cycles spans.
func (p *PPU) Tick(cycles int) {
	if !p.lcdEnabled() {
		p.cycles = 0
		p.setMode(VBlank)
		p.setLY(0)
		return
	}

	p.cycles += cycles

	for {
		switch p.mode {
		case OAMScan:
			if p.cycles < oamScanCycles {
				return
			}
			p.cycles -= oamScanCycles
			p.drawn = false
			p.setMode(Transfer)
		case Transfer:
			if !p.drawn {
				p.renderScanline()
				p.drawn = true
			}
			if p.cycles < transferCycles {
				return
			}
			p.cycles -= transferCycles
			p.setMode(HBlank)
			p.statInterruptIfEnabled(statHBlankIRQ)
		case HBlank:
			if p.cycles < hblankCycles {
				return
			}
			p.cycles -= hblankCycles
			p.advanceLine()
		case VBlank:
			if p.cycles < scanlineCycles {
				return
			}
			p.cycles -= scanlineCycles
			p.advanceLine()
		}
	}
}

func (p *PPU) advanceLine() {
	p.setLY(p.line + 1)

	switch {
	case p.line == visibleLines:
		p.setMode(VBlank)
		p.windowLine = 0
		p.bus.RequestInterrupt(addr.VBlank)
		p.statInterruptIfEnabled(statVBlankIRQ)
		p.FrameReady = true
	case p.line == totalLines:
		p.setLY(0)
		p.windowLine = 0
		p.setMode(OAMScan)
		p.statInterruptIfEnabled(statOAMIRQ)
	case p.line < visibleLines:
		p.setMode(OAMScan)
		p.statInterruptIfEnabled(statOAMIRQ)
	}
}

func (p *PPU) lcdEnabled() bool {
	return bit.IsSet(7, p.bus.Read(addr.LCDC))
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
	stat := p.bus.Read(addr.STAT)
	stat = stat&0xFC | byte(m)
	p.bus.Write(addr.STAT, stat)
}

func (p *PPU) setLY(line int) {
	p.line = line
	p.bus.Write(addr.LY, byte(line))

	ly := byte(line)
	lyc := p.bus.Read(addr.LYC)
	stat := p.bus.Read(addr.STAT)
	if ly == lyc {
		stat = bit.Set(statLYCFlag, stat)
		if bit.IsSet(statLYCIRQ, stat) {
			p.bus.RequestInterrupt(addr.LCDSTAT)
		}
	} else {
		stat = bit.Reset(statLYCFlag, stat)
	}
	p.bus.Write(addr.STAT, stat)
}

const (
	statLYCIRQ    = 6
	statOAMIRQ    = 5
	statVBlankIRQ = 4
	statHBlankIRQ = 3
	statLYCFlag   = 2
)

func (p *PPU) statInterruptIfEnabled(sourceBit uint8) {
	if bit.IsSet(sourceBit, p.bus.Read(addr.STAT)) {
		p.bus.RequestInterrupt(addr.LCDSTAT)
	}
}

// Reset restores the PPU to its post-boot state (line 0, mode OAMScan).
func (p *PPU) Reset() {
	p.mode = OAMScan
	p.line = 0
	p.cycles = 0
	p.windowLine = 0
	p.drawn = false
	p.FrameReady = false
	p.framebuffer.Clear()
}
