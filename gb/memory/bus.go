package memory

import (
	"fmt"
	"log/slog"

	"github.com/mrsharp/gbcore/gb/addr"
	"github.com/mrsharp/gbcore/gb/audio"
	"github.com/mrsharp/gbcore/gb/bit"
	"github.com/mrsharp/gbcore/gb/serial"
)

type region uint8

const (
	regionROM region = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionIO
)

var regionByPage [256]region

func init() {
	for i := 0x00; i <= 0x7F; i++ {
		regionByPage[i] = regionROM
	}
	for i := 0x80; i <= 0x9F; i++ {
		regionByPage[i] = regionVRAM
	}
	for i := 0xA0; i <= 0xBF; i++ {
		regionByPage[i] = regionExtRAM
	}
	for i := 0xC0; i <= 0xDF; i++ {
		regionByPage[i] = regionWRAM
	}
	for i := 0xE0; i <= 0xFD; i++ {
		regionByPage[i] = regionEcho
	}
	regionByPage[0xFE] = regionOAM
	regionByPage[0xFF] = regionIO
}

// Bus is the DMG's unified address space: it dispatches every CPU, PPU
// and timer access to the right backing store (cartridge, VRAM, work
// RAM, OAM, or an I/O register), and guarantees reads/writes never fail
// regardless of address.
type Bus struct {
	cart *Cartridge
	mbc  MBC
	ram  []byte
	APU  *audio.APU

	joypadButtons uint8
	joypadDpad    uint8

	serial serial.Port
	timer  Timer
}

// New creates a Bus with no cartridge inserted.
func New() *Bus {
	b := &Bus{
		ram:           make([]byte, 0x10000),
		cart:          NewCartridge(),
		APU:           audio.New(),
		joypadButtons: 0x0F,
		joypadDpad:    0x0F,
	}
	b.mbc = NewNoMBC(b.cart.data)
	b.serial = serial.NewLogSink()
	b.timer.InterruptHandler = func() { b.RequestInterrupt(addr.Timer) }
	return b
}

// LoadCartridge parses romData's header and attaches the matching MBC.
func (b *Bus) LoadCartridge(romData []byte) error {
	cart := NewCartridgeWithData(romData)
	b.cart = cart

	switch cart.mbcType {
	case NoMBCType:
		b.mbc = NewNoMBC(cart.data)
	case MBC1Type:
		b.mbc = NewMBC1(cart.data, cart.ramBankCount)
	case MBC2Type:
		b.mbc = NewMBC2(cart.data)
	case MBC3Type:
		b.mbc = NewMBC3(cart.data, cart.ramBankCount, cart.hasRTC)
	case MBC5Type:
		b.mbc = NewMBC5(cart.data, cart.ramBankCount, cart.hasRumble)
	default:
		return fmt.Errorf("memory: unsupported cartridge type for %q", cart.Title)
	}

	return nil
}

// RequestInterrupt sets the given interrupt's IF bit. The CPU observes it
// by polling IE/IF itself on its next Step, so there is no callback to wire.
func (b *Bus) RequestInterrupt(i addr.Interrupt) {
	b.ram[addr.IF] = bit.Set(uint8(i), b.ram[addr.IF]|0xE0)
}

// Tick advances the serial port, and the timer unless stopped is true, by
// cycles CPU cycles. stopped mirrors the CPU's STOP state: real hardware
// freezes DIV (and TIMA) for as long as STOP holds the CPU idle.
func (b *Bus) Tick(cycles int, stopped bool) {
	if !stopped {
		b.timer.Tick(cycles)
	}
	b.serial.Tick(cycles)
}

func (b *Bus) Read(address uint16) byte {
	switch regionByPage[address>>8] {
	case regionROM, regionExtRAM:
		return b.mbc.Read(address)
	case regionVRAM, regionWRAM:
		return b.ram[address]
	case regionEcho:
		return b.ram[address-0x2000]
	case regionOAM:
		return b.ram[address]
	case regionIO:
		return b.readIO(address)
	default:
		return 0xFF
	}
}

func (b *Bus) readIO(address uint16) byte {
	switch {
	case address == addr.P1:
		return b.ram[address]
	case address == addr.SB || address == addr.SC:
		return b.serial.Read(address)
	case address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC:
		return b.timer.Read(address)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		return b.APU.ReadRegister(address)
	case address == addr.IF:
		return b.ram[address] | 0xE0
	default:
		return b.ram[address]
	}
}

func (b *Bus) Write(address uint16, value byte) {
	switch regionByPage[address>>8] {
	case regionROM, regionExtRAM:
		b.mbc.Write(address, value)
	case regionVRAM, regionWRAM:
		b.ram[address] = value
	case regionEcho:
		b.ram[address-0x2000] = value
	case regionOAM:
		b.ram[address] = value
	case regionIO:
		b.writeIO(address, value)
	}
}

func (b *Bus) writeIO(address uint16, value byte) {
	switch {
	case address == addr.P1:
		b.writeJoypad(value)
	case address == addr.SB || address == addr.SC:
		b.serial.Write(address, value)
	case address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC:
		b.timer.Write(address, value)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		b.APU.WriteRegister(address, value)
	case address == addr.IF:
		b.ram[address] = value | 0xE0
	case address == addr.DMA:
		b.runOAMDMA(value)
	default:
		b.ram[address] = value
	}
}

// runOAMDMA copies 160 bytes from value*0x100 into OAM. On real hardware
// this takes 160 machine cycles during which the CPU can only access
// HRAM; this core models it as instantaneous, with no sub-instruction
// bus interleaving.
func (b *Bus) runOAMDMA(value byte) {
	source := uint16(value) << 8
	for i := uint16(0); i < 160; i++ {
		b.ram[addr.OAMStart+i] = b.Read(source + i)
	}
	b.ram[addr.DMA] = value
}

// Reset restores the bus's RAM-backed state, keeping the loaded cartridge.
func (b *Bus) Reset() {
	slog.Debug("resetting bus", "cartridge", b.cart.Title)
	b.ram = make([]byte, 0x10000)
	b.joypadButtons = 0x0F
	b.joypadDpad = 0x0F
	b.timer.Reset()
	b.serial.Reset()
	b.ram[addr.LCDC] = 0x91
	b.ram[addr.STAT] = 0x81
}

// CartridgeTitle reports the loaded cartridge's header title.
func (b *Bus) CartridgeTitle() string {
	return b.cart.Title
}
