// Package addr names the memory-mapped addresses the core components
// need to agree on: I/O registers, tile data/map bases, OAM, and the
// interrupt vectors. Centralizing them here is what lets the cpu, memory
// and video packages stay decoupled from each other's internals.
package addr

// Joypad
const (
	// P1 selects and reads the joypad button/direction lines.
	P1 uint16 = 0xFF00
)

// Serial
const (
	// SB holds the byte being shifted in/out during a serial transfer.
	SB uint16 = 0xFF01
	// SC controls and starts a serial transfer.
	SC uint16 = 0xFF02
)

// Timer
const (
	// DIV is the free-running divider. Any write resets it to 0.
	DIV uint16 = 0xFF04
	// TIMA is the timer counter; raises the Timer interrupt on overflow.
	TIMA uint16 = 0xFF05
	// TMA is the value TIMA reloads to after overflow.
	TMA uint16 = 0xFF06
	// TAC selects TIMA's frequency and enables/disables it.
	TAC uint16 = 0xFF07
)

// Interrupts
const (
	// IF latches pending interrupts.
	IF uint16 = 0xFF0F
	// IE masks which interrupts are serviceable.
	IE uint16 = 0xFFFF
)

// Audio registers (register storage only, see the audio package).
const (
	AudioStart uint16 = 0xFF10
	AudioEnd   uint16 = 0xFF3F

	NR10 uint16 = 0xFF10
	NR11 uint16 = 0xFF11
	NR12 uint16 = 0xFF12
	NR13 uint16 = 0xFF13
	NR14 uint16 = 0xFF14

	NR21 uint16 = 0xFF16
	NR22 uint16 = 0xFF17
	NR23 uint16 = 0xFF18
	NR24 uint16 = 0xFF19

	NR30 uint16 = 0xFF1A
	NR31 uint16 = 0xFF1B
	NR32 uint16 = 0xFF1C
	NR33 uint16 = 0xFF1D
	NR34 uint16 = 0xFF1E

	NR41 uint16 = 0xFF20
	NR42 uint16 = 0xFF21
	NR43 uint16 = 0xFF22
	NR44 uint16 = 0xFF23

	NR50 uint16 = 0xFF24
	NR51 uint16 = 0xFF25
	NR52 uint16 = 0xFF26

	WaveRAMStart uint16 = 0xFF30
	WaveRAMEnd   uint16 = 0xFF3F
)

// LCD
const (
	LCDC uint16 = 0xFF40
	STAT uint16 = 0xFF41
	SCY  uint16 = 0xFF42
	SCX  uint16 = 0xFF43
	LY   uint16 = 0xFF44
	LYC  uint16 = 0xFF45
	DMA  uint16 = 0xFF46
	BGP  uint16 = 0xFF47
	OBP0 uint16 = 0xFF48
	OBP1 uint16 = 0xFF49
	WY   uint16 = 0xFF4A
	WX   uint16 = 0xFF4B
)

// OAM (40 sprites * 4 bytes each).
const (
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
)

// Tile data and tile map bases.
const (
	// TileData0 is the base of unsigned tile addressing (tiles 0-255).
	TileData0 uint16 = 0x8000
	// TileData2 is the base of signed tile addressing (tiles -128..127).
	TileData2 uint16 = 0x9000

	TileMap0 uint16 = 0x9800
	TileMap1 uint16 = 0x9C00
)

// Interrupt identifies one of the five DMG interrupt sources, ordered by
// priority (VBlank highest, Joypad lowest) matching their IF/IE bit index.
type Interrupt uint8

const (
	VBlank Interrupt = iota
	LCDSTAT
	Timer
	Serial
	Joypad
)

// Bit returns the IF/IE bit mask for the interrupt.
func (i Interrupt) Bit() uint8 {
	return 1 << uint8(i)
}

// Vector returns the fixed dispatch address for the interrupt.
func (i Interrupt) Vector() uint16 {
	return 0x40 + uint16(i)*8
}
