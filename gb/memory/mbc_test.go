package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMBC1BankZeroSubstitution(t *testing.T) {
	rom := make([]uint8, 0x4000*4)
	rom[0x4000*2] = 0xAB // bank 2
	m := NewMBC1(rom, 0)

	m.Write(0x2000, 0x00) // select bank 0, substituted to 1
	assert.Equal(t, uint8(0), m.Read(0x4000))

	m.Write(0x2000, 0x02)
	assert.Equal(t, uint8(0xAB), m.Read(0x4000))
}

func TestMBC1RAMGating(t *testing.T) {
	m := NewMBC1(make([]uint8, 0x8000), 1)
	m.Write(0xA000, 0x12)
	assert.Equal(t, uint8(0xFF), m.Read(0xA000), "RAM reads as 0xFF until enabled")

	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0x12)
	assert.Equal(t, uint8(0x12), m.Read(0xA000))
}

func TestMBC1BankingModeMovesRAMBank(t *testing.T) {
	m := NewMBC1(make([]uint8, 0x4000*4), 4)
	m.Write(0x0000, 0x0A)
	m.Write(0x6000, 0x01) // RAM banking mode
	m.Write(0x4000, 0x02) // selects RAM bank 2 in RAM mode
	m.Write(0xA000, 0x55)

	m.Write(0x4000, 0x00)
	assert.NotEqual(t, uint8(0x55), m.Read(0xA000))
	m.Write(0x4000, 0x02)
	assert.Equal(t, uint8(0x55), m.Read(0xA000))
}

func TestMBC2RAMUpperNibbleReadsAsSet(t *testing.T) {
	m := NewMBC2(make([]uint8, 0x4000*4))
	m.Write(0x0000, 0x0A) // bit 8 clear: RAM enable
	m.Write(0xA000, 0x07)
	assert.Equal(t, uint8(0xF7), m.Read(0xA000), "upper nibble always reads as set")
}

func TestMBC2ROMBankNeverZero(t *testing.T) {
	rom := make([]uint8, 0x4000*4)
	rom[0x4000*3] = 0x9A
	m := NewMBC2(rom)
	m.Write(0x0100, 0x00) // bit 8 set: ROM bank select, value 0
	assert.Equal(t, uint8(0), m.Read(0x4000), "bank 0 substituted to bank 1")
	m.Write(0x0100, 0x03)
	assert.Equal(t, uint8(0x9A), m.Read(0x4000))
}

func TestMBC3RTCRegisterWindow(t *testing.T) {
	m := NewMBC3(make([]uint8, 0x4000*4), 4, true)
	m.Write(0x0000, 0x0A)
	m.Write(0x4000, 0x08) // select RTC seconds register
	m.Write(0xA000, 42)
	assert.Equal(t, uint8(42), m.Read(0xA000))

	m.Write(0x4000, 0x00) // back to RAM bank 0
	assert.NotEqual(t, uint8(42), m.Read(0xA000))
}

func TestMBC5NineBitBankNumber(t *testing.T) {
	rom := make([]uint8, 0x4000*257)
	rom[0x4000*256] = 0x77
	m := NewMBC5(rom, 0, false)

	m.Write(0x2000, 0x00)
	m.Write(0x3000, 0x01) // high bit sets bank to 256
	assert.Equal(t, uint8(0x77), m.Read(0x4000))
}

func TestMBC5RumbleMasksRAMBankBit(t *testing.T) {
	m := NewMBC5(make([]uint8, 0x4000*2), 8, true)
	m.Write(0x0000, 0x0A)
	m.Write(0x4000, 0x0F) // bit 3 would be the rumble motor line
	m.Write(0xA000, 0x99)
	m.Write(0x4000, 0x07)
	assert.Equal(t, uint8(0x99), m.Read(0xA000), "rumble cartridges only use the low 3 bits for RAM bank")
}
