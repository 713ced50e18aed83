package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrsharp/gbcore/gb/addr"
)

func TestNR52GatesRegisterWrites(t *testing.T) {
	a := New()

	a.WriteRegister(addr.NR10, 0x7F)
	assert.Equal(t, byte(0x80), a.ReadRegister(addr.NR10), "writes while powered off are ignored")

	a.WriteRegister(addr.NR52, 0x80)
	a.WriteRegister(addr.NR10, 0x7F)
	assert.Equal(t, byte(0xFF), a.ReadRegister(addr.NR10))
}

func TestPowerOffClearsRegistersButNotWaveRAM(t *testing.T) {
	a := New()
	a.WriteRegister(addr.NR52, 0x80)
	a.WriteRegister(addr.NR11, 0x3F)
	a.WriteRegister(addr.WaveRAMStart, 0xAB)

	a.WriteRegister(addr.NR52, 0x00)

	assert.Equal(t, byte(0b0011_1111), a.ReadRegister(addr.NR11))
	assert.Equal(t, byte(0xAB), a.ReadRegister(addr.WaveRAMStart), "wave RAM survives power-off")
	assert.Equal(t, byte(0b0111_0000), a.ReadRegister(addr.NR52), "power bit clear, bits 4-6 forced high")
}

func TestWaveRAMWritableWhilePoweredOff(t *testing.T) {
	a := New()
	a.WriteRegister(addr.WaveRAMStart, 0x55)
	assert.Equal(t, byte(0x55), a.ReadRegister(addr.WaveRAMStart), "wave RAM is writable even while the APU is off")
}

func TestReadOnlyFrequencyBytesReadAsFF(t *testing.T) {
	a := New()
	a.WriteRegister(addr.NR52, 0x80)
	a.WriteRegister(addr.NR13, 0x42)
	assert.Equal(t, byte(0xFF), a.ReadRegister(addr.NR13))
}
