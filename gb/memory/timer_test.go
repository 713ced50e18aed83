package memory

import (
	"testing"

	"github.com/mrsharp/gbcore/gb/addr"
	"github.com/stretchr/testify/assert"
)

func TestDivIncrementsEvery256Cycles(t *testing.T) {
	tm := &Timer{}
	tm.Tick(255)
	assert.Equal(t, byte(0), tm.Read(addr.DIV))
	tm.Tick(1)
	assert.Equal(t, byte(1), tm.Read(addr.DIV))
}

func TestDivWriteResets(t *testing.T) {
	tm := &Timer{}
	tm.Tick(256)
	assert.Equal(t, byte(1), tm.Read(addr.DIV))
	tm.Write(addr.DIV, 0x42)
	assert.Equal(t, byte(0), tm.Read(addr.DIV))
}

func TestTimerOverflowScenario(t *testing.T) {
	// TAC=0x05 (enabled, period 16), TIMA=0xFF, TMA=0x23.
	var irqFired bool
	tm := &Timer{InterruptHandler: func() { irqFired = true }}
	tm.Write(addr.TAC, 0x05)
	tm.Write(addr.TIMA, 0xFF)
	tm.Write(addr.TMA, 0x23)

	tm.Tick(16)
	assert.Equal(t, byte(0x00), tm.Read(addr.TIMA), "TIMA wraps to 0 on the tick that overflows")
	assert.False(t, irqFired, "reload and IRQ are deferred to the following tick")

	tm.Tick(1)
	assert.Equal(t, byte(0x23), tm.Read(addr.TIMA))
	assert.True(t, irqFired)
}

func TestTimerDisabledDoesNotTick(t *testing.T) {
	tm := &Timer{}
	tm.Write(addr.TAC, 0x00) // bit 2 clear: disabled
	tm.Tick(1024)
	assert.Equal(t, byte(0), tm.Read(addr.TIMA))
}

func TestTimerFrequencySelection(t *testing.T) {
	cases := []struct {
		tac    byte
		period int
	}{
		{0x04, 1024},
		{0x05, 16},
		{0x06, 64},
		{0x07, 256},
	}

	for _, c := range cases {
		tm := &Timer{}
		tm.Write(addr.TAC, c.tac)
		tm.Tick(c.period - 1)
		assert.Equal(t, byte(0), tm.Read(addr.TIMA))
		tm.Tick(1)
		assert.Equal(t, byte(1), tm.Read(addr.TIMA))
	}
}

func TestTACFrequencyChangeResetsCounter(t *testing.T) {
	tm := &Timer{}
	tm.Write(addr.TAC, 0x05) // period 16
	tm.Tick(15)
	tm.Write(addr.TAC, 0x04) // switch to period 1024; partial progress is dropped
	tm.Tick(1)
	assert.Equal(t, byte(0), tm.Read(addr.TIMA))
}
