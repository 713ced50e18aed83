package interrupt

import (
	"testing"

	"github.com/mrsharp/gbcore/gb/addr"
	"github.com/stretchr/testify/assert"
)

func TestEILatencyTakesTwoInstructionBoundaries(t *testing.T) {
	c := New()
	c.RequestEnable()
	assert.False(t, c.Enabled(), "EI must not take effect before the instruction following it")

	c.Step() // boundary at the end of EI itself
	assert.False(t, c.Enabled(), "still not active until that instruction's own boundary passes")

	c.Step()
	assert.True(t, c.Enabled())
}

func TestDIClearsImmediately(t *testing.T) {
	c := New()
	c.EnableNow()
	assert.True(t, c.Enabled())

	c.DisableNow()
	assert.False(t, c.Enabled())
}

func TestDIImmediatelyAfterEINeverEnables(t *testing.T) {
	// The classic "EI; DI" sequence: DI is the very next instruction and
	// must cancel EI's pending latch before it ever promotes.
	c := New()
	c.RequestEnable()
	c.Step()
	c.DisableNow()
	c.Step()
	c.Step()
	assert.False(t, c.Enabled())
}

func TestPendingPriority(t *testing.T) {
	// Timer (bit 2) and VBlank (bit 0) both pending; VBlank wins.
	ie := addr.VBlank.Bit() | addr.Timer.Bit()
	iflag := addr.VBlank.Bit() | addr.Timer.Bit()

	got, ok := Pending(ie, iflag)
	assert.True(t, ok)
	assert.Equal(t, addr.VBlank, got)
}

func TestPendingRequiresBothIEAndIF(t *testing.T) {
	_, ok := Pending(addr.Timer.Bit(), addr.VBlank.Bit())
	assert.False(t, ok)
}

func TestAcknowledgeClearsIME(t *testing.T) {
	c := New()
	c.EnableNow()
	c.Acknowledge()
	assert.False(t, c.Enabled())
}
