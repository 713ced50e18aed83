package memory

import (
	"github.com/mrsharp/gbcore/gb/addr"
	"github.com/mrsharp/gbcore/gb/bit"
)

// JoypadKey identifies one of the eight buttons on the DMG's controller.
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

// writeJoypad stores the P1 selection bits (4-5) and recomputes the
// visible register value.
func (b *Bus) writeJoypad(value uint8) {
	b.ram[addr.P1] = value & 0b0011_0000
	b.updateJoypadRegister()
}

// updateJoypadRegister recomputes P1's low nibble from whichever button
// group the selection bits (4-5) choose. 1 means released, 0 means
// pressed; bits 6-7 always read as 1.
func (b *Bus) updateJoypadRegister() {
	p1 := b.ram[addr.P1]
	result := uint8(0b1100_0000)
	result |= p1 & 0b0011_0000

	selectDpad := !bit.IsSet(4, p1)
	selectButtons := !bit.IsSet(5, p1)

	switch {
	case selectButtons && !selectDpad:
		result |= b.joypadButtons & 0x0F
	case selectDpad && !selectButtons:
		result |= b.joypadDpad & 0x0F
	case selectButtons && selectDpad:
		result |= b.joypadButtons & b.joypadDpad & 0x0F
	default:
		result |= 0x0F
	}

	b.ram[addr.P1] = result
}

// HandleKeyPress marks key as pressed and raises the Joypad interrupt if
// this is a 1-to-0 transition on a line the CPU is watching.
func (b *Bus) HandleKeyPress(key JoypadKey) {
	oldButtons, oldDpad := b.joypadButtons, b.joypadDpad
	b.setKey(key, false)

	p1 := b.ram[addr.P1]
	var watched uint8
	if !bit.IsSet(5, p1) {
		watched |= oldButtons &^ b.joypadButtons
	}
	if !bit.IsSet(4, p1) {
		watched |= oldDpad &^ b.joypadDpad
	}
	if watched != 0 {
		b.RequestInterrupt(addr.Joypad)
	}

	b.updateJoypadRegister()
}

// HandleKeyRelease marks key as released.
func (b *Bus) HandleKeyRelease(key JoypadKey) {
	b.setKey(key, true)
	b.updateJoypadRegister()
}

func (b *Bus) setKey(key JoypadKey, released bool) {
	var set func(index uint8, v uint8) uint8
	if released {
		set = bit.Set
	} else {
		set = bit.Reset
	}

	switch key {
	case JoypadRight:
		b.joypadDpad = set(0, b.joypadDpad)
	case JoypadLeft:
		b.joypadDpad = set(1, b.joypadDpad)
	case JoypadUp:
		b.joypadDpad = set(2, b.joypadDpad)
	case JoypadDown:
		b.joypadDpad = set(3, b.joypadDpad)
	case JoypadA:
		b.joypadButtons = set(0, b.joypadButtons)
	case JoypadB:
		b.joypadButtons = set(1, b.joypadButtons)
	case JoypadSelect:
		b.joypadButtons = set(2, b.joypadButtons)
	case JoypadStart:
		b.joypadButtons = set(3, b.joypadButtons)
	}
}
