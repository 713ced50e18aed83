// Package input translates backend key events into joypad presses and
// releases on the memory bus.
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mrsharp/gbcore/gb/memory"
)

// TerminalKeyMap is the default tcell key binding: arrow keys for the
// D-pad, Enter for Start, Backspace for Select. Z/X for A/B are in
// TerminalRuneMap.
var TerminalKeyMap = map[tcell.Key]memory.JoypadKey{
	tcell.KeyUp:        memory.JoypadUp,
	tcell.KeyDown:      memory.JoypadDown,
	tcell.KeyLeft:      memory.JoypadLeft,
	tcell.KeyRight:     memory.JoypadRight,
	tcell.KeyEnter:     memory.JoypadStart,
	tcell.KeyBackspace: memory.JoypadSelect,
	tcell.KeyBackspace2: memory.JoypadSelect,
}

// TerminalRuneMap covers the bindings tcell reports as plain runes rather
// than named keys.
var TerminalRuneMap = map[rune]memory.JoypadKey{
	'z': memory.JoypadA,
	'x': memory.JoypadB,
}

// HandleTerminalKey presses (or, for keys tcell can't report release
// events for, immediately releases) the joypad key bound to ev.
func HandleTerminalKey(bus *memory.Bus, ev *tcell.EventKey) {
	if jk, ok := TerminalKeyMap[ev.Key()]; ok {
		bus.HandleKeyPress(jk)
		return
	}
	if jk, ok := TerminalRuneMap[ev.Rune()]; ok {
		bus.HandleKeyPress(jk)
	}
}
