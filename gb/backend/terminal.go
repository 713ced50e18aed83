package backend

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/mrsharp/gbcore/gb/video"
)

// Terminal renders the 160x144 framebuffer as shaded terminal cells using
// tcell, two pixels per character row (upper/lower half-block) to keep
// the aspect ratio close to square in a monospace grid.
type Terminal struct {
	screen tcell.Screen
	frame  [video.Width * video.Height]uint32
}

func NewTerminal() *Terminal {
	return &Terminal{}
}

// Init opens the terminal screen. Must be called before the first Flush.
func (t *Terminal) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("backend: terminal: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("backend: terminal: init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()
	t.screen = screen
	slog.Info("terminal backend initialized", "width", video.Width, "height", video.Height)
	return nil
}

func (t *Terminal) SetPixel(x, y int, rgba uint32) {
	t.frame[y*video.Width+x] = rgba
}

// Flush draws the buffered frame using the upper-half-block character so
// each terminal cell carries two independently shaded pixel rows.
func (t *Terminal) Flush(frame *video.FrameBuffer) error {
	if t.screen == nil {
		return fmt.Errorf("backend: terminal: Flush called before Init")
	}

	for y := 0; y < video.Height; y += 2 {
		for x := 0; x < video.Width; x++ {
			top := tcell.NewRGBColor(channels(t.frame[y*video.Width+x]))
			bottom := tcell.ColorBlack
			if y+1 < video.Height {
				bottom = tcell.NewRGBColor(channels(t.frame[(y+1)*video.Width+x]))
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
	t.screen.Show()
	return nil
}

func channels(rgba uint32) (r, g, b int32) {
	return int32(rgba >> 24 & 0xFF), int32(rgba >> 16 & 0xFF), int32(rgba >> 8 & 0xFF)
}

// PollKey returns the next pending key event, or nil if none is queued.
func (t *Terminal) PollKey() *tcell.EventKey {
	if t.screen == nil || !t.screen.HasPendingEvent() {
		return nil
	}
	if ev, ok := t.screen.PollEvent().(*tcell.EventKey); ok {
		return ev
	}
	return nil
}

// Close releases the terminal back to the shell.
func (t *Terminal) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}
