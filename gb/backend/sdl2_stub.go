//go:build !sdl2

package backend

import (
	"fmt"

	"github.com/mrsharp/gbcore/gb/video"
)

// SDL2 is a stub used when the module is built without the sdl2 tag (and
// without SDL2 development headers available). Init always fails with a
// clear message instead of the build failing outright.
type SDL2 struct{}

func NewSDL2(title string, scale int32) *SDL2 { return &SDL2{} }

func (s *SDL2) Init(title string) error {
	return fmt.Errorf("backend: sdl2: not built with -tags sdl2")
}

func (s *SDL2) SetPixel(x, y int, rgba uint32) {}

func (s *SDL2) Flush(frame *video.FrameBuffer) error {
	return fmt.Errorf("backend: sdl2: not built with -tags sdl2")
}

func (s *SDL2) PollQuit() bool { return false }

func (s *SDL2) Close() {}
