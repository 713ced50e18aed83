//go:build sdl2

package backend

import (
	"fmt"
	"unsafe"

	"github.com/mrsharp/gbcore/gb/video"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL2 renders the framebuffer into a scaled, vsynced window. Building it
// requires SDL2 development libraries; see sdl2_stub.go for the default
// build.
type SDL2 struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	scale    int32
}

func NewSDL2(title string, scale int32) *SDL2 {
	return &SDL2{scale: scale}
}

func (s *SDL2) Init(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("backend: sdl2: init: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(video.Width)*s.scale, int32(video.Height)*s.scale, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("backend: sdl2: create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("backend: sdl2: create renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_STREAMING,
		int32(video.Width), int32(video.Height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("backend: sdl2: create texture: %w", err)
	}
	s.texture = texture

	return nil
}

func (s *SDL2) SetPixel(x, y int, rgba uint32) {}

// Flush uploads the whole frame to the streaming texture in one go
// rather than tracking per-pixel SetPixel calls, since SDL2 wants a
// contiguous buffer anyway.
func (s *SDL2) Flush(frame *video.FrameBuffer) error {
	pixels := frame.Pixels()
	if err := s.texture.Update(nil, unsafe.Pointer(&pixels[0]), video.Width*4); err != nil {
		return fmt.Errorf("backend: sdl2: update texture: %w", err)
	}
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
	return nil
}

func (s *SDL2) PollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return true
		}
	}
	return false
}

func (s *SDL2) Close() {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
}
