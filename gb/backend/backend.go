// Package backend renders a completed frame to a concrete output: a
// terminal, an SDL2 window, or nowhere at all for headless batch runs.
package backend

import "github.com/mrsharp/gbcore/gb/video"

// FrameSink receives a completed frame: Render calls SetPixel once for
// every pixel in row-major order, then calls Flush with the same frame.
type FrameSink interface {
	SetPixel(x, y int, rgba uint32)
	Flush(frame *video.FrameBuffer) error
}

// Render pushes every pixel of frame to sink and flushes it, the shape
// every frame sink is driven with once a frame completes.
func Render(sink FrameSink, frame *video.FrameBuffer) error {
	pixels := frame.Pixels()
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			sink.SetPixel(x, y, pixels[y*video.Width+x])
		}
	}
	return sink.Flush(frame)
}
