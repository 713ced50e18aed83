package backend

import "github.com/mrsharp/gbcore/gb/video"

// Headless discards every frame; used for batch runs and tests that only
// care about CPU/memory state, not pixels.
type Headless struct{}

func NewHeadless() *Headless { return &Headless{} }

func (h *Headless) SetPixel(x, y int, rgba uint32) {}

func (h *Headless) Flush(frame *video.FrameBuffer) error { return nil }
