package path

import "github.com/ceewaigit/bokeh-sub013/internal/timeline"

// Cache is an immutable, indexed camera path. Once constructed it is never
// written, so any number of readers may call Lookup concurrently.
type Cache struct {
	frames []timeline.CameraPathFrame
}

// NewCache wraps a precomputed path. The caller must not mutate frames
// afterwards.
func NewCache(frames []timeline.CameraPathFrame) *Cache {
	return &Cache{frames: frames}
}

// Len reports the number of cached frames.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.frames)
}

// Lookup returns the frame at index, clamped into the valid range. Playback
// must never fail on a slightly-overshot index at the end of a clip; an
// absent cache yields the neutral default frame.
func (c *Cache) Lookup(index int) timeline.CameraPathFrame {
	if c == nil || len(c.frames) == 0 {
		return timeline.DefaultFrame()
	}
	if index < 0 {
		index = 0
	}
	if index >= len(c.frames) {
		index = len(c.frames) - 1
	}
	return c.frames[index]
}
