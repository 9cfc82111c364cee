package timeline

import (
	"sort"

	"github.com/ceewaigit/bokeh-sub013/internal/camera"
)

// CursorAt returns the normalized cursor position at a source time,
// interpolating linearly between the two surrounding samples. The second
// return is false when the recording carries no cursor track.
func (r *Recording) CursorAt(srcMs float64) (camera.Point, bool) {
	if r == nil || len(r.Cursor) == 0 || r.Width <= 0 || r.Height <= 0 {
		return camera.Point{X: 0.5, Y: 0.5}, false
	}

	samples := r.Cursor
	i := sort.Search(len(samples), func(i int) bool {
		return samples[i].TimeMs >= srcMs
	})

	var x, y float64
	switch {
	case i == 0:
		x, y = samples[0].X, samples[0].Y
	case i == len(samples):
		last := samples[len(samples)-1]
		x, y = last.X, last.Y
	default:
		a, b := samples[i-1], samples[i]
		span := b.TimeMs - a.TimeMs
		if span <= 0 {
			x, y = b.X, b.Y
			break
		}
		t := (srcMs - a.TimeMs) / span
		x = a.X + (b.X-a.X)*t
		y = a.Y + (b.Y-a.Y)*t
	}

	return camera.Point{X: x / r.Width, Y: y / r.Height}, true
}

type cursorKey struct {
	recording string
	ms        int64 // source time quantized to 0.1ms
}

// CursorCache memoizes interpolated cursor positions. It is an explicit
// object with a fixed capacity and FIFO eviction, owned by whichever session
// created it; results are exact, so hits and misses are indistinguishable to
// callers.
type CursorCache struct {
	capacity int
	entries  map[cursorKey]camera.Point
	order    []cursorKey
}

// NewCursorCache creates a cache holding up to capacity positions.
// A capacity of 0 or less disables caching.
func NewCursorCache(capacity int) *CursorCache {
	return &CursorCache{
		capacity: capacity,
		entries:  make(map[cursorKey]camera.Point, capacity),
	}
}

// At resolves the cursor position for a recording at a source time, serving
// repeated lookups from the cache.
func (c *CursorCache) At(rec *Recording, srcMs float64) (camera.Point, bool) {
	if c == nil || c.capacity <= 0 || rec == nil {
		return rec.CursorAt(srcMs)
	}

	key := cursorKey{recording: rec.ID, ms: int64(srcMs * 10)}
	if p, ok := c.entries[key]; ok {
		return p, true
	}

	p, ok := rec.CursorAt(srcMs)
	if !ok {
		return p, false
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = p
	c.order = append(c.order, key)
	return p, true
}

// Len reports the number of cached positions.
func (c *CursorCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
