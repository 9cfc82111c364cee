// Package path produces and serves per-frame camera paths. The precomputer
// is a pure function of the project data, so the bulk pass can be split
// across workers and its output shared read-only with any number of export
// readers.
package path

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ceewaigit/bokeh-sub013/internal/timeline"
)

// Precompute builds the full camera path, one frame per layout item. Each
// frame depends only on its own index and the static effect/recording data;
// two runs over the same project yield identical arrays.
func Precompute(p *timeline.Project) []timeline.CameraPathFrame {
	frames := make([]timeline.CameraPathFrame, len(p.Layout))
	cursors := timeline.NewCursorCache(p.Settings.CursorCacheSize)
	for i := range p.Layout {
		frames[i] = computeFrame(p, i, cursors)
	}
	return frames
}

// PrecomputeParallel splits the frame range across workers. Output is
// identical to Precompute; each worker writes a disjoint slice of one
// preallocated array, so no synchronization is needed beyond the join.
func PrecomputeParallel(ctx context.Context, p *timeline.Project, workers int) ([]timeline.CameraPathFrame, error) {
	n := len(p.Layout)
	if n == 0 {
		return nil, nil
	}
	if workers <= 1 {
		return Precompute(p), nil
	}
	if workers > n {
		workers = n
	}

	frames := make([]timeline.CameraPathFrame, n)
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Per-worker cache: lookups stay deterministic because cached
			// values are exact.
			cursors := timeline.NewCursorCache(p.Settings.CursorCacheSize)
			for i := start; i < end; i++ {
				frames[i] = computeFrame(p, i, cursors)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

// computeFrame resolves one frame of the path from static inputs only.
// The previous frame's center is re-derived, not read from a neighbor's
// output, which is what keeps the pass order-independent.
func computeFrame(p *timeline.Project, i int, cursors *timeline.CursorCache) timeline.CameraPathFrame {
	item := p.Layout[i]
	tMs := timeline.FrameTimeMs(item.Frame, p.Settings.FPS)

	block, center := p.TargetAt(tMs, item, cursors)

	f := timeline.CameraPathFrame{
		CenterX: center.X,
		CenterY: center.Y,
		Block:   block,
	}
	if block != nil {
		f.BlockID = block.ID
	}

	if i > 0 && p.Layout[i-1].RecordingID == item.RecordingID {
		prevItem := p.Layout[i-1]
		prevT := timeline.FrameTimeMs(prevItem.Frame, p.Settings.FPS)
		_, prev := p.TargetAt(prevT, prevItem, cursors)
		f.VelX = (center.X - prev.X) * p.Width
		f.VelY = (center.Y - prev.Y) * p.Height
	}

	return f
}
