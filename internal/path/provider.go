package path

import (
	"github.com/ceewaigit/bokeh-sub013/internal/physics"
	"github.com/ceewaigit/bokeh-sub013/internal/timeline"
)

// Provider serves per-frame camera paths. The two implementations share one
// contract: precomputed lookup for export and loaded projects, stateful
// simulation for live preview before a cache exists.
type Provider interface {
	FrameAt(index int) timeline.CameraPathFrame
}

// SelectProvider picks the provider for a session. Precomputed paths win
// whenever present; simulation runs only when some zoom or tracked-overlay
// effect exists; otherwise all per-frame computation is skipped.
func SelectProvider(p *timeline.Project, cache *Cache) Provider {
	if cache.Len() > 0 {
		return &CachedProvider{cache: cache}
	}
	if p != nil && p.HasMotionEffects() {
		return NewSimulatedProvider(p)
	}
	return staticProvider{}
}

// CachedProvider reads an immutable precomputed path.
type CachedProvider struct {
	cache *Cache
}

func (cp *CachedProvider) FrameAt(index int) timeline.CameraPathFrame {
	return cp.cache.Lookup(index)
}

// SimulatedProvider owns one physics state for a playback session and steps
// it per requested frame. Not safe for concurrent use; preview requests are
// strictly sequential.
type SimulatedProvider struct {
	project *timeline.Project
	sim     *physics.Simulator
	state   physics.State
	cursors *timeline.CursorCache
}

// NewSimulatedProvider builds the real-time provider for a project.
func NewSimulatedProvider(p *timeline.Project) *SimulatedProvider {
	set := p.Settings
	return &SimulatedProvider{
		project: p,
		sim: physics.NewSimulator(physics.Config{
			FPS:                 set.FPS,
			BackstepToleranceMs: set.BackstepToleranceMs,
			SpringFrequency:     set.SpringFrequency,
			SpringDamping:       set.SpringDamping,
		}),
		cursors: timeline.NewCursorCache(set.CursorCacheSize),
	}
}

// Reset discards the physics state, forcing a deterministic reseed on the
// next frame. Callers use it on clip changes or explicit seeks they detect
// upstream.
func (sp *SimulatedProvider) Reset() {
	sp.state = physics.State{}
}

func (sp *SimulatedProvider) FrameAt(index int) timeline.CameraPathFrame {
	layout := sp.project.Layout
	if len(layout) == 0 {
		return timeline.DefaultFrame()
	}
	if index < 0 {
		index = 0
	}
	if index >= len(layout) {
		index = len(layout) - 1
	}

	item := layout[index]
	tMs := timeline.FrameTimeMs(item.Frame, sp.project.Settings.FPS)
	block, target := sp.project.TargetAt(tMs, item, sp.cursors)

	st, res := sp.sim.Step(sp.state, physics.Input{
		TimeMs:      tMs,
		SourceMs:    item.SourceMs,
		RecordingID: item.RecordingID,
		Target:      target,
	})
	sp.state = st

	f := timeline.CameraPathFrame{
		CenterX: res.Center.X,
		CenterY: res.Center.Y,
		VelX:    res.DeltaX * sp.project.Width,
		VelY:    res.DeltaY * sp.project.Height,
		Block:   block,
	}
	if block != nil {
		f.BlockID = block.ID
	}
	return f
}

// staticProvider skips all computation when no motion effect exists.
type staticProvider struct{}

func (staticProvider) FrameAt(int) timeline.CameraPathFrame {
	return timeline.DefaultFrame()
}
