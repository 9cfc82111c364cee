package timeline

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ceewaigit/bokeh-sub013/internal/camera"
	"github.com/ceewaigit/bokeh-sub013/internal/config"
)

// Project bundles everything the engine consumes for one timeline: output
// geometry, recordings, effect blocks, the frame layout, and settings.
type Project struct {
	Version    string            `yaml:"version"`
	Width      float64           `yaml:"width"` // output frame, pixels
	Height     float64           `yaml:"height"`
	Recordings []Recording       `yaml:"recordings"`
	Zooms      []ZoomBlock       `yaml:"zooms,omitempty"`
	Overlays   []TrackedOverlay  `yaml:"overlays,omitempty"`
	Background []BackgroundBlock `yaml:"background,omitempty"`
	Layout     []FrameLayoutItem `yaml:"layout"`
	Settings   config.Settings   `yaml:"settings"`
}

// ReadProject loads a project from a YAML file and validates it.
func ReadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project %s: %w", path, err)
	}
	return &p, nil
}

// WriteProject writes a project to a YAML file.
func WriteProject(p *Project, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks invariants and normalizes what it can: block times must
// be ordered, target scales below 1 are raised to 1, blocks and layout are
// sorted by time.
func (p *Project) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("output dimensions must be positive, got %gx%g", p.Width, p.Height)
	}

	for i := range p.Zooms {
		b := &p.Zooms[i]
		if b.EndMs <= b.StartMs {
			return fmt.Errorf("zoom block %q: end %.0fms not after start %.0fms", b.ID, b.EndMs, b.StartMs)
		}
		if b.TargetScale < 1 {
			b.TargetScale = 1
		}
		if b.Follow == "" {
			b.Follow = FollowManual
		}
	}

	sort.SliceStable(p.Zooms, func(i, j int) bool {
		return p.Zooms[i].StartMs < p.Zooms[j].StartMs
	})
	sort.SliceStable(p.Layout, func(i, j int) bool {
		return p.Layout[i].Frame < p.Layout[j].Frame
	})

	p.Settings.Normalize()
	return nil
}

// RecordingByID finds a recording, or nil.
func (p *Project) RecordingByID(id string) *Recording {
	for i := range p.Recordings {
		if p.Recordings[i].ID == id {
			return &p.Recordings[i]
		}
	}
	return nil
}

// ActiveZoom returns the zoom block covering timeline time t. When blocks
// overlap the later one wins, matching editor stacking order.
func (p *Project) ActiveZoom(tMs float64) *ZoomBlock {
	var active *ZoomBlock
	for i := range p.Zooms {
		if p.Zooms[i].Contains(tMs) {
			active = &p.Zooms[i]
		}
	}
	return active
}

// ActiveBackground returns the background block covering time t, or nil.
func (p *Project) ActiveBackground(tMs float64) *BackgroundBlock {
	for i := range p.Background {
		b := &p.Background[i]
		if tMs >= b.StartMs && tMs < b.EndMs {
			return b
		}
	}
	return nil
}

// HasMotionEffects reports whether any zoom or tracked-overlay effect
// exists. When false, per-frame camera computation can be skipped entirely.
func (p *Project) HasMotionEffects() bool {
	return len(p.Zooms) > 0 || len(p.Overlays) > 0
}

// FrameTimeMs converts an absolute frame index to timeline milliseconds.
func FrameTimeMs(frame, fps int) float64 {
	if fps <= 0 {
		return 0
	}
	return float64(frame) * 1000 / float64(fps)
}

// TargetAt resolves the active zoom block and its deterministic camera-center
// target at a timeline time. item supplies the source clip and source time
// for cursor lookups; cache may be nil.
//
// The resolution order is: cursor track for cursor-following strategies
// (snap reads the cursor where it was at block start), the block's manual
// target otherwise, the background center for pan-without-zoom stretches,
// and the neutral center when nothing is active.
func (p *Project) TargetAt(tMs float64, item FrameLayoutItem, cache *CursorCache) (*ZoomBlock, camera.Point) {
	block := p.ActiveZoom(tMs)
	if block == nil {
		if bg := p.ActiveBackground(tMs); bg != nil && bg.PanWithoutZoom {
			return nil, camera.Point{X: bg.CenterX, Y: bg.CenterY}
		}
		return nil, camera.Point{X: 0.5, Y: 0.5}
	}

	rec := p.RecordingByID(item.RecordingID)

	if block.Follow.TracksCursor() && rec != nil && len(rec.Cursor) > 0 {
		srcMs := item.SourceMs
		if block.Follow == FollowSnap {
			// Snap targets where the cursor was when the block began.
			srcMs = item.SourceMs - (tMs - block.StartMs)
		}
		if pt, ok := cache.At(rec, srcMs); ok {
			return block, pt
		}
	}

	// Manual target, in recording pixels. An all-zero target means the
	// editor never placed one, so the block centers instead of pinning the
	// top-left corner.
	if rec != nil && rec.Width > 0 && rec.Height > 0 && (block.TargetX != 0 || block.TargetY != 0) {
		return block, camera.Point{X: block.TargetX / rec.Width, Y: block.TargetY / rec.Height}
	}
	return block, camera.Point{X: 0.5, Y: 0.5}
}
