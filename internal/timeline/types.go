package timeline

import (
	"github.com/ceewaigit/bokeh-sub013/internal/camera"
	"github.com/ceewaigit/bokeh-sub013/internal/easing"
)

// FollowStrategy controls where a zoom block points its camera center.
type FollowStrategy string

const (
	FollowMouse  FollowStrategy = "mouse"  // track the cursor continuously
	FollowCenter FollowStrategy = "center" // track, but settle on the center
	FollowManual FollowStrategy = "manual" // fixed target from the editor
	FollowSnap   FollowStrategy = "snap"   // jump to the cursor, no coupling
	FollowLead   FollowStrategy = "lead"   // track slightly ahead of motion
)

// TracksCursor reports whether the strategy reads the cursor position.
func (f FollowStrategy) TracksCursor() bool {
	switch f {
	case FollowMouse, FollowCenter, FollowSnap, FollowLead:
		return true
	default:
		return false
	}
}

// coupled reports whether pan and scale move as one motion. Snap jumps the
// center instead, and manual targets blend by scale progress.
func (f FollowStrategy) coupled() bool {
	switch f {
	case FollowMouse, FollowCenter, FollowLead:
		return true
	default:
		return false
	}
}

// ZoomBlock is a timed directive: zoom to a target scale and center over an
// interval. Created by the effect editor, read-only to this engine.
type ZoomBlock struct {
	ID          string         `yaml:"id"`
	StartMs     float64        `yaml:"start"`
	EndMs       float64        `yaml:"end"`
	TargetScale float64        `yaml:"scale"`
	TargetX     float64        `yaml:"x"` // screen pixels, manual targeting
	TargetY     float64        `yaml:"y"`
	IntroMs     float64        `yaml:"intro"`
	OutroMs     float64        `yaml:"outro"`
	Style       string         `yaml:"style"`
	Follow      FollowStrategy `yaml:"follow"`
}

// DurationMs returns the block length in milliseconds, never negative.
func (b *ZoomBlock) DurationMs() float64 {
	if b.EndMs <= b.StartMs {
		return 0
	}
	return b.EndMs - b.StartMs
}

// Contains reports whether timeline time t falls inside the block.
func (b *ZoomBlock) Contains(tMs float64) bool {
	return tMs >= b.StartMs && tMs < b.EndMs
}

// Params converts the block to the representation the camera math consumes.
func (b *ZoomBlock) Params() camera.BlockParams {
	return camera.BlockParams{
		StartMs:           b.StartMs,
		EndMs:             b.EndMs,
		TargetScale:       b.TargetScale,
		IntroMs:           b.IntroMs,
		OutroMs:           b.OutroMs,
		Style:             easing.Parse(b.Style),
		FollowCursor:      b.Follow.coupled(),
		HoldCenterOnOutro: b.Follow == FollowCenter,
	}
}

// TrackedOverlay is a non-zoom effect that still requires per-frame camera
// paths (for example a highlight pinned to screen content).
type TrackedOverlay struct {
	ID      string  `yaml:"id"`
	StartMs float64 `yaml:"start"`
	EndMs   float64 `yaml:"end"`
}

// BackgroundBlock frames content under a decorative mockup. When
// PanWithoutZoom is set the camera centers on (CenterX, CenterY) at scale 1.
type BackgroundBlock struct {
	StartMs        float64 `yaml:"start"`
	EndMs          float64 `yaml:"end"`
	CenterX        float64 `yaml:"x"` // normalized
	CenterY        float64 `yaml:"y"`
	PanWithoutZoom bool    `yaml:"pan_without_zoom"`
}

// CursorSample is one recorded cursor position, in recording pixels.
type CursorSample struct {
	TimeMs float64 `yaml:"t"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// Recording is per-source-clip metadata. Cursor samples are optional and
// must be sorted by time.
type Recording struct {
	ID     string         `yaml:"id"`
	Width  float64        `yaml:"width"`
	Height float64        `yaml:"height"`
	Cursor []CursorSample `yaml:"cursor,omitempty"`
}

// FrameLayoutItem maps an absolute output frame to its source clip and
// source-time offset. Produced by timeline layout, read-only here.
type FrameLayoutItem struct {
	Frame       int     `yaml:"frame"`
	RecordingID string  `yaml:"recording"`
	SourceMs    float64 `yaml:"source_ms"`
}

// CameraPathFrame is the per-frame output: the active block (if any), the
// normalized camera center, and the center's pixel delta from the previous
// frame. Immutable once computed.
type CameraPathFrame struct {
	BlockID string  `yaml:"block,omitempty"`
	CenterX float64 `yaml:"cx"`
	CenterY float64 `yaml:"cy"`
	VelX    float64 `yaml:"vx"`
	VelY    float64 `yaml:"vy"`

	Block *ZoomBlock `yaml:"-"`
}

// DefaultFrame is the fixed fallback when no path exists: no zoom, centered,
// at rest.
func DefaultFrame() CameraPathFrame {
	return CameraPathFrame{CenterX: 0.5, CenterY: 0.5}
}

// Center returns the frame's camera center as a point.
func (f CameraPathFrame) Center() camera.Point {
	return camera.Point{X: f.CenterX, Y: f.CenterY}
}
