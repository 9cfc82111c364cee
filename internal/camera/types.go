package camera

import (
	"math"

	"github.com/ceewaigit/bokeh-sub013/internal/easing"
)

// Point is a camera-center coordinate in normalized space (0-1 covers the
// frame; values outside reveal overscan padding).
type Point struct {
	X float64
	Y float64
}

// Transform is the per-frame output consumed by the compositing layer.
type Transform struct {
	Scale       float64
	PanX        float64
	PanY        float64
	RefocusBlur float64
}

// Identity is the neutral transform used when no effect is active.
func Identity() Transform {
	return Transform{Scale: 1}
}

// MotionBlurState describes the directional blur derived from camera
// movement between two adjacent frames.
type MotionBlurState struct {
	Radius  float64 // blur length in output pixels
	Angle   float64 // radians, direction of content movement
	Opacity float64 // 0-1, ramped from radius to avoid popping
	VelX    float64 // content-space pixels per frame
	VelY    float64
}

// BlockParams carries the zoom-block fields the math needs, decoupled from
// the timeline's storage representation.
type BlockParams struct {
	StartMs     float64
	EndMs       float64
	TargetScale float64
	IntroMs     float64
	OutroMs     float64
	Style       easing.Style

	// FollowCursor selects the coupled pan formula used by cursor-tracking
	// blocks (everything except snap and manual targeting).
	FollowCursor bool

	// HoldCenterOnOutro suppresses the outro blend back to neutral framing
	// (cursor-follow blocks in center sub-mode).
	HoldCenterOnOutro bool
}

// DurationMs returns the block length, never negative.
func (b BlockParams) DurationMs() float64 {
	d := b.EndMs - b.StartMs
	if d < 0 || !isFinite(d) {
		return 0
	}
	return d
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sanitize replaces non-finite upstream values with a neutral fallback so a
// single bad sample cannot corrupt a whole cached path.
func sanitize(v, fallback float64) float64 {
	if !isFinite(v) {
		return fallback
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundTo rounds to the given number of decimal places. Pan uses 3 places
// and scale 4 to keep floating-point noise from jittering at high zoom.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
