package camera

import (
	"math"

	"github.com/ceewaigit/bokeh-sub013/internal/easing"
)

const (
	// Transitions shorter than refocusMinMs produce no defocus at all.
	// From refocusMinMs the effect starts at refocusFloor strength and
	// ramps to full at refocusFullMs. Quick cuts should not flash.
	refocusMinMs  = 150.0
	refocusFullMs = 600.0
	refocusFloor  = 0.1

	// Internal mapping of the 0-100 user settings.
	maxBlurRadiusPx = 32.0 // radius at intensity 100
	maxThresholdPx  = 40.0 // speed threshold at setting 100, px/frame
	softKneePx      = 8.0  // smoothstep ramp width above the threshold
	radiusPerPx     = 0.35 // radius gained per excess px/frame at intensity 100
	opacityFullAtPx = 4.0  // radius at which the overlay reaches full opacity
)

// Refocus derives the transient defocus intensity at elapsed milliseconds
// into a block. It follows a bell curve over each transition, peaks
// mid-transition, and is exactly zero during hold and for transitions
// shorter than 150ms.
func Refocus(elapsedMs, durationMs, targetScale, introMs, outroMs float64, style easing.Style, maxBlur float64) float64 {
	elapsedMs = sanitize(elapsedMs, 0)
	durationMs = sanitize(durationMs, 0)
	maxBlur = sanitize(maxBlur, 0)
	if durationMs <= 0 || maxBlur <= 0 {
		return 0
	}

	intro, outro := NormalizeTransitions(durationMs, introMs, outroMs, targetScale)

	var progress, span float64
	switch {
	case elapsedMs >= 0 && elapsedMs < intro:
		progress, span = elapsedMs/intro, intro
	case outro > 0 && elapsedMs > durationMs-outro && elapsedMs <= durationMs:
		progress, span = (elapsedMs-(durationMs-outro))/outro, outro
	default:
		return 0
	}

	if span < refocusMinMs {
		return 0
	}
	strength := refocusFloor + (1-refocusFloor)*clamp01((span-refocusMinMs)/(refocusFullMs-refocusMinMs))
	return math.Sin(math.Pi*style.Apply(progress)) * maxBlur * strength
}

// BlurSettings are the user-facing motion blur controls, both on a 0-100
// scale, mapped internally to pixel radii and velocity thresholds.
type BlurSettings struct {
	Enabled   bool
	Intensity float64
	Threshold float64
}

// DeriveMotionBlur converts the camera-center delta between two adjacent
// frames into a directional blur. The delta is taken in content space
// (scaled by the average zoom and the frame size, sign inverted because
// content moves opposite the camera). Pure zoom changes with a stationary
// center produce no blur.
func DeriveMotionBlur(prev, cur Point, prevScale, curScale, frameW, frameH float64, set BlurSettings) MotionBlurState {
	if !set.Enabled {
		return MotionBlurState{}
	}

	prev.X = sanitize(prev.X, 0.5)
	prev.Y = sanitize(prev.Y, 0.5)
	cur.X = sanitize(cur.X, 0.5)
	cur.Y = sanitize(cur.Y, 0.5)
	avgScale := (sanitize(prevScale, 1) + sanitize(curScale, 1)) / 2
	frameW = sanitize(frameW, 0)
	frameH = sanitize(frameH, 0)

	velX := -(cur.X - prev.X) * frameW * avgScale
	velY := -(cur.Y - prev.Y) * frameH * avgScale

	speed := math.Hypot(velX, velY)
	threshold := clamp01(set.Threshold/100) * maxThresholdPx
	excess := speed - threshold
	if excess <= 0 {
		return MotionBlurState{VelX: velX, VelY: velY}
	}

	// Soft knee: ramp the blur in over the first few px/frame above the
	// threshold instead of switching on abruptly.
	knee := smoothstep(clamp01(excess / softKneePx))
	intensity := clamp01(set.Intensity / 100)
	radius := excess * radiusPerPx * intensity * knee
	maxRadius := intensity * maxBlurRadiusPx
	if radius > maxRadius {
		radius = maxRadius
	}

	return MotionBlurState{
		Radius:  roundTo(radius, 3),
		Angle:   math.Atan2(velY, velX),
		Opacity: clamp01(radius / opacityFullAtPx),
		VelX:    velX,
		VelY:    velY,
	}
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
