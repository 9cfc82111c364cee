package camera

// Compose computes the scale and pan for one frame of an active zoom block.
// tMs is timeline time in milliseconds, frameW/frameH are output dimensions
// in pixels, center is the camera-center target (cursor position or manual
// target, normalized). scaleOverride, when non-nil, substitutes the caller's
// smoothed scale for the deterministic phase scale; the pan formulas are
// shared between both execution models.
func Compose(block *BlockParams, tMs, frameW, frameH float64, center Point, scaleOverride *float64) Transform {
	if block == nil {
		return Identity()
	}

	frameW = sanitize(frameW, 0)
	frameH = sanitize(frameH, 0)
	center.X = sanitize(center.X, 0.5)
	center.Y = sanitize(center.Y, 0.5)

	duration := block.DurationMs()
	if duration <= 0 {
		return Identity()
	}

	elapsed := sanitize(tMs, block.StartMs) - block.StartMs
	target := sanitize(block.TargetScale, 1)
	if target < 1 {
		target = 1
	}

	scale := Scale(elapsed, duration, target, block.IntroMs, block.OutroMs, block.Style)
	if scaleOverride != nil {
		scale = sanitize(*scaleOverride, scale)
		if scale < 1 {
			scale = 1
		}
	}

	var panX, panY float64
	if block.FollowCursor {
		// Coupled motion: pan and scale move as one so the followed point
		// stays visually fixed on screen throughout the zoom.
		panX = (0.5 - center.X) * frameW * (scale - 1)
		panY = (0.5 - center.Y) * frameH * (scale - 1)
	} else {
		// Scale-coupled panning: full-strength pan only once the zoom has
		// arrived, zero pan at scale 1. Panning ahead of the zoom reads as
		// two separate motions.
		progress := ScaleProgress(scale, target)
		panX = (0.5 - center.X) * frameW * scale * progress
		panY = (0.5 - center.Y) * frameH * scale * progress
	}

	_, outro := NormalizeTransitions(duration, block.IntroMs, block.OutroMs, target)
	if outro > 0 && elapsed > duration-outro && !block.HoldCenterOnOutro {
		// Settle back to neutral framing as the zoom releases, on the same
		// eased progress the scale outro uses.
		eased := block.Style.Apply((elapsed - (duration - outro)) / outro)
		panX *= 1 - eased
		panY *= 1 - eased
	}

	return Transform{
		Scale: roundTo(scale, 4),
		PanX:  roundTo(panX, 3),
		PanY:  roundTo(panY, 3),
	}
}

// ComposeStatic centers the frame on the supplied camera-center without any
// zoom. Used to frame content under a decorative mockup when no zoom block
// is active.
func ComposeStatic(frameW, frameH float64, center Point) Transform {
	frameW = sanitize(frameW, 0)
	frameH = sanitize(frameH, 0)
	center.X = sanitize(center.X, 0.5)
	center.Y = sanitize(center.Y, 0.5)
	return Transform{
		Scale: 1,
		PanX:  roundTo((0.5-center.X)*frameW, 3),
		PanY:  roundTo((0.5-center.Y)*frameH, 3),
	}
}
