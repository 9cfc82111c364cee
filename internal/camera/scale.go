package camera

import "github.com/ceewaigit/bokeh-sub013/internal/easing"

// MinTransitionMs returns the shortest intro/outro that still reads as
// smooth for a given target scale. Deeper zooms travel further per unit of
// progress and need more time.
func MinTransitionMs(targetScale float64) float64 {
	switch {
	case targetScale >= 5:
		return 900
	case targetScale >= 4:
		return 800
	case targetScale >= 3:
		return 600
	case targetScale >= 2:
		return 400
	case targetScale >= 1.5:
		return 300
	default:
		return 200
	}
}

// NormalizeTransitions returns the effective intro and outro durations for
// a block. Non-zero requested durations are raised to the minimum for the
// target scale; an explicit zero means instant and is respected. When the
// pair would overlap, both shrink by the same ratio so neither transition
// is cut off asymmetrically.
func NormalizeTransitions(durationMs, introMs, outroMs, targetScale float64) (intro, outro float64) {
	durationMs = sanitize(durationMs, 0)
	introMs = sanitize(introMs, 0)
	outroMs = sanitize(outroMs, 0)
	if durationMs <= 0 {
		return 0, 0
	}

	min := MinTransitionMs(targetScale)
	if introMs > 0 && introMs < min {
		introMs = min
	}
	if outroMs > 0 && outroMs < min {
		outroMs = min
	}

	if sum := introMs + outroMs; sum > durationMs {
		ratio := durationMs / sum
		introMs *= ratio
		outroMs *= ratio
	}
	return introMs, outroMs
}

// Scale returns the instantaneous zoom scale at elapsed milliseconds into a
// block, using the three-phase intro/hold/outro model. The result is always
// within [1, targetScale].
func Scale(elapsedMs, durationMs, targetScale, introMs, outroMs float64, style easing.Style) float64 {
	elapsedMs = sanitize(elapsedMs, 0)
	durationMs = sanitize(durationMs, 0)
	targetScale = sanitize(targetScale, 1)
	if targetScale < 1 {
		targetScale = 1
	}
	if durationMs <= 0 {
		return 1
	}
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	if elapsedMs > durationMs {
		elapsedMs = durationMs
	}

	intro, outro := NormalizeTransitions(durationMs, introMs, outroMs, targetScale)

	if elapsedMs < intro {
		eased := style.Apply(elapsedMs / intro)
		return 1 + (targetScale-1)*eased
	}

	if outro > 0 && elapsedMs > durationMs-outro {
		eased := style.Apply((elapsedMs - (durationMs - outro)) / outro)
		s := targetScale - (targetScale-1)*eased
		if s < 1 {
			s = 1
		}
		return s
	}

	return targetScale
}

// ScaleProgress reports how far a scale has travelled between 1 and the
// target, clamped to [0,1]. A target at or below 1 has nowhere to travel,
// so the blend short-circuits to fully applied instead of dividing by zero.
func ScaleProgress(scale, targetScale float64) float64 {
	if targetScale <= 1 {
		return 1
	}
	return clamp01((scale - 1) / (targetScale - 1))
}
