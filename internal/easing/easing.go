package easing

import "math"

// Style identifies one of the fixed transition curves.
type Style string

const (
	Linear   Style = "linear"
	Cubic    Style = "cubic"
	Expo     Style = "expo"
	Sigmoid  Style = "sigmoid"
	Sine     Style = "sine"
	Smoother Style = "smoother"
)

// Parse maps a style tag to a known Style. Unknown or empty tags fall back
// to Smoother, which is the default transition curve.
func Parse(tag string) Style {
	switch Style(tag) {
	case Linear, Cubic, Expo, Sigmoid, Sine, Smoother:
		return Style(tag)
	default:
		return Smoother
	}
}

// Apply maps progress in [0,1] to eased progress in [0,1].
// Inputs are clamped; non-finite inputs ease to 0.
func (s Style) Apply(t float64) float64 {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	switch s {
	case Linear:
		return t
	case Cubic:
		return easeInOutCubic(t)
	case Expo:
		return easeInOutExpo(t)
	case Sigmoid:
		return sigmoid(t)
	case Sine:
		return -(math.Cos(math.Pi*t) - 1) / 2
	default: // Smoother
		return t * t * t * (t*(t*6-15) + 10)
	}
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func easeInOutExpo(t float64) float64 {
	if t < 0.5 {
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

// sigmoid is a logistic curve renormalized so the endpoints land exactly
// on 0 and 1.
func sigmoid(t float64) float64 {
	const k = 10.0
	raw := func(x float64) float64 { return 1 / (1 + math.Exp(-k*(x-0.5))) }
	lo, hi := raw(0), raw(1)
	return (raw(t) - lo) / (hi - lo)
}
