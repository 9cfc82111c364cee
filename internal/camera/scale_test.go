package camera

import (
	"math"
	"testing"

	"github.com/ceewaigit/bokeh-sub013/internal/easing"
)

func TestScaleThreePhases(t *testing.T) {
	// 2000ms block, target 3, intro 600, outro 650.
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 1},
		{600, 3},
		{1000, 3},
		{1350, 3},
		{2000, 1},
	}

	for _, tt := range tests {
		got := Scale(tt.elapsed, 2000, 3, 600, 650, easing.Smoother)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Scale at %.0fms = %f, want %f", tt.elapsed, got, tt.want)
		}
	}
}

func TestScaleStaysInBounds(t *testing.T) {
	styles := []easing.Style{easing.Linear, easing.Cubic, easing.Expo, easing.Sigmoid, easing.Sine, easing.Smoother}

	for _, style := range styles {
		for elapsed := -100.0; elapsed <= 2200; elapsed += 7 {
			got := Scale(elapsed, 2000, 2.5, 500, 700, style)
			if got < 1 || got > 2.5 {
				t.Fatalf("%s: Scale at %.0fms = %f, out of [1, 2.5]", style, elapsed, got)
			}
		}
	}
}

func TestScaleContinuousAtPhaseBoundaries(t *testing.T) {
	const eps = 0.01 // ms

	boundaries := []float64{600, 1350} // intro end, outro start
	for _, b := range boundaries {
		before := Scale(b-eps, 2000, 3, 600, 650, easing.Smoother)
		after := Scale(b+eps, 2000, 3, 600, 650, easing.Smoother)
		if math.Abs(after-before) > 0.01 {
			t.Errorf("jump at %.0fms: %f -> %f", b, before, after)
		}
	}
}

func TestScaleDegenerateBlock(t *testing.T) {
	if got := Scale(100, 0, 3, 200, 200, easing.Smoother); got != 1 {
		t.Errorf("zero duration: got %f, want 1", got)
	}
	if got := Scale(100, -50, 3, 200, 200, easing.Smoother); got != 1 {
		t.Errorf("negative duration: got %f, want 1", got)
	}
}

func TestScaleExplicitZeroIsInstant(t *testing.T) {
	// Zero intro: the block is at target from the very first instant.
	if got := Scale(0, 2000, 3, 0, 650, easing.Smoother); got != 3 {
		t.Errorf("zero intro at elapsed 0: got %f, want 3", got)
	}
}

func TestScaleNonFiniteInputs(t *testing.T) {
	if got := Scale(math.NaN(), 2000, 3, 600, 650, easing.Smoother); got < 1 || got > 3 {
		t.Errorf("NaN elapsed: got %f", got)
	}
	if got := Scale(500, 2000, math.Inf(1), 600, 650, easing.Smoother); got != 1 {
		t.Errorf("Inf target treated as neutral: got %f, want 1", got)
	}
}

func TestNormalizeTransitionsMinimumDuration(t *testing.T) {
	tests := []struct {
		target  float64
		wantMin float64
	}{
		{5.0, 900},
		{4.0, 800},
		{3.0, 600},
		{2.0, 400},
		{1.5, 300},
		{1.2, 200},
	}

	for _, tt := range tests {
		intro, _ := NormalizeTransitions(10000, 50, 0, tt.target)
		if intro != tt.wantMin {
			t.Errorf("target %.1f: intro raised to %f, want %f", tt.target, intro, tt.wantMin)
		}
	}

	// An explicit zero means instant and is never raised.
	intro, outro := NormalizeTransitions(10000, 0, 0, 5)
	if intro != 0 || outro != 0 {
		t.Errorf("explicit zero raised: intro %f outro %f", intro, outro)
	}
}

func TestNormalizeTransitionsProportionalOverlap(t *testing.T) {
	// 600+650 into a 1000ms block: both shrink by the same 1000/1250 ratio.
	intro, outro := NormalizeTransitions(1000, 600, 650, 3)

	if math.Abs(intro+outro-1000) > 1e-9 {
		t.Errorf("intro+outro = %f, want exactly the duration", intro+outro)
	}
	if math.Abs(intro/outro-600.0/650.0) > 1e-9 {
		t.Errorf("ratio not preserved: %f / %f", intro, outro)
	}
}

func TestScaleProgressGuardsDivisionByZero(t *testing.T) {
	if got := ScaleProgress(1.0, 1.0); got != 1 {
		t.Errorf("target 1: got %f, want fixed blend 1", got)
	}
	if got := ScaleProgress(1.5, 2.0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("midway: got %f, want 0.5", got)
	}
}
