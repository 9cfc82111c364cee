package physics

import (
	"math"
	"testing"

	"github.com/ceewaigit/bokeh-sub013/internal/camera"
)

func testConfig() Config {
	return Config{FPS: 30, BackstepToleranceMs: 34, SpringFrequency: 6, SpringDamping: 1}
}

func TestStepSeedsOnFirstFrame(t *testing.T) {
	sim := NewSimulator(testConfig())
	target := camera.Point{X: 0.3, Y: 0.7}

	st, res := sim.Step(State{}, Input{TimeMs: 1000, SourceMs: 1000, RecordingID: "rec-1", Target: target})

	if st.Phase != Seeded {
		t.Fatalf("phase = %v, want Seeded", st.Phase)
	}
	if st.X != target.X || st.Y != target.Y {
		t.Errorf("seed position = (%f, %f), want target", st.X, st.Y)
	}
	if st.VelX != 0 || st.VelY != 0 {
		t.Errorf("seed velocity = (%f, %f), want rest", st.VelX, st.VelY)
	}
	if res.Center != target || res.DeltaX != 0 || res.DeltaY != 0 {
		t.Errorf("seed output = %+v, want target at rest", res)
	}
}

func TestStepTracksTowardTarget(t *testing.T) {
	sim := NewSimulator(testConfig())
	target := camera.Point{X: 0.8, Y: 0.5}

	st, _ := sim.Step(State{}, Input{TimeMs: 0, RecordingID: "r", Target: camera.Point{X: 0.2, Y: 0.5}})

	prevDist := math.Abs(target.X - st.X)
	for i := 1; i <= 60; i++ {
		var res Result
		st, res = sim.Step(st, Input{TimeMs: float64(i) * 33.3, RecordingID: "r", Target: target})
		if st.Phase != Tracking {
			t.Fatalf("step %d: phase = %v, want Tracking", i, st.Phase)
		}
		if res.Center.X != st.X {
			t.Fatalf("step %d: result center diverged from state", i)
		}
		dist := math.Abs(target.X - st.X)
		if i > 10 && dist > prevDist {
			// Springs may overshoot early; after settling the distance
			// must shrink monotonically.
			t.Fatalf("step %d: distance grew from %f to %f", i, prevDist, dist)
		}
		prevDist = dist
	}

	if prevDist > 0.01 {
		t.Errorf("after 2s the camera is still %f away from the target", prevDist)
	}
}

func TestStepBackstepWithinToleranceKeepsState(t *testing.T) {
	sim := NewSimulator(testConfig())
	st, _ := sim.Step(State{}, Input{TimeMs: 1000, RecordingID: "r", Target: camera.Point{X: 0.5, Y: 0.5}})
	st, _ = sim.Step(st, Input{TimeMs: 1033, RecordingID: "r", Target: camera.Point{X: 0.9, Y: 0.5}})

	posX, velX := st.X, st.VelX

	// 20ms backwards: pause/resume rounding, not a seek.
	st, res := sim.Step(st, Input{TimeMs: 1013, RecordingID: "r", Target: camera.Point{X: 0.9, Y: 0.5}})
	if st.Phase != Tracking {
		t.Errorf("phase = %v, want Tracking preserved", st.Phase)
	}
	if st.X != posX || st.VelX != velX {
		t.Errorf("state not preserved: pos %f->%f vel %f->%f", posX, st.X, velX, st.VelX)
	}
	if st.LastTimeMs != 1013 {
		t.Errorf("timestamps not resynced: %f", st.LastTimeMs)
	}
	if res.DeltaX != 0 {
		t.Errorf("resync produced movement: %f", res.DeltaX)
	}
}

func TestStepBackwardJumpBeyondToleranceReseeds(t *testing.T) {
	sim := NewSimulator(testConfig())
	st, _ := sim.Step(State{}, Input{TimeMs: 5000, RecordingID: "r", Target: camera.Point{X: 0.5, Y: 0.5}})
	st, _ = sim.Step(st, Input{TimeMs: 5033, RecordingID: "r", Target: camera.Point{X: 0.9, Y: 0.5}})

	target := camera.Point{X: 0.1, Y: 0.2}
	st, res := sim.Step(st, Input{TimeMs: 1000, RecordingID: "r", Target: target})

	if st.Phase != Seeded {
		t.Fatalf("phase = %v, want Seeded after seek", st.Phase)
	}
	if st.X != target.X || st.VelX != 0 {
		t.Errorf("seek did not re-derive from effect state: pos %f vel %f", st.X, st.VelX)
	}
	if res.Center != target {
		t.Errorf("seek output = %+v, want target", res.Center)
	}
}

func TestStepRecordingSwitchReseeds(t *testing.T) {
	sim := NewSimulator(testConfig())
	st, _ := sim.Step(State{}, Input{TimeMs: 1000, RecordingID: "a", Target: camera.Point{X: 0.5, Y: 0.5}})
	st, _ = sim.Step(st, Input{TimeMs: 1033, RecordingID: "a", Target: camera.Point{X: 0.5, Y: 0.5}})

	st, _ = sim.Step(st, Input{TimeMs: 1066, RecordingID: "b", Target: camera.Point{X: 0.4, Y: 0.4}})
	if st.Phase != Seeded {
		t.Errorf("phase = %v, want Seeded after clip change", st.Phase)
	}
	if st.RecordingID != "b" {
		t.Errorf("recording id not adopted: %s", st.RecordingID)
	}
}

func TestStepNonFiniteTargetFallsBackToNeutral(t *testing.T) {
	sim := NewSimulator(testConfig())
	st, res := sim.Step(State{}, Input{TimeMs: 0, RecordingID: "r", Target: camera.Point{X: math.NaN(), Y: math.Inf(-1)}})
	if st.X != 0.5 || st.Y != 0.5 {
		t.Errorf("seed position = (%f, %f), want neutral center", st.X, st.Y)
	}
	if math.IsNaN(res.Center.X) {
		t.Error("NaN leaked into output")
	}
}

func TestStepDeterministicAcrossRuns(t *testing.T) {
	run := func() State {
		sim := NewSimulator(testConfig())
		st := State{}
		for i := 0; i < 50; i++ {
			st, _ = sim.Step(st, Input{
				TimeMs:      float64(i) * 1000 / 30,
				RecordingID: "r",
				Target:      camera.Point{X: 0.2 + float64(i%7)*0.1, Y: 0.5},
			})
		}
		return st
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("two identical runs diverged:\n%+v\n%+v", a, b)
	}
}
