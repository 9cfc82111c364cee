// Package physics holds the stateful camera simulation used by the
// real-time preview path. The caller owns the State struct and passes it
// into Step; the package never keeps cross-call state of its own.
package physics

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/ceewaigit/bokeh-sub013/internal/camera"
)

// Phase tracks where the simulation is in its lifecycle.
type Phase int

const (
	Uninitialized Phase = iota
	Seeded              // just re-derived from effect state, at rest
	Tracking            // spring-following the target
)

// Config holds the simulation tunables for one playback session.
type Config struct {
	FPS                 int
	BackstepToleranceMs float64
	SpringFrequency     float64
	SpringDamping       float64
}

// State is the mutable camera state for one uninterrupted playback run.
// Position is the normalized camera center; velocity is in normalized units
// per frame.
type State struct {
	Phase        Phase
	X, Y         float64
	VelX, VelY   float64
	LastTimeMs   float64
	LastSourceMs float64
	RecordingID  string
}

// Input is everything one simulation step needs: the current times, the
// source clip, and the deterministic camera-center target resolved from the
// active effects.
type Input struct {
	TimeMs      float64
	SourceMs    float64
	RecordingID string
	Target      camera.Point
}

// Result is the step's frame output: the camera center to render and the
// center's normalized delta for this frame.
type Result struct {
	Center camera.Point
	DeltaX float64
	DeltaY float64
}

// Simulator steps camera physics. It is not safe for concurrent use; the
// preview path is a single sequential stream of frames.
type Simulator struct {
	cfg    Config
	spring harmonica.Spring
}

// NewSimulator builds a simulator for one playback session.
func NewSimulator(cfg Config) *Simulator {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.BackstepToleranceMs <= 0 {
		cfg.BackstepToleranceMs = 34
	}
	if cfg.SpringFrequency <= 0 {
		cfg.SpringFrequency = 6.0
	}
	if cfg.SpringDamping <= 0 {
		cfg.SpringDamping = 1.0
	}
	return &Simulator{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.SpringFrequency, cfg.SpringDamping),
	}
}

// Step advances the simulation by one frame. Discontinuities (first frame,
// recording switch, backward jumps beyond the tolerance) reseed the state
// deterministically at the target with zero velocity, so the first frame
// after a seek matches what precomputation would have produced. Backward
// drift within the tolerance only resyncs timestamps.
func (s *Simulator) Step(st State, in Input) (State, Result) {
	in.Target.X = sanitize(in.Target.X, 0.5)
	in.Target.Y = sanitize(in.Target.Y, 0.5)
	in.TimeMs = sanitize(in.TimeMs, 0)
	in.SourceMs = sanitize(in.SourceMs, 0)

	if s.discontinuous(st, in) {
		seeded := State{
			Phase:        Seeded,
			X:            in.Target.X,
			Y:            in.Target.Y,
			LastTimeMs:   in.TimeMs,
			LastSourceMs: in.SourceMs,
			RecordingID:  in.RecordingID,
		}
		return seeded, Result{Center: in.Target}
	}

	if in.TimeMs < st.LastTimeMs {
		// Sub-frame pause/resume rounding. Keep position and velocity,
		// resync clocks so elapsed-time arithmetic stays non-negative.
		st.LastTimeMs = in.TimeMs
		st.LastSourceMs = in.SourceMs
		return st, Result{Center: camera.Point{X: st.X, Y: st.Y}}
	}

	prevX, prevY := st.X, st.Y
	st.X, st.VelX = s.spring.Update(st.X, st.VelX, in.Target.X)
	st.Y, st.VelY = s.spring.Update(st.Y, st.VelY, in.Target.Y)
	st.Phase = Tracking
	st.LastTimeMs = in.TimeMs
	st.LastSourceMs = in.SourceMs
	st.RecordingID = in.RecordingID

	return st, Result{
		Center: camera.Point{X: st.X, Y: st.Y},
		DeltaX: st.X - prevX,
		DeltaY: st.Y - prevY,
	}
}

func (s *Simulator) discontinuous(st State, in Input) bool {
	if st.Phase == Uninitialized {
		return true
	}
	if in.RecordingID != st.RecordingID {
		return true
	}
	return in.TimeMs < st.LastTimeMs-s.cfg.BackstepToleranceMs
}

func sanitize(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
