package timeline

import (
	"math"
	"testing"
)

func cursorRecording() *Recording {
	return &Recording{
		ID:     "rec-1",
		Width:  1920,
		Height: 1080,
		Cursor: []CursorSample{
			{TimeMs: 0, X: 0, Y: 0},
			{TimeMs: 1000, X: 1920, Y: 1080},
			{TimeMs: 2000, X: 960, Y: 540},
		},
	}
}

func TestCursorAtInterpolates(t *testing.T) {
	rec := cursorRecording()

	tests := []struct {
		srcMs        float64
		wantX, wantY float64
	}{
		{-100, 0, 0},     // before first sample
		{0, 0, 0},        // on a sample
		{500, 0.5, 0.5},  // midway
		{1000, 1, 1},     // on a sample
		{1500, 0.75, 0.75},
		{5000, 0.5, 0.5}, // after last sample
	}

	for _, tt := range tests {
		got, ok := rec.CursorAt(tt.srcMs)
		if !ok {
			t.Fatalf("at %.0fms: no cursor track", tt.srcMs)
		}
		if math.Abs(got.X-tt.wantX) > 1e-9 || math.Abs(got.Y-tt.wantY) > 1e-9 {
			t.Errorf("at %.0fms: got (%f, %f), want (%f, %f)", tt.srcMs, got.X, got.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestCursorAtWithoutTrack(t *testing.T) {
	rec := &Recording{ID: "bare", Width: 1920, Height: 1080}
	got, ok := rec.CursorAt(100)
	if ok {
		t.Error("expected ok=false without samples")
	}
	if got.X != 0.5 || got.Y != 0.5 {
		t.Errorf("fallback center = (%f, %f), want (0.5, 0.5)", got.X, got.Y)
	}
}

func TestCursorCacheServesExactValues(t *testing.T) {
	rec := cursorRecording()
	cache := NewCursorCache(16)

	direct, _ := rec.CursorAt(730)
	cached, _ := cache.At(rec, 730)
	again, _ := cache.At(rec, 730)

	if cached != direct || again != direct {
		t.Errorf("cache altered result: direct %+v cached %+v again %+v", direct, cached, again)
	}
	if cache.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", cache.Len())
	}
}

func TestCursorCacheEvictsAtCapacity(t *testing.T) {
	rec := cursorRecording()
	cache := NewCursorCache(2)

	cache.At(rec, 100)
	cache.At(rec, 200)
	cache.At(rec, 300)

	if cache.Len() != 2 {
		t.Errorf("cache holds %d entries, want capacity 2", cache.Len())
	}
}

func TestCursorCacheNilAndDisabled(t *testing.T) {
	rec := cursorRecording()

	var nilCache *CursorCache
	got, ok := nilCache.At(rec, 500)
	if !ok || got.X != 0.5 {
		t.Errorf("nil cache: got (%f, %f) ok=%v", got.X, got.Y, ok)
	}

	disabled := NewCursorCache(0)
	got, ok = disabled.At(rec, 500)
	if !ok || got.X != 0.5 {
		t.Errorf("disabled cache: got (%f, %f) ok=%v", got.X, got.Y, ok)
	}
}
