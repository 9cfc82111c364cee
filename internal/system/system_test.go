package system

import "testing"

func TestRecommendWorkers(t *testing.T) {
	if got := RecommendWorkers(10000); got < 1 {
		t.Errorf("got %d workers, want at least 1", got)
	}

	// Never more workers than frames.
	if got := RecommendWorkers(2); got > 2 {
		t.Errorf("got %d workers for 2 frames", got)
	}

	// Zero frames still yields a usable pool size.
	if got := RecommendWorkers(0); got < 1 {
		t.Errorf("got %d workers for empty layout", got)
	}
}
