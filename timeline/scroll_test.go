package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScrollProgress(t *testing.T) {
	cases := []struct {
		name      string
		scrollTop float64
		want      float64
	}{
		{"top", 0, 0},
		{"quarter", 1000, 0.25},
		{"bottom", 4000, 1},
		{"overscroll", 4500, 1},
		{"negative", -20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// five sections of 1000px viewed through a 1000px viewport
			got := ScrollProgress(tc.scrollTop, 0, 5000, 1000)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestScrollProgressShortContainer(t *testing.T) {
	assert.Equal(t, 0.0, ScrollProgress(0, 10, 500, 800))
	assert.Equal(t, 1.0, ScrollProgress(10, 10, 500, 800))
}

func TestScrubberImmediate(t *testing.T) {
	s := NewScrubber(0)
	s.SetTarget(0.7)
	assert.Equal(t, 0.7, s.Advance(time.Millisecond))
	assert.True(t, s.Settled())
}

func TestScrubberLag(t *testing.T) {
	s := NewScrubber(100 * time.Millisecond)
	s.SetTarget(1)

	got := s.Advance(50 * time.Millisecond)
	assert.InDelta(t, 0.9375, got, 1e-9)
	assert.False(t, s.Settled())

	got = s.Advance(50 * time.Millisecond)
	assert.Equal(t, 1.0, got)
	assert.True(t, s.Settled())
}

func TestScrubberSettlesWithinLag(t *testing.T) {
	s := NewScrubber(100 * time.Millisecond)
	s.SetTarget(1)

	for range 6 {
		s.Advance(16 * time.Millisecond)
	}
	assert.False(t, s.Settled())

	s.Advance(16 * time.Millisecond)
	assert.True(t, s.Settled())
	assert.Equal(t, 1.0, s.Current())
}

func TestScrubberFrameRateIndependent(t *testing.T) {
	single := NewScrubber(100 * time.Millisecond)
	single.SetTarget(0.8)
	single.Advance(50 * time.Millisecond)

	split := NewScrubber(100 * time.Millisecond)
	split.SetTarget(0.8)
	for range 5 {
		split.Advance(10 * time.Millisecond)
	}

	assert.InDelta(t, single.Current(), split.Current(), 1e-12)
}

func TestScrubberRetarget(t *testing.T) {
	s := NewScrubber(100 * time.Millisecond)
	s.SetTarget(1)
	mid := s.Advance(50 * time.Millisecond)

	// a new target restarts the catch-up from the current playhead
	s.SetTarget(0)
	assert.Equal(t, mid, s.Current())
	assert.Equal(t, mid, s.Advance(0))
	s.Advance(99 * time.Millisecond)
	assert.False(t, s.Settled())
	assert.Equal(t, 0.0, s.Advance(time.Millisecond))

	// the same target does not restart the tween
	s.SetTarget(1)
	s.Advance(60 * time.Millisecond)
	s.SetTarget(1)
	assert.Equal(t, 1.0, s.Advance(40*time.Millisecond))
}

func TestScrubberClampsTarget(t *testing.T) {
	s := NewScrubber(0)
	s.SetTarget(3)
	assert.Equal(t, 1.0, s.Target())
	s.SetTarget(-3)
	assert.Equal(t, 0.0, s.Target())
}

func TestScrubberJump(t *testing.T) {
	s := NewScrubber(time.Second)
	s.SetTarget(0.4)
	s.Jump()
	assert.Equal(t, 0.4, s.Current())
	assert.Equal(t, 0.4, s.Advance(0))
}
