package timeline

import "time"

// ScrollProgress maps a vertical scroll offset to a progress in [0,1] for
// a trigger that starts when the container's top reaches the viewport's
// top and ends when its bottom reaches the viewport's bottom.
func ScrollProgress(scrollTop, containerTop, containerHeight, viewportHeight float64) float64 {
	distance := containerHeight - viewportHeight
	if distance <= 0 {
		if scrollTop >= containerTop {
			return 1
		}
		return 0
	}
	return clamp((scrollTop-containerTop)/distance, 0, 1)
}

// Scrubber smooths the playhead: every new target starts a catch-up
// tween from the current playhead that lasts exactly the lag. A zero lag
// follows the target immediately.
type Scrubber struct {
	lag     time.Duration
	ease    Ease
	from    float64
	target  float64
	current float64
	elapsed time.Duration
}

// NewScrubber returns a scrubber that eases out with power3.
func NewScrubber(lag time.Duration) *Scrubber {
	return &Scrubber{
		lag:  max(lag, 0),
		ease: PowerOut(3),
	}
}

func (s *Scrubber) SetTarget(progress float64) {
	progress = clamp(progress, 0, 1)
	if progress == s.target {
		return
	}
	s.from = s.current
	s.target = progress
	s.elapsed = 0
}

func (s *Scrubber) Target() float64 {
	return s.target
}

func (s *Scrubber) Current() float64 {
	return s.current
}

// Settled reports whether the playhead has reached the target.
func (s *Scrubber) Settled() bool {
	return s.current == s.target
}

// Jump moves the playhead to the target without smoothing.
func (s *Scrubber) Jump() {
	s.current = s.target
	s.from = s.target
	s.elapsed = s.lag
}

// Advance moves the catch-up tween forward by the elapsed time and
// returns the new playhead.
func (s *Scrubber) Advance(elapsed time.Duration) float64 {
	if s.Settled() {
		return s.current
	}
	s.elapsed += max(elapsed, 0)
	if s.elapsed >= s.lag {
		s.current = s.target
		return s.current
	}
	step := s.ease(float64(s.elapsed) / float64(s.lag))
	s.current = s.from + (s.target-s.from)*step
	return s.current
}
