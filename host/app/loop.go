package app

import (
	"context"
	"sync"
	"time"
)

// FrameFunc is called once per display frame with the time elapsed since
// the previous frame.
type FrameFunc func(elapsed time.Duration)

// Scheduler drives frames until the context is cancelled.
type Scheduler interface {
	Run(ctx context.Context, frame FrameFunc) error
}

// Queue collects functions scheduled from any goroutine and runs them on
// the loop when drained.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

func (q *Queue) Schedule(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, fn)
}

// Drain runs the scheduled functions in order, including functions that
// are scheduled while draining.
func (q *Queue) Drain() {
	for {
		q.mu.Lock()
		pending := q.pending
		q.pending = nil
		q.mu.Unlock()

		if len(pending) == 0 {
			return
		}
		for _, fn := range pending {
			fn()
		}
	}
}

// TickerScheduler produces frames at a fixed rate.
type TickerScheduler struct {
	Interval time.Duration
}

func NewTickerScheduler(frameRate int) *TickerScheduler {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &TickerScheduler{
		Interval: time.Second / time.Duration(frameRate),
	}
}

func (s *TickerScheduler) Run(ctx context.Context, frame FrameFunc) error {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	last := time.Now()
	frame(0)
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			frame(now.Sub(last))
			last = now
		}
	}
}
