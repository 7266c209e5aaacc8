package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueueDrainOrder(t *testing.T) {
	var q Queue
	var got []int
	q.Schedule(func() { got = append(got, 1) })
	q.Schedule(func() {
		got = append(got, 2)
		q.Schedule(func() { got = append(got, 3) })
	})
	q.Drain()
	assert.Equal(t, []int{1, 2, 3}, got)

	q.Drain()
	assert.Len(t, got, 3)
}

func TestQueueConcurrentSchedule(t *testing.T) {
	var q Queue
	var wg sync.WaitGroup
	count := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Schedule(func() { count++ })
		}()
	}
	wg.Wait()
	q.Drain()
	assert.Equal(t, 50, count)
}

func TestNewTickerScheduler(t *testing.T) {
	assert.Equal(t, time.Second/60, NewTickerScheduler(0).Interval)
	assert.Equal(t, time.Second/30, NewTickerScheduler(30).Interval)
}

func TestTickerSchedulerFirstFrameIsZero(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var frames []time.Duration
	err := NewTickerScheduler(1000).Run(ctx, func(elapsed time.Duration) {
		frames = append(frames, elapsed)
		if len(frames) == 3 {
			cancel()
		}
	})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(frames), 3)
	assert.Equal(t, time.Duration(0), frames[0])
	assert.Positive(t, frames[1])
}
