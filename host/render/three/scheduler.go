//go:build js

package three

import (
	"context"
	"syscall/js"
	"time"

	"github.com/nobonobo/bear-vs-witch/host/app"
)

// AnimationFrameScheduler produces one frame per requestAnimationFrame
// callback.
type AnimationFrameScheduler struct{}

func (AnimationFrameScheduler) Run(ctx context.Context, frame app.FrameFunc) error {
	var (
		callback js.Func
		handle   js.Value
		last     float64
		started  bool
	)
	done := make(chan struct{})
	callback = js.FuncOf(func(this js.Value, args []js.Value) any {
		if ctx.Err() != nil {
			return nil
		}
		now := args[0].Float()
		var elapsed time.Duration
		if started {
			elapsed = time.Duration((now - last) * float64(time.Millisecond))
		}
		last, started = now, true
		frame(elapsed)
		handle = window.Call("requestAnimationFrame", callback)
		return nil
	})
	handle = window.Call("requestAnimationFrame", callback)

	go func() {
		<-ctx.Done()
		window.Call("cancelAnimationFrame", handle)
		close(done)
	}()
	<-done
	callback.Release()
	return nil
}
