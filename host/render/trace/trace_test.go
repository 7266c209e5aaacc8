package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobonobo/bear-vs-witch/scene"
)

func TestRenderRecordsFrame(t *testing.T) {
	stage := scene.NewStage(scene.DefaultSettings())
	stage.Resize(1000, 500, 1)
	stage.WireView.Height = 0.5
	stage.WireView.Bottom = 0.25

	r := NewRenderer(nil)
	r.Configure(stage.Renderer)
	size := stage.Size()
	viewport := scene.Rect{Width: size.Width, Height: size.Height}
	for _, view := range stage.Views() {
		r.Render(view, stage.Target, viewport, view.Scissor(size))
	}

	frame := r.LastFrame()
	require.Len(t, frame, 2)
	assert.Equal(t, scene.ViewNameReal, frame[0].View)
	assert.Equal(t, 1, frame[0].Meshes)
	assert.InDelta(t, 2.0, frame[0].Aspect, 1e-9)

	wire := frame[1]
	assert.Equal(t, scene.ViewNameWire, wire.View)
	assert.Equal(t, scene.Rect{X: 0, Y: 125, Width: 1000, Height: 250}, wire.Scissor)
	assert.True(t, wire.Visible)

	forward := wire.Forward
	assert.InDelta(t, 1.0, forward.Length(), 1e-9)
	assert.Equal(t, 2, r.Total())
}

func TestRenderKeepsOnlyLatestFrame(t *testing.T) {
	stage := scene.NewStage(scene.DefaultSettings())
	r := NewRenderer(nil)
	for range 3 {
		for _, view := range stage.Views() {
			r.Render(view, stage.Target, scene.Rect{}, scene.Rect{})
		}
	}
	assert.Len(t, r.LastFrame(), 2)
	assert.Equal(t, 6, r.Total())
}

func TestSetSize(t *testing.T) {
	r := NewRenderer(nil)
	assert.Equal(t, 1.0, r.PixelRatio)
	r.SetSize(640, 480, 2)
	assert.Equal(t, 640.0, r.Width)
	assert.Equal(t, 480.0, r.Height)
	assert.Equal(t, 2.0, r.PixelRatio)
}
