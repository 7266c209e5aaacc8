package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStage(t *testing.T) {
	stage := NewStage(DefaultSettings())

	assert.Equal(t, 1.0, stage.RealView.Height)
	assert.Equal(t, 0.0, stage.RealView.Bottom)
	assert.Equal(t, 0.0, stage.WireView.Height)
	assert.Equal(t, 0.0, stage.WireView.Bottom)
	assert.NotSame(t, stage.RealView.Camera, stage.WireView.Camera)
	assert.Equal(t, 3.0, stage.RealView.Camera.Position.Z)
	assert.Equal(t, 4.0, stage.Target.Y)
	assert.InDelta(t, 40.0, stage.RealView.Camera.FoV.Degrees(), 1e-9)

	require.NotNil(t, stage.Real.Fog)
	assert.Equal(t, 15.0, stage.Real.Fog.Near)
	assert.Equal(t, 20.0, stage.Real.Fog.Far)
	assert.Nil(t, stage.Real.OverrideMaterial)

	require.NotNil(t, stage.Wire.OverrideMaterial)
	assert.True(t, stage.Wire.OverrideMaterial.Wireframe)
	assert.Empty(t, stage.Wire.Lights)
	assert.Len(t, stage.Real.Lights, 2)

	floor := stage.Real.FindNode("Floor")
	require.NotNil(t, floor)
	assert.InDelta(t, -math.Pi/2, floor.Rotation.X, 1e-12)
	assert.True(t, floor.Mesh.ReceiveShadow)
	assert.Nil(t, stage.Wire.FindNode("Floor"))

	assert.Equal(t, ToneMappingReinhard, stage.Renderer.ToneMapping)
	assert.Equal(t, 5.0, stage.Renderer.ToneMappingExposure)
}

func TestStageResize(t *testing.T) {
	cases := []struct {
		name             string
		width, height    float64
		dpr              float64
		ratio            float64
		bufferW, bufferH int
	}{
		{"standard", 1280, 800, 1, 1, 1280, 800},
		{"retina", 1280, 800, 2, 2, 2560, 1600},
		{"capped", 1000, 500, 3, 2, 2000, 1000},
		{"fractional", 333, 201, 1.5, 1.5, 499, 301},
		{"unknown ratio", 640, 480, 0, 1, 640, 480},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stage := NewStage(DefaultSettings())
			stage.Resize(tc.width, tc.height, tc.dpr)

			for _, view := range stage.Views() {
				assert.InDelta(t, tc.width/tc.height, view.Camera.Aspect, 1e-12)
			}
			assert.Equal(t, Size{Width: tc.width, Height: tc.height}, stage.Size())
			assert.Equal(t, tc.ratio, stage.PixelRatio())
			w, h := stage.DrawingBufferSize()
			assert.Equal(t, tc.bufferW, w)
			assert.Equal(t, tc.bufferH, h)
		})
	}
}

func TestStageResizeZeroHeight(t *testing.T) {
	stage := NewStage(DefaultSettings())
	stage.Resize(800, 0, 1)
	assert.Equal(t, 1.0, stage.RealView.Camera.Aspect)
}

func TestViewScissor(t *testing.T) {
	size := Size{Width: 1000, Height: 600}
	view := &View{Height: 0.5, Bottom: 0.25}
	assert.Equal(t, Rect{X: 0, Y: 150, Width: 1000, Height: 300}, view.Scissor(size))
	assert.True(t, view.Visible())

	view.Height = 0
	assert.False(t, view.Visible())

	view.Height, view.Bottom = 1, 1
	assert.Equal(t, Rect{X: 0, Y: 600, Width: 1000, Height: 600}, view.Scissor(size))
	assert.False(t, view.Visible())
}

func TestCameraForward(t *testing.T) {
	stage := NewStage(DefaultSettings())
	forward := stage.RealView.Camera.Forward(stage.Target)
	assert.InDelta(t, 1.0, forward.Length(), 1e-12)
	assert.Greater(t, forward.Y, 0.0)

	camera := &Camera{}
	assert.Equal(t, -1.0, camera.Forward(camera.Position).Z)
}
