package app

import (
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/bear-vs-witch/scene"
)

// Renderer draws views into one shared canvas.
type Renderer interface {
	Configure(settings scene.RendererSettings)
	SetSize(width, height, pixelRatio float64)
	// Render draws the view's scene as seen by its camera looking at
	// target, clipped to scissor.
	Render(view *scene.View, target dprec.Vec3, viewport, scissor scene.Rect)
}
