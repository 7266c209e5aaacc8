// Package trace is a headless renderer. It records what each frame would
// draw instead of drawing it.
package trace

import (
	"log/slog"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/bear-vs-witch/scene"
)

// Draw describes one view rendered into the canvas.
type Draw struct {
	View     string
	Viewport scene.Rect
	Scissor  scene.Rect
	Camera   dprec.Vec3
	Forward  dprec.Vec3
	Aspect   float64
	Meshes   int
	Visible  bool
}

type Renderer struct {
	logger *slog.Logger

	Settings   scene.RendererSettings
	Width      float64
	Height     float64
	PixelRatio float64

	draws []Draw
	total int
}

func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		logger:     logger,
		PixelRatio: 1,
	}
}

func (r *Renderer) Configure(settings scene.RendererSettings) {
	r.Settings = settings
}

func (r *Renderer) SetSize(width, height, pixelRatio float64) {
	r.Width = width
	r.Height = height
	r.PixelRatio = pixelRatio
}

func (r *Renderer) Render(view *scene.View, target dprec.Vec3, viewport, scissor scene.Rect) {
	meshes := 0
	view.Scene.Root().Traverse(func(node *scene.Node) bool {
		if node.Mesh != nil {
			meshes++
		}
		return true
	})

	draw := Draw{
		View:     view.Name,
		Viewport: viewport,
		Scissor:  scissor,
		Camera:   view.Camera.Position,
		Forward:  view.Camera.Forward(target),
		Aspect:   view.Camera.Aspect,
		Meshes:   meshes,
		Visible:  view.Visible(),
	}
	if len(r.draws) == 2 {
		r.draws = r.draws[:0]
	}
	r.draws = append(r.draws, draw)
	r.total++

	r.logger.Debug("Render",
		slog.String("view", draw.View),
		slog.Float64("scissorY", scissor.Y),
		slog.Float64("scissorHeight", scissor.Height),
		slog.Int("meshes", meshes),
		slog.Bool("visible", draw.Visible),
	)
}

// LastFrame returns the draws of the most recent frame.
func (r *Renderer) LastFrame() []Draw {
	return append([]Draw(nil), r.draws...)
}

// Total is the number of draws since creation.
func (r *Renderer) Total() int {
	return r.total
}
