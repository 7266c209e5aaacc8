//go:build js

package three

import (
	"log/slog"
	"syscall/js"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/bear-vs-witch/scene"
)

// Renderer draws stage views with a three.js WebGLRenderer.
type Renderer struct {
	logger   *slog.Logger
	canvas   js.Value
	renderer js.Value
	objects  *Objects
	scenes   map[*scene.Scene]*mirror
	cameras  map[*scene.Camera]js.Value
	target   js.Value
}

func NewRenderer(logger *slog.Logger, canvas js.Value, objects *Objects) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		logger:  logger,
		canvas:  canvas,
		objects: objects,
		scenes:  make(map[*scene.Scene]*mirror),
		cameras: make(map[*scene.Camera]js.Value),
		target:  THREE.Get("Vector3").New(),
	}
}

func (r *Renderer) Configure(settings scene.RendererSettings) {
	r.renderer = THREE.Get("WebGLRenderer").New(map[string]any{
		"canvas":    r.canvas,
		"antialias": settings.Antialias,
	})
	r.renderer.Set("physicallyCorrectLights", settings.PhysicallyCorrectLights)
	if settings.OutputSRGB {
		r.renderer.Set("outputEncoding", THREE.Get("sRGBEncoding"))
	}
	switch settings.ToneMapping {
	case scene.ToneMappingReinhard:
		r.renderer.Set("toneMapping", THREE.Get("ReinhardToneMapping"))
	default:
		r.renderer.Set("toneMapping", THREE.Get("NoToneMapping"))
	}
	r.renderer.Set("toneMappingExposure", settings.ToneMappingExposure)

	shadowMap := r.renderer.Get("shadowMap")
	shadowMap.Set("enabled", settings.ShadowsEnabled)
	switch settings.ShadowType {
	case scene.ShadowTypePCFSoft:
		shadowMap.Set("type", THREE.Get("PCFSoftShadowMap"))
	default:
		shadowMap.Set("type", THREE.Get("BasicShadowMap"))
	}
	r.logger.Debug("Renderer configured")
}

// SetSize sizes the drawing buffer and the canvas CSS box.
func (r *Renderer) SetSize(width, height, pixelRatio float64) {
	r.renderer.Call("setSize", width, height)
	r.renderer.Call("setPixelRatio", pixelRatio)
}

func (r *Renderer) Render(view *scene.View, target dprec.Vec3, viewport, scissor scene.Rect) {
	m := r.mirrorOf(view.Scene)
	m.sync()

	camera := r.cameraOf(view.Camera)
	camera.Set("aspect", view.Camera.Aspect)
	camera.Call("updateProjectionMatrix")
	writeVec3(camera.Get("position"), view.Camera.Position)
	writeVec3(r.target, target)
	camera.Call("lookAt", r.target)

	r.renderer.Call("setViewport", viewport.X, viewport.Y, viewport.Width, viewport.Height)
	r.renderer.Call("setScissor", scissor.X, scissor.Y, scissor.Width, scissor.Height)
	r.renderer.Call("setScissorTest", true)
	r.renderer.Call("render", m.scene, camera)
}

func (r *Renderer) mirrorOf(s *scene.Scene) *mirror {
	if m, ok := r.scenes[s]; ok {
		return m
	}
	m := newMirror(s, r.objects)
	r.scenes[s] = m
	return m
}

func (r *Renderer) cameraOf(c *scene.Camera) js.Value {
	if camera, ok := r.cameras[c]; ok {
		return camera
	}
	camera := THREE.Get("PerspectiveCamera").New(c.FoV.Degrees(), c.Aspect, c.Near, c.Far)
	r.cameras[c] = camera
	return camera
}

func color(c colorful.Color) js.Value {
	return THREE.Get("Color").New(c.Hex())
}
