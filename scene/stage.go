package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mokiat/gomath/dprec"
)

const (
	ViewNameReal = "real"
	ViewNameWire = "wire"
)

type Settings struct {
	Background     colorful.Color
	WireBackground colorful.Color
	WireColor      colorful.Color
	Light          colorful.Color
	Sky            colorful.Color
	Ground         colorful.Color

	FogNear float64
	FogFar  float64

	CameraFoV      dprec.Angle
	CameraNear     float64
	CameraFar      float64
	CameraPosition dprec.Vec3
	CameraTarget   dprec.Vec3

	LightIntensity      float64
	LightPosition       dprec.Vec3
	HemisphereIntensity float64
	Shadow              ShadowSettings

	FloorSize float64

	MaxPixelRatio       float64
	ToneMappingExposure float64
}

func DefaultSettings() Settings {
	return Settings{
		Background:     MustParseColor("white"),
		WireBackground: MustParseColor("steelblue"),
		WireColor:      MustParseColor("white"),
		Light:          MustParseColor("#ffffff"),
		Sky:            MustParseColor("#aaaaff"),
		Ground:         MustParseColor("#88ff88"),

		FogNear: 15,
		FogFar:  20,

		CameraFoV:      dprec.Degrees(40),
		CameraNear:     0.1,
		CameraFar:      100,
		CameraPosition: dprec.NewVec3(0.0, 1.0, 3.0),
		CameraTarget:   dprec.NewVec3(0.0, 4.0, 0.0),

		LightIntensity:      2,
		LightPosition:       dprec.NewVec3(2.0, 5.0, 3.0),
		HemisphereIntensity: 0.5,
		Shadow: ShadowSettings{
			Far:        10,
			MapSize:    1024,
			NormalBias: 0.05,
		},

		FloorSize: 100,

		MaxPixelRatio:       2,
		ToneMappingExposure: 5,
	}
}

type ToneMapping string

const (
	ToneMappingNone     ToneMapping = "none"
	ToneMappingReinhard ToneMapping = "reinhard"
)

type ShadowType string

const (
	ShadowTypeBasic   ShadowType = "basic"
	ShadowTypePCFSoft ShadowType = "pcfsoft"
)

// RendererSettings describes how the shared canvas renderer is set up.
type RendererSettings struct {
	Antialias               bool
	PhysicallyCorrectLights bool
	OutputSRGB              bool
	ToneMapping             ToneMapping
	ToneMappingExposure     float64
	ShadowsEnabled          bool
	ShadowType              ShadowType
}

// Stage holds everything the render loop draws: the shaded and the
// wireframe scenes, one view per scene and the shared camera target.
type Stage struct {
	Real *Scene
	Wire *Scene

	RealView *View
	WireView *View

	Floor *Node

	// Target is the point both cameras look at.
	Target dprec.Vec3

	Renderer RendererSettings

	size          Size
	pixelRatio    float64
	maxPixelRatio float64
}

// NewStage builds both scenes with their cameras, lights and floor.
func NewStage(settings Settings) *Stage {
	realScene := New(ViewNameReal)
	realScene.Background = settings.Background
	realScene.Fog = &Fog{
		Color: settings.Background,
		Near:  settings.FogNear,
		Far:   settings.FogFar,
	}

	wireScene := New(ViewNameWire)
	wireScene.Background = settings.WireBackground
	wireScene.OverrideMaterial = &Material{
		Kind:      MaterialKindBasic,
		Color:     settings.WireColor,
		Wireframe: true,
	}

	realScene.AddLight(&DirectionalLight{
		Color:      settings.Light,
		Intensity:  settings.LightIntensity,
		Position:   settings.LightPosition,
		CastShadow: true,
		Shadow:     settings.Shadow,
	})
	realScene.AddLight(&HemisphereLight{
		Sky:       settings.Sky,
		Ground:    settings.Ground,
		Intensity: settings.HemisphereIntensity,
	})

	floor := NewNode("Floor")
	floor.Rotation.X = -math.Pi * 0.5
	floor.Mesh = &Mesh{
		Name: "Floor",
		Geometry: PlaneGeometry{
			Width:  settings.FloorSize,
			Height: settings.FloorSize,
		},
		Material: &Material{
			Kind:  MaterialKindStandard,
			Color: settings.Ground,
		},
		ReceiveShadow: true,
	}
	realScene.Add(floor)

	newCamera := func() *Camera {
		return &Camera{
			FoV:      settings.CameraFoV,
			Aspect:   1,
			Near:     settings.CameraNear,
			Far:      settings.CameraFar,
			Position: settings.CameraPosition,
		}
	}

	maxPixelRatio := settings.MaxPixelRatio
	if maxPixelRatio <= 0 {
		maxPixelRatio = 2
	}

	return &Stage{
		Real: realScene,
		Wire: wireScene,
		RealView: &View{
			Name:   ViewNameReal,
			Scene:  realScene,
			Camera: newCamera(),
			Height: 1,
			Bottom: 0,
		},
		WireView: &View{
			Name:   ViewNameWire,
			Scene:  wireScene,
			Camera: newCamera(),
			Height: 0,
			Bottom: 0,
		},
		Floor:  floor,
		Target: settings.CameraTarget,
		Renderer: RendererSettings{
			Antialias:               true,
			PhysicallyCorrectLights: true,
			OutputSRGB:              true,
			ToneMapping:             ToneMappingReinhard,
			ToneMappingExposure:     settings.ToneMappingExposure,
			ShadowsEnabled:          true,
			ShadowType:              ShadowTypePCFSoft,
		},
		pixelRatio:    1,
		maxPixelRatio: maxPixelRatio,
	}
}

// Views returns the views in render order.
func (s *Stage) Views() []*View {
	return []*View{s.RealView, s.WireView}
}

// Resize applies a new container size and device pixel ratio. Both
// cameras take the container's aspect ratio.
func (s *Stage) Resize(width, height, devicePixelRatio float64) {
	s.size = Size{
		Width:  max(width, 0),
		Height: max(height, 0),
	}
	for _, view := range s.Views() {
		view.Camera.SetViewportSize(s.size.Width, s.size.Height)
	}
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	s.pixelRatio = min(devicePixelRatio, s.maxPixelRatio)
}

func (s *Stage) Size() Size {
	return s.size
}

func (s *Stage) PixelRatio() float64 {
	return s.pixelRatio
}

// DrawingBufferSize is the canvas size in device pixels.
func (s *Stage) DrawingBufferSize() (width, height int) {
	return int(math.Floor(s.size.Width * s.pixelRatio)), int(math.Floor(s.size.Height * s.pixelRatio))
}
