package scene

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mokiat/gomath/dprec"
)

type Light interface {
	_light()
}

type ShadowSettings struct {
	Far        float64
	MapSize    int
	NormalBias float64
}

type DirectionalLight struct {
	Color      colorful.Color
	Intensity  float64
	Position   dprec.Vec3
	CastShadow bool
	Shadow     ShadowSettings
}

func (*DirectionalLight) _light() {}

type HemisphereLight struct {
	Sky       colorful.Color
	Ground    colorful.Color
	Intensity float64
}

func (*HemisphereLight) _light() {}
