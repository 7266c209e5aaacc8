package scene

import "github.com/lucasb-eyer/go-colorful"

type MaterialKind int

const (
	// MaterialKindBasic is unlit.
	MaterialKindBasic MaterialKind = iota
	MaterialKindStandard
)

type Material struct {
	Kind      MaterialKind
	Color     colorful.Color
	Wireframe bool
}

type Geometry interface {
	_geometry()
}

type PlaneGeometry struct {
	Width  float64
	Height float64
}

func (PlaneGeometry) _geometry() {}

// Mesh marks a node as renderable. Geometry is nil for meshes whose data
// is owned by an asset loader.
type Mesh struct {
	Name          string
	Geometry      Geometry
	Material      *Material
	CastShadow    bool
	ReceiveShadow bool
}
