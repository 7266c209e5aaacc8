package scene

import "github.com/lucasb-eyer/go-colorful"

type Fog struct {
	Color colorful.Color
	Near  float64
	Far   float64
}

type Scene struct {
	Name       string
	Background colorful.Color
	Fog        *Fog
	// OverrideMaterial, when set, is used for every mesh in the scene.
	OverrideMaterial *Material
	Lights           []Light

	root *Node
}

func New(name string) *Scene {
	return &Scene{
		Name: name,
		root: NewNode(name),
	}
}

func (s *Scene) Root() *Node {
	return s.root
}

func (s *Scene) Add(node *Node) {
	s.root.AddChild(node)
}

func (s *Scene) AddLight(light Light) {
	s.Lights = append(s.Lights, light)
}

func (s *Scene) FindNode(name string) *Node {
	return s.root.FindNode(name)
}
