//go:build js

package three

import (
	"syscall/js"

	"github.com/nobonobo/bear-vs-witch/scene"
)

// mirror keeps a THREE.Scene in step with a scene graph. Nodes are only
// ever added; their transforms are copied every frame.
type mirror struct {
	source  *scene.Scene
	objects *Objects
	scene   js.Value
	nodes   map[scene.NodeID]js.Value
}

func newMirror(source *scene.Scene, objects *Objects) *mirror {
	s := THREE.Get("Scene").New()
	s.Set("name", source.Name)
	s.Set("background", color(source.Background))
	if fog := source.Fog; fog != nil {
		s.Set("fog", THREE.Get("Fog").New(color(fog.Color), fog.Near, fog.Far))
	}
	if m := source.OverrideMaterial; m != nil {
		s.Set("overrideMaterial", material(m))
	}
	for _, light := range source.Lights {
		s.Call("add", newLight(light))
	}
	m := &mirror{
		source:  source,
		objects: objects,
		scene:   s,
		nodes:   make(map[scene.NodeID]js.Value),
	}
	m.nodes[source.Root().ID()] = s
	return m
}

func (m *mirror) sync() {
	m.source.Root().Traverse(func(node *scene.Node) bool {
		if node == m.source.Root() {
			return true
		}
		object := m.objectOf(node)
		writeVec3(object.Get("position"), node.Position)
		object.Get("rotation").Call("set", node.Rotation.X, node.Rotation.Y, node.Rotation.Z, "XYZ")
		writeVec3(object.Get("scale"), node.Scale)
		return true
	})
}

func (m *mirror) objectOf(node *scene.Node) js.Value {
	if object, ok := m.nodes[node.ID()]; ok {
		return object
	}
	object := m.create(node)
	m.nodes[node.ID()] = object
	if parent := node.Parent(); parent != nil {
		m.nodes[parent.ID()].Call("add", object)
	}
	return object
}

func (m *mirror) create(node *scene.Node) js.Value {
	if object, ok := m.objects.get(node.ID()); ok {
		return m.applyMesh(object, node)
	}
	// Clones get a shallow copy; their children are mirrored separately.
	if source, ok := m.objects.get(node.Origin()); ok {
		return m.applyMesh(source.Call("clone", false), node)
	}

	var object js.Value
	if mesh := node.Mesh; mesh != nil && mesh.Geometry != nil {
		object = THREE.Get("Mesh").New(geometry(mesh.Geometry), material(mesh.Material))
	} else {
		object = THREE.Get("Group").New()
	}
	object.Set("name", node.Name)
	return m.applyMesh(object, node)
}

func (m *mirror) applyMesh(object js.Value, node *scene.Node) js.Value {
	if mesh := node.Mesh; mesh != nil {
		object.Set("castShadow", mesh.CastShadow)
		object.Set("receiveShadow", mesh.ReceiveShadow)
	}
	return object
}

func geometry(g scene.Geometry) js.Value {
	switch g := g.(type) {
	case scene.PlaneGeometry:
		return THREE.Get("PlaneGeometry").New(g.Width, g.Height)
	default:
		return THREE.Get("BufferGeometry").New()
	}
}

func material(m *scene.Material) js.Value {
	if m == nil {
		return THREE.Get("MeshStandardMaterial").New()
	}
	params := map[string]any{
		"color":     color(m.Color),
		"wireframe": m.Wireframe,
	}
	switch m.Kind {
	case scene.MaterialKindBasic:
		return THREE.Get("MeshBasicMaterial").New(params)
	default:
		return THREE.Get("MeshStandardMaterial").New(params)
	}
}

func newLight(light scene.Light) js.Value {
	switch light := light.(type) {
	case *scene.DirectionalLight:
		l := THREE.Get("DirectionalLight").New(color(light.Color), light.Intensity)
		writeVec3(l.Get("position"), light.Position)
		l.Set("castShadow", light.CastShadow)
		shadow := l.Get("shadow")
		shadow.Get("camera").Set("far", light.Shadow.Far)
		shadow.Get("mapSize").Call("set", light.Shadow.MapSize, light.Shadow.MapSize)
		shadow.Set("normalBias", light.Shadow.NormalBias)
		return l
	case *scene.HemisphereLight:
		return THREE.Get("HemisphereLight").New(color(light.Sky), color(light.Ground), light.Intensity)
	default:
		return THREE.Get("Group").New()
	}
}
