package asset

import "github.com/nobonobo/bear-vs-witch/scene"

// Model is a loaded asset as it appears in the shaded scene (Real) and in
// the wireframe scene (Wire). The two groups share no transforms.
type Model struct {
	Name string
	Real *scene.Node
	Wire *scene.Node
}

// Install wraps the loaded root in a group named after the model, enables
// shadows on every mesh, adds the group to the shaded scene and a clone of
// it to the wireframe scene.
func Install(stage *scene.Stage, name string, root *scene.Node) *Model {
	root.Traverse(func(node *scene.Node) bool {
		if node.Mesh != nil {
			node.Mesh.CastShadow = true
			node.Mesh.ReceiveShadow = true
		}
		return true
	})

	group := scene.NewNode(name)
	group.AddChild(root)
	stage.Real.Add(group)

	clone := group.Clone()
	stage.Wire.Add(clone)

	return &Model{
		Name: name,
		Real: group,
		Wire: clone,
	}
}
