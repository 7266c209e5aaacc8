package asset

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/mokiat/gomath/dprec"
	"github.com/qmuntal/gltf"

	"github.com/nobonobo/bear-vs-witch/scene"
)

// GLTFLoader reads glTF and GLB files into node hierarchies. With a nil
// FS paths refer to the operating system's file system; files read from
// an FS must embed their buffers.
type GLTFLoader struct {
	FS fs.FS
}

func NewGLTFLoader(fsys fs.FS) *GLTFLoader {
	return &GLTFLoader{FS: fsys}
}

func (l *GLTFLoader) Load(ctx context.Context, entry Entry) (*scene.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := l.open(entry.Path)
	if err != nil {
		return nil, err
	}
	return BuildHierarchy(doc)
}

func (l *GLTFLoader) open(path string) (*gltf.Document, error) {
	if l.FS == nil {
		doc, err := gltf.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open gltf file: %w", err)
		}
		return doc, nil
	}

	file, err := l.FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gltf file: %w", err)
	}
	defer file.Close()

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(file).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode gltf file: %w", err)
	}
	return doc, nil
}

// BuildHierarchy converts the document's default scene (or its first one)
// into a node tree rooted at a node named after the scene.
func BuildHierarchy(doc *gltf.Document) (*scene.Node, error) {
	if len(doc.Scenes) == 0 {
		return nil, ErrNoScene
	}
	sceneIndex := 0
	if doc.Scene != nil {
		sceneIndex = *doc.Scene
	}
	if sceneIndex < 0 || sceneIndex >= len(doc.Scenes) {
		return nil, fmt.Errorf("default scene index %d out of range", sceneIndex)
	}
	gltfScene := doc.Scenes[sceneIndex]

	name := gltfScene.Name
	if name == "" {
		name = "Scene"
	}
	root := scene.NewNode(name)

	visited := make(map[int]bool)
	var build func(index int) (*scene.Node, error)
	build = func(index int) (*scene.Node, error) {
		if index < 0 || index >= len(doc.Nodes) {
			return nil, fmt.Errorf("node index %d out of range", index)
		}
		if visited[index] {
			return nil, fmt.Errorf("node %d is referenced more than once", index)
		}
		visited[index] = true

		gltfNode := doc.Nodes[index]
		node := scene.NewNode(gltfNode.Name)
		applyTransform(node, gltfNode)
		if gltfNode.Mesh != nil {
			meshName := ""
			if mesh := *gltfNode.Mesh; mesh >= 0 && mesh < len(doc.Meshes) {
				meshName = doc.Meshes[mesh].Name
			}
			node.Mesh = &scene.Mesh{Name: meshName}
		}
		for _, childIndex := range gltfNode.Children {
			child, err := build(childIndex)
			if err != nil {
				return nil, err
			}
			node.AddChild(child)
		}
		return node, nil
	}

	for _, index := range gltfScene.Nodes {
		node, err := build(index)
		if err != nil {
			return nil, err
		}
		root.AddChild(node)
	}
	return root, nil
}

func applyTransform(node *scene.Node, gltfNode *gltf.Node) {
	if m := gltfNode.Matrix; !isZeroOrIdentity(m) {
		// glTF matrices are column-major.
		matrix := dprec.NewMat4(
			m[0], m[4], m[8], m[12],
			m[1], m[5], m[9], m[13],
			m[2], m[6], m[10], m[14],
			m[3], m[7], m[11], m[15],
		)
		node.Position = matrix.Translation()
		node.Scale = matrix.Scale()
		if node.Scale.X == 0 || node.Scale.Y == 0 || node.Scale.Z == 0 {
			return
		}
		node.Rotation = eulerXYZ(matrix.Rotation())
		return
	}

	t := gltfNode.Translation
	node.Position = dprec.NewVec3(t[0], t[1], t[2])
	if s := gltfNode.Scale; s != [3]float64{} {
		node.Scale = dprec.NewVec3(s[0], s[1], s[2])
	}
	if q := gltfNode.Rotation; q != [4]float64{} {
		node.Rotation = eulerXYZ(dprec.NewQuat(q[3], q[0], q[1], q[2]))
	}
}

func isZeroOrIdentity(m [16]float64) bool {
	identity := [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	return m == [16]float64{} || m == identity
}

// eulerXYZ returns the rotation as X, Y, Z Euler angles in radians, each
// applied in the frame of the previous one.
func eulerXYZ(q dprec.Quat) dprec.Vec3 {
	x, y, z := q.EulerAngles(dprec.RotationOrderLocalXYZ)
	return dprec.NewVec3(x.Radians(), y.Radians(), z.Radians())
}
