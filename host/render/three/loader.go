//go:build js

package three

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/bear-vs-witch/asset"
	"github.com/nobonobo/bear-vs-witch/scene"
)

const DefaultLoaderModule = "https://unpkg.com/three@0.150.1/examples/jsm/loaders/GLTFLoader.js"

// Loader loads glTF models with the three.js GLTFLoader and mirrors the
// resulting object tree as scene nodes. The loader module resolves its
// own "three" import, so the page's import map must point it at the
// same build as the global THREE.
type Loader struct {
	Module  string
	BaseURL string
	objects *Objects
	loader  *lazy[js.Value]
}

func NewLoader(objects *Objects, module string) *Loader {
	if module == "" {
		module = DefaultLoaderModule
	}
	l := &Loader{
		Module:  module,
		objects: objects,
	}
	l.loader = newLazy(l.importLoader)
	return l
}

// importLoader runs once for all concurrent loads.
func (l *Loader) importLoader() (js.Value, error) {
	module, err := await(Import(l.Module))
	if err != nil {
		return js.Undefined(), fmt.Errorf("failed to import %q: %w", l.Module, err)
	}
	return module.Get("GLTFLoader").New(), nil
}

func (l *Loader) Load(ctx context.Context, entry asset.Entry) (*scene.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loader, err := l.loader.get()
	if err != nil {
		return nil, err
	}
	gltf, err := await(wrapPromise(loader.Call("loadAsync", l.BaseURL+entry.Path)))
	if err != nil {
		return nil, err
	}
	root := gltf.Get("scene")
	if !root.Truthy() {
		return nil, asset.ErrNoScene
	}
	return l.mirror(root), nil
}

func (l *Loader) mirror(object js.Value) *scene.Node {
	node := scene.NewNode(object.Get("name").String())
	node.Position = readVec3(object.Get("position"))
	node.Rotation = readVec3(object.Get("rotation"))
	node.Scale = readVec3(object.Get("scale"))
	if object.Get("isMesh").Truthy() {
		node.Mesh = &scene.Mesh{Name: node.Name}
	}
	l.objects.put(node.ID(), object)

	children := object.Get("children")
	for i := range children.Length() {
		node.AddChild(l.mirror(children.Index(i)))
	}
	return node
}

func readVec3(v js.Value) dprec.Vec3 {
	return dprec.NewVec3(v.Get("x").Float(), v.Get("y").Float(), v.Get("z").Float())
}

func writeVec3(target js.Value, v dprec.Vec3) {
	target.Call("set", v.X, v.Y, v.Z)
}
