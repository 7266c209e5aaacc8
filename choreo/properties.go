package choreo

import (
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/bear-vs-witch/asset"
	"github.com/nobonobo/bear-vs-witch/scene"
	"github.com/nobonobo/bear-vs-witch/timeline"
)

// component returns the address of one vector component.
func component(v *dprec.Vec3, axis Axis) *float64 {
	switch axis {
	case AxisX:
		return &v.X
	case AxisY:
		return &v.Y
	default:
		return &v.Z
	}
}

// modelProperty binds both instances of a model so that the shaded and
// the wireframe copies move in lockstep.
func modelProperty(name string, model *asset.Model, axis Axis, field func(node *scene.Node) *dprec.Vec3) timeline.Property {
	return timeline.Float(name+"."+string(axis),
		component(field(model.Real), axis),
		component(field(model.Wire), axis),
	)
}

func position(node *scene.Node) *dprec.Vec3 {
	return &node.Position
}

func rotation(node *scene.Node) *dprec.Vec3 {
	return &node.Rotation
}

func (c *Choreography) bearPosition(axis Axis) timeline.Property {
	return modelProperty("bear.position", c.Bear, axis, position)
}

func (c *Choreography) bearRotation(axis Axis) timeline.Property {
	return modelProperty("bear.rotation", c.Bear, axis, rotation)
}

func (c *Choreography) witchPosition(axis Axis) timeline.Property {
	return modelProperty("witch.position", c.Witch, axis, position)
}

func (c *Choreography) witchRotation(axis Axis) timeline.Property {
	return modelProperty("witch.rotation", c.Witch, axis, rotation)
}

func (c *Choreography) target(axis Axis) timeline.Property {
	return timeline.Float("camera.target."+string(axis), component(&c.Stage.Target, axis))
}

func (c *Choreography) cameraZ(view *scene.View) timeline.Property {
	return timeline.Float(view.Name+".camera.position.z", &view.Camera.Position.Z)
}

func (c *Choreography) wireHeight() timeline.Property {
	return timeline.Float("wire.view.height", &c.Stage.WireView.Height)
}

func (c *Choreography) wireBottom() timeline.Property {
	return timeline.Float("wire.view.bottom", &c.Stage.WireView.Bottom)
}
