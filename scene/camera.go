package scene

import "github.com/mokiat/gomath/dprec"

type Camera struct {
	FoV      dprec.Angle
	Aspect   float64
	Near     float64
	Far      float64
	Position dprec.Vec3
}

// SetViewportSize updates the aspect ratio. A zero height leaves an
// aspect of 1.
func (c *Camera) SetViewportSize(width, height float64) {
	if height <= 0 {
		c.Aspect = 1
		return
	}
	c.Aspect = width / height
}

// Forward returns the unit direction from the camera towards target.
func (c *Camera) Forward(target dprec.Vec3) dprec.Vec3 {
	direction := dprec.Vec3Diff(target, c.Position)
	if direction.Length() == 0 {
		return dprec.NewVec3(0.0, 0.0, -1.0)
	}
	return dprec.UnitVec3(direction)
}
