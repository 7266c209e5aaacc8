package scene

type Size struct {
	Width  float64
	Height float64
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// View renders a scene through a camera into a horizontal band of the
// canvas. Height and Bottom are fractions of the canvas height.
type View struct {
	Name   string
	Scene  *Scene
	Camera *Camera
	Height float64
	Bottom float64
}

// Scissor returns the canvas region the view draws into, with the origin
// at the bottom-left corner.
func (v *View) Scissor(size Size) Rect {
	return Rect{
		X:      0,
		Y:      size.Height * v.Bottom,
		Width:  size.Width,
		Height: size.Height * v.Height,
	}
}

// Visible reports whether the view covers any part of the canvas.
func (v *View) Visible() bool {
	return v.Height > 0 && v.Bottom < 1
}
