package schema

import "github.com/mokiat/gomath/dprec"

type Pose struct {
	Position dprec.Vec3 `json:"position" yaml:"position"`
	Rotation dprec.Vec3 `json:"rotation" yaml:"rotation"`
}

type Region struct {
	Height float64 `json:"height" yaml:"height"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// Actor is a model as it appears in both scenes.
type Actor struct {
	Real Pose `json:"real" yaml:"real"`
	Wire Pose `json:"wire" yaml:"wire"`
}

// Snapshot is a value copy of every property the scroll timeline drives.
type Snapshot struct {
	Progress     float64    `json:"progress" yaml:"progress"`
	Bear         Actor      `json:"bear" yaml:"bear"`
	Witch        Actor      `json:"witch" yaml:"witch"`
	CameraTarget dprec.Vec3 `json:"cameraTarget" yaml:"cameraTarget"`
	RealCameraZ  float64    `json:"realCameraZ" yaml:"realCameraZ"`
	WireCameraZ  float64    `json:"wireCameraZ" yaml:"wireCameraZ"`
	WireView     Region     `json:"wireView" yaml:"wireView"`
}
