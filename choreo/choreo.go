// Package choreo binds the bear and witch models, the cameras and the
// wireframe view to the four-section scroll timeline.
package choreo

import (
	"fmt"

	"github.com/nobonobo/bear-vs-witch/asset"
	"github.com/nobonobo/bear-vs-witch/scene"
	"github.com/nobonobo/bear-vs-witch/schema"
	"github.com/nobonobo/bear-vs-witch/timeline"
)

const (
	ModelBear  = "bear"
	ModelWitch = "witch"
)

// Sections is the number of equal-length timeline sections.
const Sections = 4

// Axis selects a component of a transform vector.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Choreography holds the properties driven by the timeline.
type Choreography struct {
	Stage *scene.Stage
	Bear  *asset.Model
	Witch *asset.Model

	timeline *timeline.Timeline
}

// Options tune the timeline construction.
type Options struct {
	// DefaultEase applies to tweens that name no ease.
	DefaultEase timeline.Ease
	// BearStartX and WitchStartX are set before the timeline is built.
	BearStartX  float64
	WitchStartX float64
}

func DefaultOptions() Options {
	return Options{
		DefaultEase: timeline.MustEase(timeline.DefaultEaseName),
		BearStartX:  -5,
		WitchStartX: 5,
	}
}

// New places the models at their start positions and builds the scroll
// timeline against the stage. Both models must be installed.
func New(stage *scene.Stage, models map[string]*asset.Model, opts Options) (*Choreography, error) {
	bear, ok := models[ModelBear]
	if !ok {
		return nil, fmt.Errorf("missing model %q", ModelBear)
	}
	witch, ok := models[ModelWitch]
	if !ok {
		return nil, fmt.Errorf("missing model %q", ModelWitch)
	}
	if opts.DefaultEase == nil {
		opts.DefaultEase = timeline.MustEase(timeline.DefaultEaseName)
	}

	c := &Choreography{
		Stage: stage,
		Bear:  bear,
		Witch: witch,
	}
	c.bearPosition(AxisX).Set(opts.BearStartX)
	c.witchPosition(AxisX).Set(opts.WitchStartX)

	c.timeline = timeline.New(timeline.Defaults{
		Duration: 1,
		Ease:     opts.DefaultEase,
	})
	c.build()
	return c, nil
}

func (c *Choreography) build() {
	tl := c.timeline
	ease := timeline.MustEase

	section := 0.0
	tl.To(c.bearPosition(AxisX), -1, section)
	tl.To(c.witchPosition(AxisX), 1, section)
	tl.To(c.target(AxisY), 1, section)
	tl.To(c.cameraZ(c.Stage.RealView), 5, section)
	tl.To(c.cameraZ(c.Stage.WireView), 5, section)

	section++
	tl.To(c.bearPosition(AxisX), -1.1, section)
	tl.To(c.bearPosition(AxisZ), 2, section)
	tl.To(c.bearRotation(AxisY), 1.7, section)
	tl.To(c.witchPosition(AxisX), 5, section, timeline.WithEase(ease("power4.in")))
	tl.To(c.wireHeight(), 1, section, timeline.WithEase(ease("none")))

	section++
	tl.To(c.bearPosition(AxisX), -5, section, timeline.WithEase(ease("power4.in")))
	tl.To(c.bearPosition(AxisZ), 0, section, timeline.WithEase(ease("power4.in")))
	tl.To(c.witchPosition(AxisX), 1.3, section, timeline.WithEase(ease("power4.out")))
	tl.To(c.witchPosition(AxisZ), 2, section, timeline.WithEase(ease("power4.out")))
	tl.To(c.witchRotation(AxisY), -1.7, section)

	section++
	tl.To(c.bearPosition(AxisX), -1, section)
	tl.To(c.bearPosition(AxisZ), 0, section)
	tl.To(c.bearRotation(AxisY), 0, section, timeline.WithEase(ease("power1.in")))
	tl.To(c.witchPosition(AxisX), 1, section)
	tl.To(c.witchPosition(AxisZ), 0, section)
	tl.To(c.witchRotation(AxisY), 0, section, timeline.WithEase(ease("power1.in")))
	tl.To(c.wireBottom(), 1, section, timeline.WithEase(ease("none")))
}

func (c *Choreography) Timeline() *timeline.Timeline {
	return c.timeline
}

// Seek renders the scene state for a scroll progress. Values outside
// [0,1] are clamped.
func (c *Choreography) Seek(progress float64) {
	c.timeline.SeekProgress(progress)
}

// Section returns the index of the section the playhead is in.
func (c *Choreography) Section() int {
	return min(int(c.timeline.Time()), Sections-1)
}

func (c *Choreography) Snapshot() schema.Snapshot {
	return schema.Snapshot{
		Progress: c.timeline.Progress(),
		Bear: schema.Actor{
			Real: pose(c.Bear.Real),
			Wire: pose(c.Bear.Wire),
		},
		Witch: schema.Actor{
			Real: pose(c.Witch.Real),
			Wire: pose(c.Witch.Wire),
		},
		CameraTarget: c.Stage.Target,
		RealCameraZ:  c.Stage.RealView.Camera.Position.Z,
		WireCameraZ:  c.Stage.WireView.Camera.Position.Z,
		WireView: schema.Region{
			Height: c.Stage.WireView.Height,
			Bottom: c.Stage.WireView.Bottom,
		},
	}
}

func pose(node *scene.Node) schema.Pose {
	p := node.Pose()
	return schema.Pose{
		Position: p.Position,
		Rotation: p.Rotation,
	}
}
