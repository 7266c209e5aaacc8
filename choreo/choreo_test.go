package choreo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nobonobo/bear-vs-witch/asset"
	"github.com/nobonobo/bear-vs-witch/scene"
	"github.com/nobonobo/bear-vs-witch/schema"
)

const delta = 1e-9

func newChoreography(t *testing.T) *Choreography {
	t.Helper()
	stage := scene.NewStage(scene.DefaultSettings())
	models := map[string]*asset.Model{
		ModelWitch: asset.Install(stage, ModelWitch, scene.NewNode("WitchScene")),
		ModelBear:  asset.Install(stage, ModelBear, scene.NewNode("BearScene")),
	}
	c, err := New(stage, models, DefaultOptions())
	require.NoError(t, err)
	return c
}

func assertLockstep(t *testing.T, snapshot schema.Snapshot) {
	t.Helper()
	assert.Equal(t, snapshot.Bear.Real, snapshot.Bear.Wire)
	assert.Equal(t, snapshot.Witch.Real, snapshot.Witch.Wire)
	assert.Equal(t, snapshot.RealCameraZ, snapshot.WireCameraZ)
}

func TestSeekStart(t *testing.T) {
	c := newChoreography(t)
	c.Seek(0)
	s := c.Snapshot()

	assert.InDelta(t, -5.0, s.Bear.Real.Position.X, delta)
	assert.InDelta(t, 0.0, s.Bear.Real.Position.Z, delta)
	assert.InDelta(t, 0.0, s.Bear.Real.Rotation.Y, delta)
	assert.InDelta(t, 5.0, s.Witch.Real.Position.X, delta)
	assert.InDelta(t, 0.0, s.Witch.Real.Rotation.Y, delta)
	assert.InDelta(t, 4.0, s.CameraTarget.Y, delta)
	assert.InDelta(t, 3.0, s.RealCameraZ, delta)
	assert.InDelta(t, 0.0, s.WireView.Height, delta)
	assert.InDelta(t, 0.0, s.WireView.Bottom, delta)
	assert.Equal(t, 0.0, s.Progress)
	assertLockstep(t, s)
	assert.Equal(t, 0, c.Section())
}

func TestSeekEnd(t *testing.T) {
	c := newChoreography(t)
	c.Seek(1)
	s := c.Snapshot()

	assert.InDelta(t, -1.0, s.Bear.Real.Position.X, delta)
	assert.InDelta(t, 0.0, s.Bear.Real.Position.Z, delta)
	assert.InDelta(t, 0.0, s.Bear.Real.Rotation.Y, delta)
	assert.InDelta(t, 1.0, s.Witch.Real.Position.X, delta)
	assert.InDelta(t, 0.0, s.Witch.Real.Position.Z, delta)
	assert.InDelta(t, 0.0, s.Witch.Real.Rotation.Y, delta)
	assert.InDelta(t, 1.0, s.CameraTarget.Y, delta)
	assert.InDelta(t, 5.0, s.RealCameraZ, delta)
	assert.InDelta(t, 1.0, s.WireView.Height, delta)
	assert.InDelta(t, 1.0, s.WireView.Bottom, delta)
	assert.Equal(t, 1.0, s.Progress)
	assertLockstep(t, s)
	assert.Equal(t, Sections-1, c.Section())
}

func TestSeekSectionBoundaries(t *testing.T) {
	c := newChoreography(t)

	c.Seek(0.25)
	s := c.Snapshot()
	assert.InDelta(t, -1.0, s.Bear.Real.Position.X, delta)
	assert.InDelta(t, 1.0, s.Witch.Real.Position.X, delta)
	assert.InDelta(t, 1.0, s.CameraTarget.Y, delta)
	assert.InDelta(t, 5.0, s.WireCameraZ, delta)
	assert.InDelta(t, 0.0, s.WireView.Height, delta)
	assert.Equal(t, 1, c.Section())

	c.Seek(0.5)
	s = c.Snapshot()
	assert.InDelta(t, -1.1, s.Bear.Real.Position.X, delta)
	assert.InDelta(t, 2.0, s.Bear.Real.Position.Z, delta)
	assert.InDelta(t, 1.7, s.Bear.Real.Rotation.Y, delta)
	assert.InDelta(t, 5.0, s.Witch.Real.Position.X, delta)
	assert.InDelta(t, 1.0, s.WireView.Height, delta)
	assert.InDelta(t, 0.0, s.WireView.Bottom, delta)

	c.Seek(0.75)
	s = c.Snapshot()
	assert.InDelta(t, -5.0, s.Bear.Real.Position.X, delta)
	assert.InDelta(t, 0.0, s.Bear.Real.Position.Z, delta)
	assert.InDelta(t, 1.3, s.Witch.Real.Position.X, delta)
	assert.InDelta(t, 2.0, s.Witch.Real.Position.Z, delta)
	assert.InDelta(t, -1.7, s.Witch.Real.Rotation.Y, delta)
	assertLockstep(t, s)
}

func TestSeekMidSection(t *testing.T) {
	c := newChoreography(t)
	c.Seek(0.375)
	s := c.Snapshot()

	// linear
	assert.InDelta(t, 0.5, s.WireView.Height, delta)
	// power2.inOut is symmetric around the half-way point
	assert.InDelta(t, 0.85, s.Bear.Real.Rotation.Y, delta)
	// power4.in from 1 to 5
	assert.InDelta(t, 1.0+4.0/32.0, s.Witch.Real.Position.X, delta)
	assertLockstep(t, s)
}

func TestSeekClamps(t *testing.T) {
	c := newChoreography(t)

	c.Seek(0)
	start := c.Snapshot()
	c.Seek(1)
	end := c.Snapshot()

	c.Seek(-0.5)
	assert.Equal(t, start, c.Snapshot())
	c.Seek(1.5)
	assert.Equal(t, end, c.Snapshot())
}

func TestSeekIsRepeatable(t *testing.T) {
	c := newChoreography(t)
	c.Seek(0.6)
	first := c.Snapshot()
	c.Seek(0.1)
	c.Seek(0.9)
	c.Seek(0.6)
	assert.Equal(t, first, c.Snapshot())
}

func TestClonesDoNotShareTransforms(t *testing.T) {
	c := newChoreography(t)
	c.Seek(0.5)
	c.Bear.Wire.Position.X = 42
	assert.InDelta(t, -1.1, c.Bear.Real.Position.X, delta)

	// the next seek brings the clone back in line
	c.Seek(0.5)
	assert.InDelta(t, -1.1, c.Bear.Wire.Position.X, delta)
}

func TestNewMissingModel(t *testing.T) {
	stage := scene.NewStage(scene.DefaultSettings())
	models := map[string]*asset.Model{
		ModelBear: asset.Install(stage, ModelBear, scene.NewNode("BearScene")),
	}
	_, err := New(stage, models, DefaultOptions())
	assert.ErrorContains(t, err, ModelWitch)
}

func TestTimelineDuration(t *testing.T) {
	c := newChoreography(t)
	assert.Equal(t, float64(Sections), c.Timeline().Duration())
}
