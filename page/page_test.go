package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSections(t *testing.T) {
	titles := make([]string, len(Sections))
	for i, section := range Sections {
		titles[i] = section.Heading.Text
	}
	assert.Equal(t, []string{"three.js", "Bear vs Witch", "Bear stats", "Witch Stats", "Winner?"}, titles)

	start := Sections[0].Heading
	assert.Equal(t, 128, start.FontSize)
	assert.Equal(t, "black", start.Color)
	assert.Equal(t, "none", start.TextShadow)
}

func TestScrollHeight(t *testing.T) {
	assert.Equal(t, 4000.0, ScrollHeight(800))
	assert.Equal(t, 0.0, ScrollHeight(-1))
}

func TestLayoutProgress(t *testing.T) {
	layout := Layout{ViewportHeight: 800}
	assert.Equal(t, 3200.0, layout.MaxScroll())

	testCases := []struct {
		scrollTop float64
		progress  float64
	}{
		{scrollTop: -50, progress: 0},
		{scrollTop: 0, progress: 0},
		{scrollTop: 800, progress: 0.25},
		{scrollTop: 1600, progress: 0.5},
		{scrollTop: 3200, progress: 1},
		{scrollTop: 5000, progress: 1},
	}
	for _, tc := range testCases {
		assert.InDelta(t, tc.progress, layout.Progress(tc.scrollTop), 1e-12, "scrollTop %v", tc.scrollTop)
	}
}

func TestLayoutScrollTop(t *testing.T) {
	layout := Layout{ViewportHeight: 500}
	assert.Equal(t, 0.0, layout.ScrollTop(-1))
	assert.Equal(t, 1000.0, layout.ScrollTop(0.5))
	assert.Equal(t, 2000.0, layout.ScrollTop(2))
	assert.InDelta(t, 0.3, layout.Progress(layout.ScrollTop(0.3)), 1e-12)
}

func TestEmptyViewport(t *testing.T) {
	layout := Layout{}
	assert.Equal(t, 0.0, layout.MaxScroll())
	assert.Equal(t, 1.0, layout.Progress(0))
}

func styleMap(style []Declaration) map[string]string {
	result := make(map[string]string, len(style))
	for _, d := range style {
		result[d.Property] = d.Value
	}
	return result
}

func TestCanvasFillsContainer(t *testing.T) {
	container := styleMap(ContainerStyle)
	assert.Equal(t, "fixed", container["position"])
	assert.Equal(t, "100%", container["width"])
	assert.Equal(t, "100vh", container["height"])

	canvas := styleMap(CanvasStyle)
	assert.Equal(t, "block", canvas["display"])
	assert.Equal(t, "100%", canvas["width"])
	assert.Equal(t, "100%", canvas["height"])
}
