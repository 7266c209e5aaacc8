package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEaseEndpoints(t *testing.T) {
	names := []string{
		"", "none", "linear", "ease-in", "ease-out", "ease-in-out",
		"power1", "power1.in", "power2.inOut", "power3.out", "power4.in",
		"cubic.inOut", "quint",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			ease, err := ParseEase(name)
			require.NoError(t, err)
			assert.InDelta(t, 0.0, ease(0), 1e-12)
			assert.InDelta(t, 1.0, ease(1), 1e-12)
		})
	}
}

func TestParseEaseUnknown(t *testing.T) {
	for _, name := range []string{"bounce", "power5.in", "power2.sideways", "none.in", "power"} {
		_, err := ParseEase(name)
		assert.ErrorIs(t, err, ErrUnknownEase, name)
	}
}

func TestEaseShapes(t *testing.T) {
	assert.InDelta(t, 0.25, MustEase("none")(0.25), 1e-12)
	assert.InDelta(t, 0.25, MustEase("power1.in")(0.5), 1e-12)
	assert.InDelta(t, 0.75, MustEase("power1.out")(0.5), 1e-12)
	assert.InDelta(t, 0.5, MustEase("power2.inOut")(0.5), 1e-12)
	assert.InDelta(t, 0.0625, MustEase("power3.in")(0.5), 1e-12)
	assert.InDelta(t, 0.03125, MustEase("power4.in")(0.5), 1e-12)

	// bare power names are the out variant
	assert.InDelta(t, MustEase("power2.out")(0.3), MustEase("power2")(0.3), 1e-12)
	assert.InDelta(t, MustEase(DefaultEaseName)(0.3), MustEase("")(0.3), 1e-12)
}

func TestEaseMonotonic(t *testing.T) {
	for _, name := range []string{"none", "power1.in", "power2.out", "power2.inOut", "power4.in", "power4.out"} {
		ease := MustEase(name)
		previous := ease(0)
		for i := 1; i <= 100; i++ {
			value := ease(float64(i) / 100)
			assert.GreaterOrEqual(t, value, previous, name)
			previous = value
		}
	}
}
