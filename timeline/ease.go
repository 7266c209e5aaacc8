package timeline

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownEase = errors.New("unknown ease")

// Ease maps normalized tween time in [0,1] to normalized progress.
// Every Ease returns 0 for 0 and 1 for 1.
type Ease func(t float64) float64

// DefaultEaseName is used by tweens that do not name an ease.
const DefaultEaseName = "power2.inOut"

func Linear(t float64) float64 {
	return t
}

// PowerIn returns an ease-in curve of the given power (power1 is quadratic).
func PowerIn(power int) Ease {
	exp := float64(power + 1)
	return func(t float64) float64 {
		return math.Pow(t, exp)
	}
}

func PowerOut(power int) Ease {
	exp := float64(power + 1)
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, exp)
	}
}

func PowerInOut(power int) Ease {
	exp := float64(power + 1)
	return func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2*t, exp) / 2
		}
		return 1 - math.Pow(2*(1-t), exp)/2
	}
}

var aliases = map[string]string{
	"":            DefaultEaseName,
	"linear":      "none",
	"power0":      "none",
	"ease-in":     "power1.in",
	"ease-out":    "power1.out",
	"ease-in-out": "power1.inOut",
	"quad":        "power1",
	"cubic":       "power2",
	"quart":       "power3",
	"quint":       "power4",
}

// ParseEase resolves a GSAP style ease name such as "none", "power2.inOut"
// or "power4.in". A bare "powerN" is the out variant.
func ParseEase(name string) (Ease, error) {
	name = strings.TrimSpace(name)
	family, variant, _ := strings.Cut(name, ".")
	if alias, ok := aliases[family]; ok {
		family, variant, _ = strings.Cut(alias+variantSuffix(variant), ".")
	}
	if family == "none" {
		if variant != "" {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
		}
		return Linear, nil
	}

	powerText, ok := strings.CutPrefix(family, "power")
	if !ok || len(powerText) != 1 || powerText[0] < '1' || powerText[0] > '4' {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	power := int(powerText[0] - '0')

	switch variant {
	case "in":
		return PowerIn(power), nil
	case "", "out":
		return PowerOut(power), nil
	case "inOut":
		return PowerInOut(power), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
}

func variantSuffix(variant string) string {
	if variant == "" {
		return ""
	}
	return "." + variant
}

// MustEase is like ParseEase but panics on unknown names.
func MustEase(name string) Ease {
	ease, err := ParseEase(name)
	if err != nil {
		panic(err)
	}
	return ease
}
