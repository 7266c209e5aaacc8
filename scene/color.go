package scene

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor accepts CSS color names ("steelblue") and hex notation
// ("#88ff88").
func ParseColor(value string) (colorful.Color, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		c, err := colorful.Hex(value)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid color %q: %w", value, err)
		}
		return c, nil
	}
	named, ok := colornames.Map[strings.ToLower(value)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("unknown color name %q", value)
	}
	c, _ := colorful.MakeColor(named)
	return c, nil
}

func MustParseColor(value string) colorful.Color {
	c, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return c
}
