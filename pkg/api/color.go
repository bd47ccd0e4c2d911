package api

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned for color strings that are neither a known
// name nor a hex value.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor parses an SVG color name ("steelblue"), "#rgb", "#rrggbb" or
// "#rrggbbaa". The empty string and "none" give a nil color, which means
// "do not paint".
func ParseColor(s string) (color.Color, error) {
	low := strings.ToLower(strings.TrimSpace(s))
	switch low {
	case "", "none":
		return nil, nil
	case "transparent":
		return color.Transparent, nil
	}

	if strings.HasPrefix(low, "#") {
		return parseHex(low[1:])
	}

	c, ok := colornames.Map[low]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}

func parseHex(x string) (color.Color, error) {
	var r, g, b int
	a := 0xff
	var err error
	switch len(x) {
	case 3:
		_, err = fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		err = errors.New("wrong length")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: #%s", ErrUnknownColor, x)
	}
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}
