package roundrect

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Corner is a set of rectangle corners, stored as a bitmask.
type Corner uint8

const (
	TopLeft Corner = 1 << iota
	TopRight
	BottomRight
	BottomLeft

	AllCorners = TopLeft | TopRight | BottomRight | BottomLeft
)

// corners lists the named corners in traversal order.
var corners = [...]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

var cornerNames = map[Corner]string{
	TopLeft:     "top_left",
	TopRight:    "top_right",
	BottomRight: "bottom_right",
	BottomLeft:  "bottom_left",
}

// Contains reports whether every corner in other is also in c.
// The empty set is contained in nothing, so an entry keyed by zero
// bits never matches.
func (c Corner) Contains(other Corner) bool {
	return other != 0 && c&other == other
}

// String returns the corner names joined by "|".
func (c Corner) String() string {
	if c == AllCorners {
		return "all"
	}
	var names []string
	for _, k := range corners {
		if c&k != 0 {
			names = append(names, cornerNames[k])
		}
	}
	if rest := c &^ AllCorners; rest != 0 {
		names = append(names, fmt.Sprintf("0x%02x", uint8(rest)))
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseCorner parses a corner name such as "top_left" or "all".
// Hyphens and camel case ("topLeft", "top-left") are accepted too.
func ParseCorner(name string) (Corner, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	switch key {
	case "topleft", "tl":
		return TopLeft, nil
	case "topright", "tr":
		return TopRight, nil
	case "bottomright", "br":
		return BottomRight, nil
	case "bottomleft", "bl":
		return BottomLeft, nil
	case "all":
		return AllCorners, nil
	}
	return 0, fmt.Errorf("unknown corner %q", name)
}

// UnmarshalYAML accepts a single corner name or a list of names.
func (c *Corner) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		k, err := ParseCorner(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = k
		return nil
	case yaml.SequenceNode:
		var set Corner
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: corner list entries must be names", item.Line)
			}
			k, err := ParseCorner(item.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", item.Line, err)
			}
			set |= k
		}
		*c = set
		return nil
	}
	return fmt.Errorf("line %d: corners must be a name or a list of names", value.Line)
}
