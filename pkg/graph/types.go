package graph

import (
	"fmt"
	"strings"
)

// =============================================================================
// Color
// =============================================================================

// Color is the fill colour chosen from the toolbox when a node is placed.
type Color string

// Node colours offered by the toolbox.
const (
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
	ColorGreen Color = "green"
)

// Colors lists the toolbox colours in toolbox order.
var Colors = []Color{ColorRed, ColorBlue, ColorGreen}

var colorFills = map[Color]string{
	ColorRed:   "red",
	ColorBlue:  "#2ca4ea",
	ColorGreen: "green",
}

// ParseColor converts a colour name to a Color. Matching is case-insensitive.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := colorFills[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// Fill returns the paint value used when drawing a node of this colour.
func (c Color) Fill() string {
	if f, ok := colorFills[c]; ok {
		return f
	}
	return string(c)
}

// =============================================================================
// EdgeStyle
// =============================================================================

// EdgeStyle controls how an edge is drawn and interpreted.
// The zero value is Undirected, which is the style used before any style
// has been chosen.
type EdgeStyle int

const (
	Undirected EdgeStyle = iota
	Directed
	DoubleSided
)

// EdgeStyles lists every style in toolbox order.
var EdgeStyles = []EdgeStyle{Directed, DoubleSided, Undirected}

var styleNames = map[EdgeStyle]string{
	Undirected:  "undirected",
	Directed:    "directed",
	DoubleSided: "double-sided",
}

// ParseEdgeStyle converts a style name ("directed", "double-sided",
// "undirected") to an EdgeStyle.
func ParseEdgeStyle(s string) (EdgeStyle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for style, n := range styleNames {
		if n == name {
			return style, nil
		}
	}
	return Undirected, fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}

// String returns the style's wire name.
func (s EdgeStyle) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("EdgeStyle(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s EdgeStyle) MarshalText() ([]byte, error) {
	n, ok := styleNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStyle, int(s))
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *EdgeStyle) UnmarshalText(text []byte) error {
	style, err := ParseEdgeStyle(string(text))
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// =============================================================================
// Node and Edge
// =============================================================================

// Point is a position on the canvas in pixels, origin at the top-left corner.
type Point struct {
	X float64
	Y float64
}

// Node is a user-placed vertex.
type Node struct {
	ID    string
	X     float64
	Y     float64
	Color Color
}

// Position returns the node's centre.
func (n Node) Position() Point { return Point{X: n.X, Y: n.Y} }

// Edge connects two nodes. Source and Target may be equal.
type Edge struct {
	Source string
	Target string
	Weight Weight
	Style  EdgeStyle
}

// Describe returns the text shown when the user inspects a drawn edge.
func (e Edge) Describe() string {
	prefix := "Edge"
	if e.Style == DoubleSided {
		prefix = "Double-sided edge"
	}
	return fmt.Sprintf("%s from %s to %s, Weight: %s", prefix, e.Source, e.Target, e.Weight)
}
