package render

import "github.com/matzehuels/graphsketch/pkg/graph"

// Drawing constants shared by renderers.
const (
	// NodeRadius is the radius of a drawn node circle.
	NodeRadius = 20.0

	// WeightFontSize is the font size, in pixels, of edge weight labels.
	WeightFontSize = 12

	// HighlightStrokeWidth is the outline width of a selected node.
	HighlightStrokeWidth = 3

	// EdgeStrokeWidth is the line width of a drawn edge.
	EdgeStrokeWidth = 2
)

// Renderer receives draw events from the editor. Implementations keep
// whatever drawing state they need; the editor never reads it back.
//
// Calls arrive from the editor's single event loop and are never concurrent
// for one editor.
type Renderer interface {
	// NodeAdded draws a new node at its position.
	NodeAdded(n graph.Node)

	// NodeMoved moves a drawn node and its id label.
	NodeMoved(id string, x, y float64)

	// NodeHighlighted turns the selection outline of a node on or off.
	NodeHighlighted(id string, on bool)

	// EdgeAdded draws an edge between the current positions of source and
	// target, plus weightLabel at the midpoint. weightLabel is the text the
	// user typed, not the parsed weight.
	EdgeAdded(source, target string, style graph.EdgeStyle, weightLabel string)
}

// Nop is a Renderer that draws nothing.
type Nop struct{}

func (Nop) NodeAdded(graph.Node)                              {}
func (Nop) NodeMoved(string, float64, float64)                {}
func (Nop) NodeHighlighted(string, bool)                      {}
func (Nop) EdgeAdded(string, string, graph.EdgeStyle, string) {}

// Multi fans every event out to each renderer in order. Nil renderers are
// skipped.
func Multi(renderers ...Renderer) Renderer {
	out := make(multi, 0, len(renderers))
	for _, r := range renderers {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type multi []Renderer

func (m multi) NodeAdded(n graph.Node) {
	for _, r := range m {
		r.NodeAdded(n)
	}
}

func (m multi) NodeMoved(id string, x, y float64) {
	for _, r := range m {
		r.NodeMoved(id, x, y)
	}
}

func (m multi) NodeHighlighted(id string, on bool) {
	for _, r := range m {
		r.NodeHighlighted(id, on)
	}
}

func (m multi) EdgeAdded(source, target string, style graph.EdgeStyle, weightLabel string) {
	for _, r := range m {
		r.EdgeAdded(source, target, style, weightLabel)
	}
}

var (
	_ Renderer = Nop{}
	_ Renderer = multi(nil)
)
