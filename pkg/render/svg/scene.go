// Package svg renders the editor canvas as an SVG document.
//
// A [Scene] is a retained drawing: it implements [render.Renderer], records
// what the editor asked to draw, and serializes the result on demand. Edges
// are drawn between node positions at the moment the edge was added and are
// not re-anchored when a node is later dragged; only the node circle and its
// id label follow a drag. Shapes paint in the order their events arrived, so
// a node added after an edge covers it.
package svg

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/matzehuels/graphsketch/pkg/graph"
	"github.com/matzehuels/graphsketch/pkg/render"
)

// shape is one drawn element of a scene.
type shape interface {
	write(buf *bytes.Buffer)
}

type nodeShape struct {
	id          string
	x, y        float64
	fill        string
	highlighted bool
}

type edgeShape struct {
	x1, y1, x2, y2 float64
	markers        render.MarkerSet
	label          string
}

// Option configures a Scene.
type Option func(*Scene)

// WithBorder sets the canvas border colour. An empty colour removes it.
func WithBorder(color string) Option { return func(s *Scene) { s.border = color } }

// Scene is an SVG drawing of one canvas. It is not safe for concurrent use.
type Scene struct {
	width, height float64
	border        string
	shapes        []shape
	byID          map[string]*nodeShape
	nodeCount     int
	edgeCount     int
}

// NewScene creates an empty scene of the given canvas size.
func NewScene(width, height float64, opts ...Option) *Scene {
	s := &Scene{
		width:  width,
		height: height,
		border: "#ccc",
		byID:   make(map[string]*nodeShape),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NodeAdded draws a filled circle with the node id centred on it.
func (s *Scene) NodeAdded(n graph.Node) {
	ns := &nodeShape{id: n.ID, x: n.X, y: n.Y, fill: n.Color.Fill()}
	s.shapes = append(s.shapes, ns)
	s.byID[n.ID] = ns
	s.nodeCount++
}

// NodeMoved moves a node circle and its label.
func (s *Scene) NodeMoved(id string, x, y float64) {
	if n, ok := s.byID[id]; ok {
		n.x, n.y = x, y
	}
}

// NodeHighlighted toggles the selection outline.
func (s *Scene) NodeHighlighted(id string, on bool) {
	if n, ok := s.byID[id]; ok {
		n.highlighted = on
	}
}

// EdgeAdded draws a line between the current centres of source and target
// with the style's markers, and the weight label at the midpoint. Events for
// nodes the scene never saw are ignored.
func (s *Scene) EdgeAdded(source, target string, style graph.EdgeStyle, weightLabel string) {
	a, ok := s.byID[source]
	if !ok {
		return
	}
	b, ok := s.byID[target]
	if !ok {
		return
	}
	s.shapes = append(s.shapes, edgeShape{
		x1: a.x, y1: a.y, x2: b.x, y2: b.y,
		markers: render.MarkersFor(style),
		label:   weightLabel,
	})
	s.edgeCount++
}

// NodeCount returns the number of drawn nodes.
func (s *Scene) NodeCount() int { return s.nodeCount }

// EdgeCount returns the number of drawn edges.
func (s *Scene) EdgeCount() int { return s.edgeCount }

// Bytes returns the scene as an SVG document.
func (s *Scene) Bytes() []byte {
	var buf bytes.Buffer
	s.write(&buf)
	return buf.Bytes()
}

// WriteTo writes the SVG document to w.
func (s *Scene) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	s.write(&buf)
	return buf.WriteTo(w)
}

func (s *Scene) write(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s"`,
		num(s.width), num(s.height), num(s.width), num(s.height))
	if s.border != "" {
		fmt.Fprintf(buf, ` style="border: 1px solid %s; box-sizing: border-box"`, html.EscapeString(s.border))
	}
	buf.WriteString(">\n")

	writeDefs(buf)

	for _, sh := range s.shapes {
		sh.write(buf)
	}

	buf.WriteString("</svg>\n")
}

func writeDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	for _, d := range render.MarkerDefs {
		fmt.Fprintf(buf, `    <marker id="%s" viewBox="%s" refX="%s" refY="0" markerWidth="%d" markerHeight="%d" orient="%s">`,
			d.ID, render.MarkerViewBox, num(d.RefX), render.MarkerSize, render.MarkerSize, d.Orient)
		fmt.Fprintf(buf, `<path d="%s" fill="%s"/></marker>`+"\n", render.MarkerPath, render.MarkerFill)
	}
	buf.WriteString("  </defs>\n")
}

func (n *nodeShape) write(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <g class="node-group"><circle cx="%s" cy="%s" r="%s" fill="%s" data-id="%s"`,
		num(n.x), num(n.y), num(render.NodeRadius), html.EscapeString(n.fill), html.EscapeString(n.id))
	if n.highlighted {
		fmt.Fprintf(buf, ` stroke="black" stroke-width="%d"`, render.HighlightStrokeWidth)
	}
	buf.WriteString("/>")
	fmt.Fprintf(buf, `<text x="%s" y="%s" dy=".35em" text-anchor="middle" fill="black">%s</text></g>`+"\n",
		num(n.x), num(n.y), html.EscapeString(n.id))
}

func (e edgeShape) write(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black" stroke-width="%d"`,
		num(e.x1), num(e.y1), num(e.x2), num(e.y2), render.EdgeStrokeWidth)
	if e.markers.Start != "" {
		fmt.Fprintf(buf, ` marker-start="url(#%s)"`, e.markers.Start)
	}
	if e.markers.End != "" {
		fmt.Fprintf(buf, ` marker-end="url(#%s)"`, e.markers.End)
	}
	buf.WriteString("/>\n")
	fmt.Fprintf(buf, `  <text x="%s" y="%s" font-size="%dpx" fill="black">%s</text>`+"\n",
		num((e.x1+e.x2)/2), num((e.y1+e.y2)/2), render.WeightFontSize, html.EscapeString(e.label))
}

// num formats a coordinate without trailing zeros.
func num(f float64) string {
	return fmt.Sprintf("%g", f)
}

var _ render.Renderer = (*Scene)(nil)
