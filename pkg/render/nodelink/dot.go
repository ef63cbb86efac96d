package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphsketch/pkg/graph"
	"github.com/matzehuels/graphsketch/pkg/render"
)

// pointsPerInch converts canvas pixels to Graphviz inches.
const pointsPerInch = 72.0

// Options configures DOT generation.
type Options struct {
	// Width and Height are the canvas size. Height is needed to flip the y
	// axis, since Graphviz puts the origin at the bottom-left.
	Width  float64
	Height float64

	// HideWeights omits edge weight labels.
	HideWeights bool
}

// ToDOT converts nodes and edges to a Graphviz digraph with pinned node
// positions. Node and edge order is preserved.
func ToDOT(nodes []graph.Node, edges []graph.Edge, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=nodesfirst;\n")
	if opts.Width > 0 && opts.Height > 0 {
		fmt.Fprintf(&buf, "  bb=\"0,0,%s,%s\";\n", fmtFloat(opts.Width), fmtFloat(opts.Height))
	}
	diameter := fmtFloat(2 * render.NodeRadius / pointsPerInch)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fixedsize=true, width=%s, fontcolor=black];\n", diameter)
	buf.WriteString("  edge [color=black, penwidth=2, arrowsize=0.6, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, pos=%q];\n",
			n.ID, n.ID, n.Color.Fill(), pinnedPos(n, opts.Height))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		attrs := fmt.Sprintf("dir=%s", dirFor(e.Style))
		if !opts.HideWeights {
			attrs += fmt.Sprintf(", label=%q", e.Weight.String())
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// FromSnapshot rebuilds nodes and edges from an exported snapshot. Snapshots
// carry no edge style, so every edge gets style.
func FromSnapshot(s graph.Snapshot, style graph.EdgeStyle) ([]graph.Node, []graph.Edge) {
	nodes := make([]graph.Node, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = graph.Node{ID: n.ID, X: n.X, Y: n.Y, Color: n.Color}
	}
	edges := make([]graph.Edge, len(s.Links))
	for i, l := range s.Links {
		edges[i] = graph.Edge{Source: l.Source, Target: l.Target, Weight: l.Weight, Style: style}
	}
	return nodes, edges
}

// dirFor maps an edge style to the DOT dir attribute.
func dirFor(s graph.EdgeStyle) string {
	m := render.MarkersFor(s)
	switch {
	case m.Start != "" && m.End != "":
		return "both"
	case m.End != "":
		return "forward"
	case m.Start != "":
		return "back"
	}
	return "none"
}

func pinnedPos(n graph.Node, height float64) string {
	y := n.Y
	if height > 0 {
		y = height - n.Y
	}
	return fmtFloat(n.X/pointsPerInch) + "," + fmtFloat(y/pointsPerInch) + "!"
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine, which
// honours pinned positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
