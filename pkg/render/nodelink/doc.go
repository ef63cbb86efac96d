// Package nodelink renders whole graphs through Graphviz.
//
// Where the [svg] scene replays the editor's draw events, this package works
// from a finished graph or snapshot: it converts nodes and edges to DOT with
// every node pinned at its canvas position, then lets Graphviz's neato
// engine draw it as SVG or PNG.
//
//	dot := nodelink.ToDOT(g.Nodes(), g.Edges(), nodelink.Options{Width: 1200, Height: 600})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// Edge arrowheads follow the same style policy as the canvas: the DOT "dir"
// attribute is derived from [render.MarkersFor].
//
// [svg]: github.com/matzehuels/graphsketch/pkg/render/svg
package nodelink
