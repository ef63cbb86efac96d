// Package render defines how editor state reaches the screen.
//
// # Overview
//
// The editor never draws anything itself. It reports what changed through
// the [Renderer] interface and a renderer decides how to show it:
//
//   - [svg]: retained SVG scene of the canvas
//   - [nodelink]: Graphviz rendering of a whole snapshot (SVG, PNG, DOT)
//   - [NewLogRenderer]: debug trace of draw events
//
// Several renderers can observe one editor through [Multi].
//
// # Edge Styles
//
// Arrowheads are chosen from the [Markers] table, keyed by
// [graph.EdgeStyle]: directed edges end in an arrowhead, double-sided
// edges carry one at each end, undirected edges are plain lines. The SVG
// marker definitions themselves are listed in [MarkerDefs].
//
// # Format Conversion
//
// [ToPDF] converts any SVG using the external rsvg-convert tool (from
// librsvg).
//
//	pdf, err := render.ToPDF(ctx, scene.Bytes())
//
// [svg]: github.com/matzehuels/graphsketch/pkg/render/svg
// [nodelink]: github.com/matzehuels/graphsketch/pkg/render/nodelink
package render
