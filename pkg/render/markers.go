package render

import "github.com/matzehuels/graphsketch/pkg/graph"

// Marker ids referenced from drawn edges.
const (
	MarkerArrowhead            = "arrowhead"
	MarkerDoubleArrowheadStart = "double-arrowhead-start"
	MarkerDoubleArrowheadEnd   = "double-arrowhead-end"
)

// MarkerSet names the markers placed at the ends of an edge. An empty
// field means no marker at that end.
type MarkerSet struct {
	Start string
	End   string
}

// Markers maps each edge style to its arrowheads.
var Markers = map[graph.EdgeStyle]MarkerSet{
	graph.Directed:    {End: MarkerArrowhead},
	graph.DoubleSided: {Start: MarkerDoubleArrowheadStart, End: MarkerDoubleArrowheadEnd},
	graph.Undirected:  {},
}

// MarkersFor returns the marker set for a style. Unknown styles draw as
// undirected.
func MarkersFor(s graph.EdgeStyle) MarkerSet {
	return Markers[s]
}

// MarkerDef describes one SVG arrowhead marker.
type MarkerDef struct {
	ID     string
	RefX   float64
	Orient string
}

// Shared geometry of every marker.
const (
	MarkerViewBox = "0 -5 10 10"
	MarkerSize    = 6
	MarkerPath    = "M0,-5L10,0L0,5"
	MarkerFill    = "#000"
)

// MarkerDefs lists the marker definitions a canvas must declare.
var MarkerDefs = []MarkerDef{
	{ID: MarkerArrowhead, RefX: 10, Orient: "auto"},
	{ID: MarkerDoubleArrowheadStart, RefX: 5, Orient: "auto-start-reverse"},
	{ID: MarkerDoubleArrowheadEnd, RefX: 5, Orient: "auto"},
}
