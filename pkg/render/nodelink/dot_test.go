package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphsketch/pkg/graph"
)

func TestToDOT_Basic(t *testing.T) {
	nodes := []graph.Node{
		{ID: "1", X: 72, Y: 144, Color: graph.ColorRed},
		{ID: "2", X: 144, Y: 72, Color: graph.ColorBlue},
	}
	edges := []graph.Edge{{Source: "1", Target: "2", Weight: 5, Style: graph.Directed}}

	dot := ToDOT(nodes, edges, Options{Width: 288, Height: 288})

	for _, want := range []string{
		"digraph G",
		`"1" [label="1", fillcolor="red", pos="1,2!"];`,
		`"2" [label="2", fillcolor="#2ca4ea", pos="2,3!"];`,
		`"1" -> "2" [dir=forward, label="5"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestToDOT_DirPerStyle(t *testing.T) {
	tests := []struct {
		style graph.EdgeStyle
		want  string
	}{
		{graph.Directed, "dir=forward"},
		{graph.DoubleSided, "dir=both"},
		{graph.Undirected, "dir=none"},
	}
	nodes := []graph.Node{{ID: "1"}}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			dot := ToDOT(nodes, []graph.Edge{{Source: "1", Target: "1", Weight: 1, Style: tt.style}}, Options{})
			if !strings.Contains(dot, tt.want) {
				t.Errorf("ToDOT() missing %q\n%s", tt.want, dot)
			}
		})
	}
}

func TestToDOT_HideWeightsAndNaN(t *testing.T) {
	nodes := []graph.Node{{ID: "1"}, {ID: "2"}}
	edges := []graph.Edge{{Source: "1", Target: "2", Weight: graph.NaN()}}

	if dot := ToDOT(nodes, edges, Options{}); !strings.Contains(dot, `label="NaN"`) {
		t.Errorf("NaN weight should be labelled NaN\n%s", dot)
	}
	if dot := ToDOT(nodes, edges, Options{HideWeights: true}); strings.Contains(dot, "NaN") {
		t.Errorf("HideWeights should drop labels\n%s", dot)
	}
}

func TestFromSnapshot(t *testing.T) {
	g := graph.New()
	a := g.AddNode(graph.Point{X: 1, Y: 2}, graph.ColorGreen)
	g.AddEdge(a.ID, a.ID, 4, graph.Directed)

	nodes, edges := FromSnapshot(g.Snapshot(), graph.DoubleSided)
	if len(nodes) != 1 || nodes[0].Color != graph.ColorGreen || nodes[0].X != 1 {
		t.Errorf("nodes = %+v", nodes)
	}
	if len(edges) != 1 || edges[0].Style != graph.DoubleSided || edges[0].Weight != 4 {
		t.Errorf("edges = %+v", edges)
	}
}
