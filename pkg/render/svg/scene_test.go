package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/graphsketch/pkg/graph"
)

func TestScene_NodesAndLabels(t *testing.T) {
	s := NewScene(1200, 600)
	s.NodeAdded(graph.Node{ID: "1", X: 600, Y: 300, Color: graph.ColorBlue})

	out := string(s.Bytes())
	for _, want := range []string{
		`width="1200" height="600"`,
		`border: 1px solid #ccc`,
		`<circle cx="600" cy="300" r="20" fill="#2ca4ea" data-id="1"/>`,
		`text-anchor="middle" fill="black">1</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q\n%s", want, out)
		}
	}
}

func TestScene_EdgeMarkersByStyle(t *testing.T) {
	tests := []struct {
		style   graph.EdgeStyle
		want    []string
		notWant []string
	}{
		{graph.Directed, []string{`marker-end="url(#arrowhead)"`}, []string{"marker-start"}},
		{graph.DoubleSided, []string{`marker-start="url(#double-arrowhead-start)"`, `marker-end="url(#double-arrowhead-end)"`}, nil},
		{graph.Undirected, nil, []string{"marker-start", "marker-end"}},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			s := NewScene(1200, 600)
			s.NodeAdded(graph.Node{ID: "1", X: 0, Y: 0, Color: graph.ColorRed})
			s.NodeAdded(graph.Node{ID: "2", X: 100, Y: 50, Color: graph.ColorGreen})
			s.EdgeAdded("1", "2", tt.style, "5")

			out := string(s.Bytes())
			line := lineWith(out, "<line ")
			for _, w := range tt.want {
				if !strings.Contains(line, w) {
					t.Errorf("edge %q missing %q", line, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(line, w) {
					t.Errorf("edge %q should not contain %q", line, w)
				}
			}
			if !strings.Contains(out, `<text x="50" y="25" font-size="12px" fill="black">5</text>`) {
				t.Errorf("weight label not at midpoint:\n%s", out)
			}
		})
	}
}

func TestScene_EdgesNotReanchored(t *testing.T) {
	s := NewScene(1200, 600)
	s.NodeAdded(graph.Node{ID: "1", X: 10, Y: 10, Color: graph.ColorRed})
	s.NodeAdded(graph.Node{ID: "2", X: 30, Y: 10, Color: graph.ColorRed})
	s.EdgeAdded("1", "2", graph.Undirected, "1")
	s.NodeMoved("2", 500, 400)

	out := string(s.Bytes())
	if !strings.Contains(out, `<line x1="10" y1="10" x2="30" y2="10"`) {
		t.Errorf("edge should keep its original endpoints:\n%s", out)
	}
	if !strings.Contains(out, `<circle cx="500" cy="400"`) {
		t.Errorf("node circle should follow the drag:\n%s", out)
	}
	if !strings.Contains(out, `<text x="500" y="400" dy=".35em"`) {
		t.Errorf("node label should follow the drag:\n%s", out)
	}
}

func TestScene_PaintsInEventOrder(t *testing.T) {
	s := NewScene(1200, 600)
	s.NodeAdded(graph.Node{ID: "1", X: 10, Y: 10, Color: graph.ColorRed})
	s.NodeAdded(graph.Node{ID: "2", X: 90, Y: 10, Color: graph.ColorRed})
	s.EdgeAdded("1", "2", graph.Undirected, "4")
	s.NodeAdded(graph.Node{ID: "3", X: 50, Y: 10, Color: graph.ColorGreen})

	out := string(s.Bytes())
	first := strings.Index(out, `data-id="1"`)
	line := strings.Index(out, "<line ")
	third := strings.Index(out, `data-id="3"`)
	if first < 0 || line < 0 || third < 0 {
		t.Fatalf("missing shapes:\n%s", out)
	}
	if !(first < line && line < third) {
		t.Errorf("want node 1, then the edge, then node 3:\n%s", out)
	}
	if s.NodeCount() != 3 || s.EdgeCount() != 1 {
		t.Errorf("counts = %d nodes, %d edges", s.NodeCount(), s.EdgeCount())
	}
}

func TestScene_Highlight(t *testing.T) {
	s := NewScene(100, 100)
	s.NodeAdded(graph.Node{ID: "1", X: 5, Y: 5, Color: graph.ColorRed})

	s.NodeHighlighted("1", true)
	if !strings.Contains(string(s.Bytes()), `stroke="black" stroke-width="3"`) {
		t.Error("highlighted node should be outlined")
	}
	s.NodeHighlighted("1", false)
	if strings.Contains(string(s.Bytes()), `stroke-width="3"`) {
		t.Error("outline should be removed")
	}
}

func TestScene_EscapesLabels(t *testing.T) {
	s := NewScene(100, 100)
	s.NodeAdded(graph.Node{ID: "1", Color: graph.ColorRed})
	s.EdgeAdded("1", "1", graph.Directed, "<b>&")

	out := string(s.Bytes())
	if strings.Contains(out, "<b>") {
		t.Error("weight label must be escaped")
	}
	if !strings.Contains(out, "&lt;b&gt;&amp;") {
		t.Errorf("escaped label missing:\n%s", out)
	}
}

func TestScene_UnknownNodesIgnored(t *testing.T) {
	s := NewScene(100, 100)
	s.EdgeAdded("1", "2", graph.Directed, "1")
	s.NodeMoved("1", 1, 1)
	s.NodeHighlighted("1", true)
	if s.EdgeCount() != 0 || s.NodeCount() != 0 {
		t.Errorf("scene drew %d nodes, %d edges; want none", s.NodeCount(), s.EdgeCount())
	}
}

func TestScene_WriteTo(t *testing.T) {
	s := NewScene(100, 100, WithBorder(""))
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
	if strings.Contains(buf.String(), "border") {
		t.Error("border should be omitted")
	}
	if !bytes.Equal(buf.Bytes(), s.Bytes()) {
		t.Error("WriteTo and Bytes disagree")
	}
}

func lineWith(doc, prefix string) string {
	for _, l := range strings.Split(doc, "\n") {
		if strings.Contains(l, prefix) {
			return l
		}
	}
	return ""
}
