package graph

import (
	"errors"
	"strconv"
	"testing"
)

func TestAddNode_SequentialIDs(t *testing.T) {
	g := New()
	for i := 1; i <= 25; i++ {
		n := g.AddNode(Point{X: float64(i), Y: 0}, Colors[i%len(Colors)])
		if want := strconv.Itoa(i); n.ID != want {
			t.Fatalf("AddNode #%d ID = %q, want %q", i, n.ID, want)
		}
	}
	if g.NodeCount() != 25 {
		t.Errorf("NodeCount() = %d, want 25", g.NodeCount())
	}
	for i, n := range g.Nodes() {
		if n.ID != strconv.Itoa(i+1) {
			t.Errorf("Nodes()[%d].ID = %q, want %q", i, n.ID, strconv.Itoa(i+1))
		}
	}
}

func TestMoveNode(t *testing.T) {
	g := New()
	n := g.AddNode(Point{X: 600, Y: 300}, ColorRed)

	if err := g.MoveNode(n.ID, Point{X: 10, Y: 20}); err != nil {
		t.Fatalf("MoveNode: %v", err)
	}
	got, ok := g.Node(n.ID)
	if !ok {
		t.Fatal("Node() not found after move")
	}
	if got.X != 10 || got.Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", got.X, got.Y)
	}

	if err := g.MoveNode("99", Point{}); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("MoveNode(unknown) = %v, want ErrUnknownNode", err)
	}
}

func TestAddEdge(t *testing.T) {
	g := New()
	a := g.AddNode(Point{}, ColorRed)
	b := g.AddNode(Point{}, ColorGreen)

	tests := []struct {
		name    string
		source  string
		target  string
		wantErr error
	}{
		{"distinct", a.ID, b.ID, nil},
		{"duplicate", a.ID, b.ID, nil},
		{"self loop", a.ID, a.ID, nil},
		{"unknown source", "9", b.ID, ErrUnknownSourceNode},
		{"unknown target", a.ID, "9", ErrUnknownTargetNode},
	}

	wantEdges := 0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := g.AddEdge(tt.source, tt.target, 1, Directed)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			wantEdges++
			if e.Source != tt.source || e.Target != tt.target {
				t.Errorf("edge = %s->%s, want %s->%s", e.Source, e.Target, tt.source, tt.target)
			}
		})
	}
	if g.EdgeCount() != wantEdges {
		t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), wantEdges)
	}
}

func TestAddEdge_NaNWeightKept(t *testing.T) {
	g := New()
	a := g.AddNode(Point{}, ColorRed)
	b := g.AddNode(Point{}, ColorBlue)

	e, err := g.AddEdge(a.ID, b.ID, ParseWeight("heavy"), Undirected)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !e.Weight.IsNaN() {
		t.Errorf("weight = %v, want NaN", e.Weight)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	g := New()
	a := g.AddNode(Point{X: 1, Y: 1}, ColorRed)
	g.AddEdge(a.ID, a.ID, 3, Directed)

	nodes := g.Nodes()
	nodes[0].X = 500
	edges := g.Edges()
	edges[0].Weight = 7

	n, _ := g.Node(a.ID)
	if n.X != 1 {
		t.Errorf("node mutated through Nodes() copy: X = %v", n.X)
	}
	e, _ := g.Edge(0)
	if e.Weight != 3 {
		t.Errorf("edge mutated through Edges() copy: weight = %v", e.Weight)
	}
	if _, ok := g.Edge(1); ok {
		t.Error("Edge(1) should not exist")
	}
	if _, ok := g.Edge(-1); ok {
		t.Error("Edge(-1) should not exist")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{"Blue", ColorBlue, false},
		{" green ", ColorGreen, false},
		{"purple", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidColor) {
				t.Errorf("error %v should wrap ErrInvalidColor", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorFill(t *testing.T) {
	if got := ColorBlue.Fill(); got != "#2ca4ea" {
		t.Errorf("ColorBlue.Fill() = %q, want #2ca4ea", got)
	}
	if got := ColorRed.Fill(); got != "red" {
		t.Errorf("ColorRed.Fill() = %q, want red", got)
	}
}

func TestEdgeStyleText(t *testing.T) {
	for _, s := range EdgeStyles {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back EdgeStyle
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != s {
			t.Errorf("round trip %v -> %q -> %v", s, text, back)
		}
	}

	var zero EdgeStyle
	if zero != Undirected {
		t.Errorf("zero EdgeStyle = %v, want undirected", zero)
	}
	if _, err := ParseEdgeStyle("curvy"); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("ParseEdgeStyle(curvy) error = %v, want ErrInvalidStyle", err)
	}
}

func TestEdgeDescribe(t *testing.T) {
	tests := []struct {
		edge Edge
		want string
	}{
		{Edge{Source: "1", Target: "2", Weight: 5, Style: Directed}, "Edge from 1 to 2, Weight: 5"},
		{Edge{Source: "1", Target: "2", Weight: 2.5, Style: Undirected}, "Edge from 1 to 2, Weight: 2.5"},
		{Edge{Source: "2", Target: "1", Weight: 1, Style: DoubleSided}, "Double-sided edge from 2 to 1, Weight: 1"},
		{Edge{Source: "3", Target: "3", Weight: NaN(), Style: Directed}, "Edge from 3 to 3, Weight: NaN"},
	}
	for _, tt := range tests {
		if got := tt.edge.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}
