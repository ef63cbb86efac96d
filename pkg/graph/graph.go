package graph

import (
	"errors"
	"strconv"
)

var (
	// ErrUnknownNode is returned by [Graph.MoveNode] when no node has the ID.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the source
	// node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the target
	// node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidColor is returned by [ParseColor] for names outside the toolbox.
	ErrInvalidColor = errors.New("invalid node color")

	// ErrInvalidStyle is returned by [ParseEdgeStyle] for unknown style names.
	ErrInvalidStyle = errors.New("invalid edge style")
)

// Graph is the in-memory model of a drawing: nodes in creation order, an
// index from node ID to node, and edges in creation order.
//
// The zero value is not usable - use New.
type Graph struct {
	nodes []*Node
	index map[string]*Node
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]*Node)}
}

// AddNode places a node and returns it. The ID is the node count after the
// insertion, formatted in decimal, so IDs run "1", "2", ... without gaps.
func (g *Graph) AddNode(p Point, c Color) Node {
	n := &Node{
		ID:    strconv.Itoa(len(g.nodes) + 1),
		X:     p.X,
		Y:     p.Y,
		Color: c,
	}
	g.nodes = append(g.nodes, n)
	g.index[n.ID] = n
	return *n
}

// MoveNode updates a node's position in place. Bounds are the caller's
// concern; the editor clamps before calling.
func (g *Graph) MoveNode(id string, p Point) error {
	n, ok := g.index[id]
	if !ok {
		return ErrUnknownNode
	}
	n.X, n.Y = p.X, p.Y
	return nil
}

// AddEdge appends an edge between two existing nodes. The weight is stored
// as given, NaN included. Duplicate edges and self-loops are accepted.
func (g *Graph) AddEdge(source, target string, w Weight, style EdgeStyle) (Edge, error) {
	if _, ok := g.index[source]; !ok {
		return Edge{}, ErrUnknownSourceNode
	}
	if _, ok := g.index[target]; !ok {
		return Edge{}, ErrUnknownTargetNode
	}
	e := Edge{Source: source, Target: target, Weight: w, Style: style}
	g.edges = append(g.edges, e)
	return e, nil
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns copies of all nodes in creation order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = *n
	}
	return out
}

// Edge returns the i-th edge in creation order.
func (g *Graph) Edge(i int) (Edge, bool) {
	if i < 0 || i >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[i], true
}

// Edges returns all edges in creation order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
