package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Snapshot is the exported view of a graph handed to the host application.
// Edges are published under "links" and carry no style, matching the host's
// expected shape.
type Snapshot struct {
	Nodes []SnapshotNode `json:"nodes" bson:"nodes"`
	Links []Link         `json:"links" bson:"links"`
}

// SnapshotNode is a node as published in a Snapshot.
type SnapshotNode struct {
	ID    string  `json:"id" bson:"id"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
	Color Color   `json:"color" bson:"color"`
}

// Link is an edge as published in a Snapshot.
type Link struct {
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
	Weight Weight `json:"weight" bson:"weight"`
}

// Snapshot returns a deep copy of the graph in export form. It never
// modifies the graph, and later edits do not affect the returned value.
// Both slices are non-nil so an empty graph encodes as empty arrays.
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Nodes: make([]SnapshotNode, len(g.nodes)),
		Links: make([]Link, len(g.edges)),
	}
	for i, n := range g.nodes {
		s.Nodes[i] = SnapshotNode{ID: n.ID, X: n.X, Y: n.Y, Color: n.Color}
	}
	for i, e := range g.edges {
		s.Links[i] = Link{Source: e.Source, Target: e.Target, Weight: e.Weight}
	}
	return s
}

// MarshalSnapshot encodes a snapshot as indented JSON.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSnapshot(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalSnapshot decodes JSON bytes into a Snapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// WriteSnapshot writes a snapshot as indented JSON to w.
func WriteSnapshot(s Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteSnapshotFile writes a snapshot to a JSON file at path.
func WriteSnapshotFile(s Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSnapshot(s, f)
}

// ReadSnapshotFile reads a snapshot from a JSON file.
func ReadSnapshotFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := UnmarshalSnapshot(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}
