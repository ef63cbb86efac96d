// Package graph holds the editor's authoritative graph model and its wire format.
//
// A [Graph] owns the nodes and weighted edges a user has drawn. Nodes receive
// sequential string IDs ("1", "2", ...) in creation order and are never removed,
// so every edge endpoint stays valid once the edge exists. Edges are never
// mutated after creation; parallel edges and self-loops are allowed.
//
// # Core Types
//
//   - [Node]: positioned, coloured vertex
//   - [Edge]: source/target pair with a [Weight] and an [EdgeStyle]
//   - [Snapshot]: the exported view, `{"nodes": [...], "links": [...]}`
//
// # Weights
//
// Weights are parsed permissively with [ParseWeight]: unparsable text yields
// NaN and still creates the edge. NaN weights serialize as JSON null.
//
//	w := graph.ParseWeight("5kg") // 5
//	w = graph.ParseWeight("abc")  // NaN
//
// # Snapshots
//
//	snap := g.Snapshot()
//	data, _ := graph.MarshalSnapshot(snap)
//	graph.WriteSnapshotFile(snap, "graph.json")
//
// # Concurrency
//
// Graph is not safe for concurrent use. The editor mutates it from a single
// goroutine; hosts serving several clients serialize access per graph.
package graph
