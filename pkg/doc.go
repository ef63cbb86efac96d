// Package pkg provides the core libraries for the graphsketch graph editor.
//
// # Overview
//
// graphsketch lets a user place coloured nodes on a fixed canvas, drag them
// around, and connect pairs of nodes with weighted edges by clicking one node
// and then another. The finished graph exports as a JSON node-link snapshot.
// The pkg directory is organized into three areas:
//
//  1. Editor core - graph model, selection, interaction controller
//  2. Adapters - rendering and export
//  3. Services - sessions, HTTP API, caching, configuration, metrics
//
// # Architecture
//
// One user event flows through the core like this:
//
//	UI event (add / drag / click / style / weight)
//	         ↓
//	    [editor] controller (clamp, select, prompt)
//	         ↓
//	    [graph] model mutation       [selection] state change
//	         ↓
//	    [render] events → [render/svg] scene, log renderer
//	         ↓
//	    [export] publishers on demand (file, HTTP, Redis, MongoDB)
//
// # Quick Start
//
// Build a two-node graph and export it:
//
//	scene := svg.NewScene(1200, 600)
//	c := editor.New(
//	    editor.WithRenderer(scene),
//	    editor.WithPublisher(export.FilePublisher{Path: "graph.json"}),
//	)
//
//	a := c.AddNode(graph.ColorRed)
//	b := c.AddNode(graph.ColorBlue)
//	c.ClickNode(a.ID)
//	req, _ := c.ClickNode(b.ID) // req.Prompt() == "Enter weight for edge from 1 to 2:"
//	c.ConfirmWeight("2.5")
//
//	snap, _ := c.Export(ctx)
//
// # Main Packages
//
// ## Editor Core
//
// [graph] - Nodes, edges, weights and the exported snapshot format.
//
// [selection] - The two-click state machine that turns node picks into edge
// requests.
//
// [editor] - The interaction controller: canvas clamping, the weight prompt,
// edge style, render events and export.
//
// [script] - A line-based event script driving a controller headlessly.
//
// ## Adapters
//
// [render] - The Renderer event interface, marker table and fan-out helpers.
//
// [render/svg] - The editor canvas as an SVG document.
//
// [render/nodelink] - Snapshot drawings through Graphviz.
//
// [export] - Publishers delivering snapshots to files, HTTP endpoints, Redis
// and MongoDB.
//
// ## Services
//
// [session] - In-memory editor sessions with idle expiry.
//
// [api] - The chi HTTP service exposing sessions.
//
// [cache] - Render cache with file, Redis and null backends.
//
// [config] - TOML configuration.
//
// [observability] - Hook interfaces and Prometheus metrics.
//
// [errors] - Coded errors and input validation.
//
// [httputil] - Retrying HTTP POST used by the HTTP publisher.
//
// # Testing
//
// Run tests:
//
//	go test ./...                  # All tests
//	go test ./pkg/editor/...       # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/graph
// [selection]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/selection
// [editor]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/editor
// [script]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/script
// [render]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/render/svg
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/render/nodelink
// [export]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/export
// [session]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/session
// [api]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/api
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/graphsketch/pkg/httputil
package pkg
