// Package editor implements the interaction controller of graphsketch.
//
// A [Controller] turns input events (place a node, drag it, click it, pick
// an edge style, answer the weight prompt, export) into mutations of a
// [graph.Graph], transitions of a [selection.Machine], and draw events on a
// [render.Renderer].
//
// # Edge creation
//
// Clicking two nodes in turn asks for an edge between them. The second click
// returns a [WeightRequest] and the controller suspends edge creation until
// the host answers with [Controller.ConfirmWeight] or
// [Controller.CancelWeight]. Only one request is ever in flight; further
// clicks fail with [ErrWeightPending] until it is resolved.
//
//	c := editor.New(editor.WithRenderer(scene))
//	a := c.AddNode(graph.ColorRed)
//	b := c.AddNode(graph.ColorBlue)
//	c.ClickNode(a.ID)
//	req, _ := c.ClickNode(b.ID)
//	fmt.Println(req.Prompt()) // Enter weight for edge from 1 to 2:
//	c.ConfirmWeight(req.Default)
//
// Confirmation never fails on bad input: text that does not start with a
// number is stored as a NaN weight.
//
// # Concurrency
//
// A Controller is single-writer and holds no locks. Hosts that receive
// events concurrently must serialise them, as the serve command does per session.
package editor
