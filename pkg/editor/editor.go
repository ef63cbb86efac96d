package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphsketch/pkg/export"
	"github.com/matzehuels/graphsketch/pkg/graph"
	"github.com/matzehuels/graphsketch/pkg/observability"
	"github.com/matzehuels/graphsketch/pkg/render"
	"github.com/matzehuels/graphsketch/pkg/selection"
)

// DefaultWeightText is the value the weight prompt offers before the user
// types anything.
const DefaultWeightText = "1"

var (
	// ErrUnknownNode is returned when an event names a node that does not
	// exist.
	ErrUnknownNode = graph.ErrUnknownNode

	// ErrWeightPending is returned by [Controller.ClickNode] while a weight
	// prompt is still open.
	ErrWeightPending = errors.New("weight prompt already pending")

	// ErrNoPendingWeight is returned when confirming or cancelling with no
	// open weight prompt.
	ErrNoPendingWeight = errors.New("no pending weight prompt")

	// ErrUnknownEdge is returned by [Controller.DescribeEdge] for an index
	// out of range.
	ErrUnknownEdge = errors.New("unknown edge")
)

// WeightRequest is an open weight prompt for the edge Source -> Target.
type WeightRequest struct {
	Source  graph.Node
	Target  graph.Node
	Default string
}

// Prompt returns the question shown to the user.
func (r WeightRequest) Prompt() string {
	return fmt.Sprintf("Enter weight for edge from %s to %s:", r.Source.ID, r.Target.ID)
}

// Controller is the interaction controller. It is not safe for concurrent use.
type Controller struct {
	canvas    Canvas
	graph     *graph.Graph
	selection selection.Machine
	style     graph.EdgeStyle
	renderer  render.Renderer
	publisher export.Publisher
	hooks     observability.EditorHooks
	logger    *log.Logger

	highlighted string
	pending     *WeightRequest
}

// Option configures a Controller.
type Option func(*Controller)

// WithCanvas sets the canvas size. Non-positive sizes are ignored.
func WithCanvas(c Canvas) Option {
	return func(ctl *Controller) {
		if c.Validate() == nil {
			ctl.canvas = c
		}
	}
}

// WithRenderer sets the renderer receiving draw events.
func WithRenderer(r render.Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithPublisher sets the destination of [Controller.Export].
func WithPublisher(p export.Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEdgeStyle sets the style used for edges until [Controller.SetEdgeStyle]
// is called. The default is [graph.Undirected].
func WithEdgeStyle(s graph.EdgeStyle) Option {
	return func(c *Controller) { c.style = s }
}

// WithHooks overrides the globally registered editor hooks.
func WithHooks(h observability.EditorHooks) Option {
	return func(c *Controller) { c.hooks = h }
}

// New creates a controller over an empty graph.
func New(opts ...Option) *Controller {
	c := &Controller{
		canvas:   DefaultCanvas(),
		graph:    graph.New(),
		renderer: render.Nop{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) observe() observability.EditorHooks {
	if c.hooks != nil {
		return c.hooks
	}
	return observability.Editor()
}

// AddNode places a node of the given colour at the canvas centre.
func (c *Controller) AddNode(color graph.Color) graph.Node {
	return c.AddNodeAt(color, c.canvas.Center())
}

// AddNodeAt places a node at p, clamped into the canvas.
func (c *Controller) AddNodeAt(color graph.Color, p graph.Point) graph.Node {
	p, _ = c.canvas.Clamp(p)
	n := c.graph.AddNode(p, color)
	c.renderer.NodeAdded(n)
	c.observe().OnNodeAdded(string(color))
	c.logger.Debug("node added", "id", n.ID, "x", n.X, "y", n.Y, "color", n.Color)
	return n
}

// DragNode moves a node to raw, clamped into the canvas, and returns the
// updated node. Edges already drawn keep their endpoints.
func (c *Controller) DragNode(id string, raw graph.Point) (graph.Node, error) {
	if _, ok := c.graph.Node(id); !ok {
		return graph.Node{}, fmt.Errorf("drag %q: %w", id, ErrUnknownNode)
	}
	p, clamped := c.canvas.Clamp(raw)
	if err := c.graph.MoveNode(id, p); err != nil {
		return graph.Node{}, fmt.Errorf("drag %q: %w", id, err)
	}
	c.renderer.NodeMoved(id, p.X, p.Y)
	c.observe().OnNodeMoved(clamped)
	n, _ := c.graph.Node(id)
	return n, nil
}

// ClickNode feeds a node click into the selection machine. The first click
// returns nil; the second returns the weight request for an edge from the
// first node to this one. Clicking the same node twice requests a self-loop.
func (c *Controller) ClickNode(id string) (*WeightRequest, error) {
	if c.pending != nil {
		return nil, ErrWeightPending
	}
	n, ok := c.graph.Node(id)
	if !ok {
		return nil, fmt.Errorf("click %q: %w", id, ErrUnknownNode)
	}

	if c.highlighted != "" {
		c.renderer.NodeHighlighted(c.highlighted, false)
	}
	c.renderer.NodeHighlighted(id, true)
	c.highlighted = id

	req, complete := c.selection.Select(id)
	if !complete {
		c.logger.Debug("node selected", "id", id)
		return nil, nil
	}

	source, _ := c.graph.Node(req.Source)
	c.pending = &WeightRequest{Source: source, Target: n, Default: DefaultWeightText}
	c.logger.Debug("weight requested", "source", req.Source, "target", req.Target)
	out := *c.pending
	return &out, nil
}

// Pending returns the open weight request, if any.
func (c *Controller) Pending() (WeightRequest, bool) {
	if c.pending == nil {
		return WeightRequest{}, false
	}
	return *c.pending, true
}

// ConfirmWeight answers the open prompt with text and commits the edge in the
// current style. Text that does not parse as a number yields a NaN weight.
// The edge label shows text as typed.
func (c *Controller) ConfirmWeight(text string) (graph.Edge, error) {
	if c.pending == nil {
		return graph.Edge{}, ErrNoPendingWeight
	}
	req := *c.pending
	c.pending = nil

	w := graph.ParseWeight(text)
	e, err := c.graph.AddEdge(req.Source.ID, req.Target.ID, w, c.style)
	if err != nil {
		return graph.Edge{}, fmt.Errorf("commit edge: %w", err)
	}
	c.renderer.EdgeAdded(e.Source, e.Target, e.Style, text)
	c.observe().OnEdgeCommitted(e.Style.String(), w.IsNaN())
	c.logger.Debug("link added", "source", e.Source, "target", e.Target, "weight", e.Weight, "style", e.Style)
	return e, nil
}

// CancelWeight dismisses the open prompt without creating an edge. The
// selection stays reset.
func (c *Controller) CancelWeight() error {
	if c.pending == nil {
		return ErrNoPendingWeight
	}
	req := c.pending
	c.pending = nil
	c.observe().OnEdgeCancelled()
	c.logger.Debug("weight prompt cancelled", "source", req.Source.ID, "target", req.Target.ID)
	return nil
}

// SetEdgeStyle sets the style of edges created from now on.
func (c *Controller) SetEdgeStyle(s graph.EdgeStyle) {
	c.style = s
	c.logger.Debug("edge style set", "style", s)
}

// EdgeStyle returns the current edge style.
func (c *Controller) EdgeStyle() graph.EdgeStyle { return c.style }

// Selection returns the selection machine's state.
func (c *Controller) Selection() selection.State { return c.selection.State() }

// Highlighted returns the node currently drawn as selected.
func (c *Controller) Highlighted() (string, bool) {
	return c.highlighted, c.highlighted != ""
}

// Canvas returns the canvas size.
func (c *Controller) Canvas() Canvas { return c.canvas }

// Graph returns the underlying model. Callers must not mutate it.
func (c *Controller) Graph() *graph.Graph { return c.graph }

// Snapshot returns a deep copy of the graph in export form.
func (c *Controller) Snapshot() graph.Snapshot { return c.graph.Snapshot() }

// DescribeEdge returns the inspection text of the i-th edge.
func (c *Controller) DescribeEdge(i int) (string, error) {
	e, ok := c.graph.Edge(i)
	if !ok {
		return "", fmt.Errorf("edge %d: %w", i, ErrUnknownEdge)
	}
	return e.Describe(), nil
}

// Export snapshots the graph and hands it to the publisher. Without a
// publisher the snapshot is only returned.
func (c *Controller) Export(ctx context.Context) (graph.Snapshot, error) {
	start := time.Now()
	snap := c.graph.Snapshot()

	var err error
	if c.publisher != nil {
		err = c.publisher.Publish(ctx, snap)
	}
	c.observe().OnExport(ctx, len(snap.Nodes), len(snap.Links), time.Since(start), err)
	if err != nil {
		return snap, fmt.Errorf("export: %w", err)
	}
	c.logger.Debug("graph exported", "nodes", len(snap.Nodes), "links", len(snap.Links))
	return snap, nil
}
