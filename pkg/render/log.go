package render

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphsketch/pkg/graph"
)

// LogRenderer traces draw events at debug level. It is useful next to a real
// renderer when diagnosing what the editor asked to draw.
type LogRenderer struct {
	logger *log.Logger
}

// NewLogRenderer returns a renderer writing to logger, or to log.Default()
// when logger is nil.
func NewLogRenderer(logger *log.Logger) *LogRenderer {
	if logger == nil {
		logger = log.Default()
	}
	return &LogRenderer{logger: logger.WithPrefix("render")}
}

func (r *LogRenderer) NodeAdded(n graph.Node) {
	r.logger.Debug("draw node", "id", n.ID, "x", n.X, "y", n.Y, "color", n.Color)
}

func (r *LogRenderer) NodeMoved(id string, x, y float64) {
	r.logger.Debug("move node", "id", id, "x", x, "y", y)
}

func (r *LogRenderer) NodeHighlighted(id string, on bool) {
	r.logger.Debug("highlight node", "id", id, "on", on)
}

func (r *LogRenderer) EdgeAdded(source, target string, style graph.EdgeStyle, weightLabel string) {
	m := MarkersFor(style)
	r.logger.Debug("draw edge", "source", source, "target", target, "style", style,
		"marker_start", m.Start, "marker_end", m.End, "label", weightLabel)
}

var _ Renderer = (*LogRenderer)(nil)
