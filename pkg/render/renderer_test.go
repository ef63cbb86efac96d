package render

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	gserrors "github.com/matzehuels/graphsketch/pkg/errors"
	"github.com/matzehuels/graphsketch/pkg/graph"
)

type countingRenderer struct {
	added, moved, highlighted, edges int
}

func (c *countingRenderer) NodeAdded(graph.Node)                              { c.added++ }
func (c *countingRenderer) NodeMoved(string, float64, float64)                { c.moved++ }
func (c *countingRenderer) NodeHighlighted(string, bool)                      { c.highlighted++ }
func (c *countingRenderer) EdgeAdded(string, string, graph.EdgeStyle, string) { c.edges++ }

func TestMulti_FansOut(t *testing.T) {
	a, b := &countingRenderer{}, &countingRenderer{}
	r := Multi(a, nil, b)

	r.NodeAdded(graph.Node{ID: "1"})
	r.NodeMoved("1", 1, 2)
	r.NodeHighlighted("1", true)
	r.EdgeAdded("1", "1", graph.Directed, "5")

	for name, c := range map[string]*countingRenderer{"a": a, "b": b} {
		if c.added != 1 || c.moved != 1 || c.highlighted != 1 || c.edges != 1 {
			t.Errorf("renderer %s counts = %+v, want one of each", name, *c)
		}
	}
}

func TestMarkersFor(t *testing.T) {
	tests := []struct {
		style graph.EdgeStyle
		want  MarkerSet
	}{
		{graph.Directed, MarkerSet{End: "arrowhead"}},
		{graph.DoubleSided, MarkerSet{Start: "double-arrowhead-start", End: "double-arrowhead-end"}},
		{graph.Undirected, MarkerSet{}},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			if got := MarkersFor(tt.style); got != tt.want {
				t.Errorf("MarkersFor(%v) = %+v, want %+v", tt.style, got, tt.want)
			}
		})
	}
}

func TestMarkerDefsCoverTable(t *testing.T) {
	defined := make(map[string]bool)
	for _, d := range MarkerDefs {
		defined[d.ID] = true
	}
	for style, m := range Markers {
		for _, id := range []string{m.Start, m.End} {
			if id != "" && !defined[id] {
				t.Errorf("style %v references undefined marker %q", style, id)
			}
		}
	}
}

func TestLogRenderer(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	r := NewLogRenderer(logger)

	r.EdgeAdded("1", "2", graph.DoubleSided, "7")

	out := buf.String()
	for _, want := range []string{"draw edge", "double-arrowhead-start", "label=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestToPDFWithoutRsvg(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err == nil {
		t.Skip("rsvg-convert installed")
	}
	_, err := ToPDF(context.Background(), []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	if !gserrors.Is(err, gserrors.ErrCodeUnsupported) {
		t.Errorf("err = %v, want UNSUPPORTED", err)
	}
}
