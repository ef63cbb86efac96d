package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphsketch/pkg/config"
	gserrors "github.com/matzehuels/graphsketch/pkg/errors"
	"github.com/matzehuels/graphsketch/pkg/graph"
)

const sampleScript = `# two nodes and one weighted edge
add red
add blue 100 50
style directed
click 1
click 2
weight 2.5
drag 1 5000 -10
`

// newTestCLI isolates config and cache lookups inside a temp dir.
func newTestCLI(t *testing.T) (*CLI, context.Context, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	c := New(&bytes.Buffer{}, log.DebugLevel)
	return c, withLogger(context.Background(), c.Logger), dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	for _, name := range []string{"edit", "replay", "render", "serve", "config", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag missing")
	}
}

func TestReplayWritesSnapshot(t *testing.T) {
	c, ctx, dir := newTestCLI(t)
	scriptPath := writeFile(t, filepath.Join(dir, "graph.gs"), sampleScript)
	out := filepath.Join(dir, "graph.json")
	canvas := filepath.Join(dir, "graph.svg")

	var stdout bytes.Buffer
	if err := c.runReplay(ctx, scriptPath, replayOpts{output: out, svg: canvas}, &stdout); err != nil {
		t.Fatalf("runReplay: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should stay empty when -o is given, got %q", stdout.String())
	}

	snap, err := graph.ReadSnapshotFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Nodes) != 2 || len(snap.Links) != 1 {
		t.Fatalf("snapshot = %+v, want 2 nodes and 1 link", snap)
	}
	if n := snap.Nodes[0]; n.X != 1200 || n.Y != 0 {
		t.Errorf("dragged node at (%v, %v), want clamped (1200, 0)", n.X, n.Y)
	}
	if l := snap.Links[0]; l.Source != "1" || l.Target != "2" || l.Weight != 2.5 {
		t.Errorf("link = %+v", l)
	}

	data, err := os.ReadFile(canvas)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`marker-end="url(#arrowhead)"`)) {
		t.Errorf("canvas SVG lacks the directed marker:\n%s", data)
	}
}

func TestReplayToStdout(t *testing.T) {
	c, ctx, dir := newTestCLI(t)
	scriptPath := writeFile(t, filepath.Join(dir, "g.gs"), "add green\n")

	var stdout bytes.Buffer
	if err := c.runReplay(ctx, scriptPath, replayOpts{}, &stdout); err != nil {
		t.Fatalf("runReplay: %v", err)
	}
	snap, err := graph.UnmarshalSnapshot(stdout.Bytes())
	if err != nil {
		t.Fatalf("stdout is not a snapshot: %v\n%s", err, stdout.String())
	}
	if len(snap.Nodes) != 1 || snap.Nodes[0].Color != graph.ColorGreen {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestReplayScriptWithExportPublishesOnce(t *testing.T) {
	tests := []struct {
		name   string
		script string
		nodes  int
	}{
		{"trailing export", "add green\nexport\n", 1},
		{"export mid-script", "add green\nexport\nadd red\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ctx, dir := newTestCLI(t)
			scriptPath := writeFile(t, filepath.Join(dir, "g.gs"), tt.script)

			var stdout bytes.Buffer
			if err := c.runReplay(ctx, scriptPath, replayOpts{}, &stdout); err != nil {
				t.Fatalf("runReplay: %v", err)
			}
			snap, err := graph.UnmarshalSnapshot(stdout.Bytes())
			if err != nil {
				t.Fatalf("stdout should hold exactly one snapshot: %v\n%s", err, stdout.String())
			}
			if len(snap.Nodes) != tt.nodes {
				t.Errorf("published %d nodes, want %d", len(snap.Nodes), tt.nodes)
			}
		})
	}
}

func TestReplayErrors(t *testing.T) {
	c, ctx, dir := newTestCLI(t)

	tests := []struct {
		name   string
		script string
		code   gserrors.Code
	}{
		{"syntax", "add purple\n", gserrors.ErrCodeInvalidScript},
		{"unknown node", "add red\nclick 9\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, filepath.Join(dir, tt.name+".gs"), tt.script)
			err := c.runReplay(ctx, p, replayOpts{}, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.code != "" && !gserrors.Is(err, tt.code) {
				t.Errorf("error %v does not carry %s", err, tt.code)
			}
		})
	}
}

func TestReplayRejectsBadConfig(t *testing.T) {
	c, ctx, dir := newTestCLI(t)
	c.configPath = writeFile(t, filepath.Join(dir, "bad.toml"), "[canvas]\nwidth = -1.0\nheight = 10.0\n")
	scriptPath := writeFile(t, filepath.Join(dir, "g.gs"), "add red\n")

	err := c.runReplay(ctx, scriptPath, replayOpts{}, &bytes.Buffer{})
	if !gserrors.Is(err, gserrors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestRenderDOTAndCanvas(t *testing.T) {
	c, ctx, dir := newTestCLI(t)
	snap := graph.Snapshot{
		Nodes: []graph.SnapshotNode{
			{ID: "1", X: 100, Y: 100, Color: graph.ColorRed},
			{ID: "2", X: 300, Y: 200, Color: graph.ColorBlue},
		},
		Links: []graph.Link{{Source: "1", Target: "2", Weight: 4}},
	}
	input := filepath.Join(dir, "graph.json")
	if err := graph.WriteSnapshotFile(snap, input); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{formats: []string{formatDOT, formatCanvas}, style: "double-sided", noCache: true}
	if err := c.runRender(ctx, input, opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	dot, err := os.ReadFile(filepath.Join(dir, "graph.dot"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), `"1" -> "2" [dir=both, label="4"]`) {
		t.Errorf("DOT edge missing:\n%s", dot)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "graph.canvas.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("double-arrowhead-start")) {
		t.Errorf("canvas lacks double-sided markers:\n%s", svg)
	}
}

func TestRenderRejectsUnknownInput(t *testing.T) {
	c, ctx, dir := newTestCLI(t)
	input := filepath.Join(dir, "graph.json")
	if err := graph.WriteSnapshotFile(graph.Snapshot{}, input); err != nil {
		t.Fatal(err)
	}

	err := c.runRender(ctx, input, renderOpts{formats: []string{"gif"}})
	if !gserrors.Is(err, gserrors.ErrCodeInvalidFormat) {
		t.Errorf("format gif: err = %v, want INVALID_FORMAT", err)
	}
	err = c.runRender(ctx, input, renderOpts{formats: []string{formatDOT}, style: "zigzag"})
	if !gserrors.Is(err, gserrors.ErrCodeInvalidStyle) {
		t.Errorf("style zigzag: err = %v, want INVALID_STYLE", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"SVG, png,,dot", []string{"svg", "png", "dot"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.in)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		base   string
		format string
		count  int
		want   string
	}{
		{"out/graph", formatSVG, 1, "out/graph.svg"},
		{"out/graph.svg", formatSVG, 1, "out/graph.svg"},
		{"out/graph.svg", formatSVG, 2, "out/graph.svg.svg"},
		{"graph", formatCanvas, 2, "graph.canvas.svg"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.base, tt.format, tt.count); got != tt.want {
			t.Errorf("outputPath(%q, %q, %d) = %q, want %q", tt.base, tt.format, tt.count, got, tt.want)
		}
	}
}

func TestNewCacheDisabled(t *testing.T) {
	_, ctx, _ := newTestCLI(t)
	c, err := newCache(ctx, config.CacheConfig{Enabled: false})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "png:x"); ok {
		t.Error("disabled cache returned a hit")
	}
}
