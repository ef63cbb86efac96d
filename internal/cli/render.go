package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsketch/pkg/cache"
	gserrors "github.com/matzehuels/graphsketch/pkg/errors"
	"github.com/matzehuels/graphsketch/pkg/graph"
	"github.com/matzehuels/graphsketch/pkg/render"
	"github.com/matzehuels/graphsketch/pkg/render/nodelink"
	"github.com/matzehuels/graphsketch/pkg/render/svg"
)

// Output formats of the render command.
const (
	formatSVG    = "svg"    // Graphviz node-link drawing
	formatCanvas = "canvas" // the editor's own SVG canvas
	formatPNG    = "png"
	formatPDF    = "pdf"
	formatDOT    = "dot"
)

var formatExt = map[string]string{
	formatSVG:    ".svg",
	formatCanvas: ".canvas.svg",
	formatPNG:    ".png",
	formatPDF:    ".pdf",
	formatDOT:    ".dot",
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // base output path; defaults to the input without .json
	formats     []string // output formats
	style       string   // edge style applied to every link
	hideWeights bool     // omit weight labels
	noCache     bool     // bypass the render cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formats string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <snapshot.json>",
		Short: "Draw an exported snapshot",
		Long: `Render a JSON snapshot as an image.

Formats: svg (Graphviz), canvas (editor canvas SVG), png, pdf, dot.
Snapshots do not record edge styles, so --style applies to every link.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formats)
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "base output path")
	cmd.Flags().StringVarP(&formats, "format", "f", formatSVG, "comma-separated formats: svg, canvas, png, pdf, dot")
	cmd.Flags().StringVar(&opts.style, "style", "", "edge style: directed, double-sided, undirected (default from config)")
	cmd.Flags().BoolVar(&opts.hideWeights, "hide-weights", false, "omit weight labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	style := cfg.Editor.EdgeStyle
	if opts.style != "" {
		if style, err = graph.ParseEdgeStyle(opts.style); err != nil {
			return gserrors.Wrap(gserrors.ErrCodeInvalidStyle, err, "render")
		}
	}
	for _, f := range opts.formats {
		if _, ok := formatExt[f]; !ok {
			return gserrors.New(gserrors.ErrCodeInvalidFormat, "unknown format %q", f)
		}
	}

	snap, err := graph.ReadSnapshotFile(input)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	rc := cache.Cache(cache.NewNullCache())
	if !opts.noCache {
		if rc, err = newCache(ctx, cfg.Cache); err != nil {
			return err
		}
	}
	defer rc.Close()

	r := &snapshotRenderer{
		snap:  snap,
		style: style,
		opts:  nodelink.Options{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height, HideWeights: opts.hideWeights},
		cache: rc,
		ttl:   cfg.Cache.TTL.Duration,
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	var paths []string
	for _, f := range opts.formats {
		data, err := r.render(ctx, f)
		if err != nil {
			return fmt.Errorf("render %s: %w", f, err)
		}
		path := outputPath(base, f, len(opts.formats))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		logger.Debug("wrote output", "format", f, "path", path, "bytes", len(data))
		paths = append(paths, path)
	}

	prog.done(fmt.Sprintf("Rendered %s", input))
	printSuccess("Rendered %s", filepath.Base(input))
	printStats(len(snap.Nodes), len(snap.Links), style.String())
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// outputPath returns the file for one format. A base that already carries
// the extension is used as-is when only one format is rendered.
func outputPath(base, format string, count int) string {
	ext := formatExt[format]
	if count == 1 && strings.HasSuffix(base, ext) {
		return base
	}
	return base + ext
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// snapshotRenderer draws one snapshot in several formats.
type snapshotRenderer struct {
	snap  graph.Snapshot
	style graph.EdgeStyle
	opts  nodelink.Options
	cache cache.Cache
	ttl   time.Duration
}

func (r *snapshotRenderer) dot() string {
	nodes, edges := nodelink.FromSnapshot(r.snap, r.style)
	return nodelink.ToDOT(nodes, edges, r.opts)
}

func (r *snapshotRenderer) render(ctx context.Context, format string) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(r.dot()), nil
	case formatCanvas:
		return r.scene().Bytes(), nil
	case formatSVG:
		return r.cached(ctx, formatSVG, nodelink.RenderSVG)
	case formatPNG:
		return r.cached(ctx, formatPNG, nodelink.RenderPNG)
	case formatPDF:
		data, err := r.cached(ctx, formatSVG, nodelink.RenderSVG)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, data)
	}
	return nil, gserrors.New(gserrors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// cached runs fn on the DOT source unless the cache already holds its output.
func (r *snapshotRenderer) cached(ctx context.Context, kind string, fn func(context.Context, string) ([]byte, error)) ([]byte, error) {
	dot := r.dot()
	key := cache.Key(kind, dot)
	if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		loggerFromContext(ctx).Debug("cache hit", "kind", kind)
		return data, nil
	}
	data, err := fn(ctx, dot)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		loggerFromContext(ctx).Warn("cache write failed", "err", err)
	}
	return data, nil
}

// scene replays the snapshot onto an editor canvas.
func (r *snapshotRenderer) scene() *svg.Scene {
	s := svg.NewScene(r.opts.Width, r.opts.Height)
	var rr render.Renderer = s
	for _, n := range r.snap.Nodes {
		rr.NodeAdded(graph.Node{ID: n.ID, X: n.X, Y: n.Y, Color: n.Color})
	}
	for _, l := range r.snap.Links {
		rr.EdgeAdded(l.Source, l.Target, r.style, l.Weight.String())
	}
	return s
}
