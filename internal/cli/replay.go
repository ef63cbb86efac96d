package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsketch/pkg/config"
	"github.com/matzehuels/graphsketch/pkg/editor"
	"github.com/matzehuels/graphsketch/pkg/export"
	"github.com/matzehuels/graphsketch/pkg/render"
	"github.com/matzehuels/graphsketch/pkg/render/svg"
	"github.com/matzehuels/graphsketch/pkg/script"
)

// replayOpts holds the command-line flags for the replay command.
type replayOpts struct {
	output  string // snapshot file; stdout when empty and nothing else is requested
	svg     string // editor canvas SVG
	publish bool   // send the snapshot to the configured export sinks
}

// replayCommand creates the replay command.
func (c *CLI) replayCommand() *cobra.Command {
	opts := replayOpts{}

	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Play an event script through the editor",
		Long: `Replay reads an event script (or stdin for "-") and feeds it to a fresh
editor, one command per line:

  add <red|blue|green> [x y]
  drag <id> <x> <y>
  click <id>
  style <directed|double-sided|undirected>
  weight [text]
  cancel
  export

The final graph is exported once the script finishes, unless the script
has export lines of its own.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.Context(), args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the final snapshot to this file")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write the editor canvas as SVG")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "publish the snapshot to the configured export sinks")

	return cmd
}

func (c *CLI) runReplay(ctx context.Context, path string, opts replayOpts, stdout io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	cmds, err := readScript(path)
	if err != nil {
		return err
	}
	logger.Debug("parsed script", "path", path, "commands", len(cmds))

	pub, closePub, err := replayPublisher(ctx, cfg, opts, stdout)
	if err != nil {
		return err
	}
	defer closePub()

	scene := svg.NewScene(cfg.Canvas.Width, cfg.Canvas.Height)
	ctrl := c.newController(cfg,
		editor.WithRenderer(render.Multi(scene, render.NewLogRenderer(logger))),
		editor.WithPublisher(pub),
	)

	if err := script.Play(ctx, ctrl, cmds); err != nil {
		return err
	}
	if _, ok := ctrl.Pending(); ok {
		printWarning("Script ended with an open weight prompt; the edge was not added")
	}

	// A script with its own export lines decides what gets published.
	snap := ctrl.Snapshot()
	if !exports(cmds) {
		if snap, err = ctrl.Export(ctx); err != nil {
			return err
		}
	}
	if opts.svg != "" {
		if err := os.WriteFile(opts.svg, scene.Bytes(), 0o644); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Replayed %d commands", len(cmds)))
	if opts.output == "" && opts.svg == "" && !opts.publish {
		return nil
	}
	printSuccess("Replayed %s", path)
	printStats(len(snap.Nodes), len(snap.Links), ctrl.EdgeStyle().String())
	for _, p := range []string{opts.output, opts.svg} {
		if p != "" {
			printFile(p)
		}
	}
	return nil
}

func exports(cmds []script.Command) bool {
	for _, cmd := range cmds {
		if cmd.Op == script.OpExport {
			return true
		}
	}
	return false
}

// readScript parses the script at path, or stdin for "-".
func readScript(path string) ([]script.Command, error) {
	if path == "-" {
		return script.Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return script.Parse(f)
}

// replayPublisher assembles the sinks for the final export. With no sink
// requested the snapshot goes to stdout.
func replayPublisher(ctx context.Context, cfg *config.Config, opts replayOpts, stdout io.Writer) (export.Publisher, func(), error) {
	var pubs []export.Publisher
	closeFn := func() {}

	if opts.output != "" {
		pubs = append(pubs, export.FilePublisher{Path: opts.output})
	}
	if opts.publish {
		set, err := export.FromConfig(ctx, cfg.Export)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() { _ = set.Close(context.WithoutCancel(ctx)) }
		if set.Empty() {
			printWarning("No export sinks configured; see %s", config.Path())
		} else {
			loggerFromContext(ctx).Debug("export sinks", "sinks", strings.Join(set.Names(), ","))
			pubs = append(pubs, set.Publisher())
		}
	}
	if len(pubs) == 0 && opts.svg == "" && !opts.publish {
		pubs = append(pubs, export.NewWriterPublisher(stdout))
	}
	return export.Multi(pubs...), closeFn, nil
}
