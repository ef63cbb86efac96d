package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphsketch/pkg/editor"
	"github.com/matzehuels/graphsketch/pkg/export"
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a graph in the terminal",
		Long: `Edit opens the interactive terminal editor.

Keys:
  r, b, g     add a red, blue or green node at the canvas centre
  tab         move the cursor to the next node
  arrows      drag the node under the cursor by 10px
  enter       click the node under the cursor; two clicks open the weight prompt
  d, s, u     directed, double-sided or undirected edges from now on
  x           export the graph
  q           quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "also write exported snapshots to this file")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, output string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	set, err := export.FromConfig(ctx, cfg.Export)
	if err != nil {
		return err
	}
	defer set.Close(context.WithoutCancel(ctx))

	var pubs []export.Publisher
	if !set.Empty() {
		pubs = append(pubs, set.Publisher())
	}
	if output != "" {
		pubs = append(pubs, export.FilePublisher{Path: output})
	}

	// The TUI owns the terminal, so controller logs are dropped.
	ctrl := editor.New(
		editor.WithCanvas(canvasOf(cfg)),
		editor.WithEdgeStyle(cfg.Editor.EdgeStyle),
		editor.WithPublisher(export.Multi(pubs...)),
	)

	p := tea.NewProgram(NewEditorModel(ctx, ctrl), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	g := ctrl.Graph()
	printSuccess("Closed editor")
	printStats(g.NodeCount(), g.EdgeCount(), ctrl.EdgeStyle().String())
	if output != "" {
		printFile(output)
	}
	if g.NodeCount() > 0 && output == "" && set.Empty() {
		printNextStep("Keep your work next time", "graphsketch edit -o graph.json")
	}
	return nil
}
