// Package script reads and replays editor event scripts.
//
// A script is a line-oriented list of input events:
//
//	# two nodes joined by a directed edge of weight 5
//	add red
//	add blue 100 80
//	style directed
//	click 1
//	click 2
//	weight 5
//	export
//
// Blank lines and lines starting with '#' are ignored. The commands are:
//
//	add <color> [x y]     place a node, at the canvas centre by default
//	drag <id> <x> <y>     drag a node (clamped to the canvas)
//	click <id>            click a node
//	style <style>         directed, double-sided or undirected
//	weight [text...]      confirm the open weight prompt with text
//	cancel                dismiss the open weight prompt
//	export                publish a snapshot
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/graphsketch/pkg/editor"
	gserrors "github.com/matzehuels/graphsketch/pkg/errors"
	"github.com/matzehuels/graphsketch/pkg/graph"
)

// Op identifies a script command.
type Op int

const (
	OpAdd Op = iota
	OpDrag
	OpClick
	OpStyle
	OpWeight
	OpCancel
	OpExport
)

var opNames = map[Op]string{
	OpAdd:    "add",
	OpDrag:   "drag",
	OpClick:  "click",
	OpStyle:  "style",
	OpWeight: "weight",
	OpCancel: "cancel",
	OpExport: "export",
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one parsed script line. Only the fields used by Op are set.
type Command struct {
	Line     int
	Op       Op
	Color    graph.Color
	ID       string
	At       graph.Point
	HasPoint bool
	Style    graph.EdgeStyle
	Text     string
}

// String formats the command as a script line.
func (c Command) String() string {
	switch c.Op {
	case OpAdd:
		if c.HasPoint {
			return fmt.Sprintf("add %s %s %s", c.Color, num(c.At.X), num(c.At.Y))
		}
		return "add " + string(c.Color)
	case OpDrag:
		return fmt.Sprintf("drag %s %s %s", c.ID, num(c.At.X), num(c.At.Y))
	case OpClick:
		return "click " + c.ID
	case OpStyle:
		return "style " + c.Style.String()
	case OpWeight:
		if c.Text == "" {
			return "weight"
		}
		return "weight " + c.Text
	}
	return c.Op.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Parse reads a script. Errors carry the code INVALID_SCRIPT and name the
// offending line.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := parseLine(text)
		if err != nil {
			return nil, gserrors.New(gserrors.ErrCodeInvalidScript, "line %d: %s", line, gserrors.UserMessage(err))
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, gserrors.Wrap(gserrors.ErrCodeInvalidScript, err, "read script")
	}
	return cmds, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(text string) (Command, error) {
	keyword := strings.Fields(text)[0]
	rest := strings.TrimSpace(text[len(keyword):])
	args := strings.Fields(rest)

	switch keyword = strings.ToLower(keyword); keyword {
	case "add":
		if len(args) != 1 && len(args) != 3 {
			return Command{}, fmt.Errorf("usage: add <color> [x y]")
		}
		color, err := graph.ParseColor(args[0])
		if err != nil {
			return Command{}, err
		}
		cmd := Command{Op: OpAdd, Color: color}
		if len(args) == 3 {
			if cmd.At, err = parsePoint(args[1], args[2]); err != nil {
				return Command{}, err
			}
			cmd.HasPoint = true
		}
		return cmd, nil

	case "drag":
		if len(args) != 3 {
			return Command{}, fmt.Errorf("usage: drag <id> <x> <y>")
		}
		if err := gserrors.ValidateNodeID(args[0]); err != nil {
			return Command{}, err
		}
		p, err := parsePoint(args[1], args[2])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpDrag, ID: args[0], At: p}, nil

	case "click":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: click <id>")
		}
		if err := gserrors.ValidateNodeID(args[0]); err != nil {
			return Command{}, err
		}
		return Command{Op: OpClick, ID: args[0]}, nil

	case "style":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: style <directed|double-sided|undirected>")
		}
		style, err := graph.ParseEdgeStyle(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpStyle, Style: style}, nil

	case "weight":
		return Command{Op: OpWeight, Text: rest}, nil

	case "cancel", "export":
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%s takes no arguments", keyword)
		}
		if keyword == "cancel" {
			return Command{Op: OpCancel}, nil
		}
		return Command{Op: OpExport}, nil
	}
	return Command{}, fmt.Errorf("unknown command %q", keyword)
}

func parsePoint(xs, ys string) (graph.Point, error) {
	x, err := parseCoord(xs)
	if err != nil {
		return graph.Point{}, err
	}
	y, err := parseCoord(ys)
	if err != nil {
		return graph.Point{}, err
	}
	return graph.Point{X: x, Y: y}, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return v, nil
}

// Play applies cmds to c in order and stops at the first failing command.
// Clicking while a weight prompt is open is such a failure.
func Play(ctx context.Context, c *editor.Controller, cmds []Command) error {
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := Apply(ctx, c, cmd); err != nil {
			return fmt.Errorf("line %d (%s): %w", cmd.Line, cmd, err)
		}
	}
	return nil
}

// Apply runs a single command.
func Apply(ctx context.Context, c *editor.Controller, cmd Command) error {
	switch cmd.Op {
	case OpAdd:
		if cmd.HasPoint {
			c.AddNodeAt(cmd.Color, cmd.At)
		} else {
			c.AddNode(cmd.Color)
		}
	case OpDrag:
		_, err := c.DragNode(cmd.ID, cmd.At)
		return err
	case OpClick:
		_, err := c.ClickNode(cmd.ID)
		return err
	case OpStyle:
		c.SetEdgeStyle(cmd.Style)
	case OpWeight:
		_, err := c.ConfirmWeight(cmd.Text)
		return err
	case OpCancel:
		return c.CancelWeight()
	case OpExport:
		_, err := c.Export(ctx)
		return err
	default:
		return fmt.Errorf("unknown op %v", cmd.Op)
	}
	return nil
}
