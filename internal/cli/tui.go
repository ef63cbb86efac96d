package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/graphsketch/pkg/editor"
	"github.com/matzehuels/graphsketch/pkg/graph"
)

// dragStep is the distance an arrow key moves the node under the cursor.
const dragStep = 10.0

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	promptStyle       = lipgloss.NewStyle().Foreground(colorYellow)
)

var colorKeys = map[string]graph.Color{
	"r": graph.ColorRed,
	"b": graph.ColorBlue,
	"g": graph.ColorGreen,
}

var styleKeys = map[string]graph.EdgeStyle{
	"d": graph.Directed,
	"s": graph.DoubleSided,
	"u": graph.Undirected,
}

var arrowKeys = map[string]graph.Point{
	"up":    {Y: -dragStep},
	"down":  {Y: dragStep},
	"left":  {X: -dragStep},
	"right": {X: dragStep},
}

// =============================================================================
// EditorModel - Interactive graph editor
// =============================================================================

// EditorModel is the bubbletea model for the terminal editor. The cursor
// stands in for the mouse: it names the node that arrows drag and enter
// clicks.
type EditorModel struct {
	ctx    context.Context
	ctrl   *editor.Controller
	cursor int

	// prompt is non-nil while the weight line editor is open. While
	// pristine, input still holds the untouched default and the first
	// edit replaces it.
	prompt   *editor.WeightRequest
	input    string
	pristine bool

	status string
	err    error
}

// NewEditorModel creates an editor model driving ctrl.
func NewEditorModel(ctx context.Context, ctrl *editor.Controller) EditorModel {
	return EditorModel{ctx: ctx, ctrl: ctrl}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.prompt != nil {
		return m.updatePrompt(key), nil
	}

	m.err = nil
	k := key.String()
	switch {
	case k == "q" || k == "esc":
		return m, tea.Quit
	case colorKeys[k] != "":
		n := m.ctrl.AddNode(colorKeys[k])
		m.cursor = m.ctrl.Graph().NodeCount() - 1
		m.status = fmt.Sprintf("added %s node %s", n.Color, n.ID)
	case k == "tab":
		m.cursor = m.step(1)
	case k == "shift+tab":
		m.cursor = m.step(-1)
	case k == "up" || k == "down" || k == "left" || k == "right":
		m.drag(arrowKeys[k])
	case k == "enter":
		m.click()
	case k == "d" || k == "s" || k == "u":
		m.ctrl.SetEdgeStyle(styleKeys[k])
		m.status = "edge style " + styleKeys[k].String()
	case k == "x":
		snap, err := m.ctrl.Export(m.ctx)
		if err != nil {
			m.err = err
			break
		}
		m.status = fmt.Sprintf("exported %d nodes, %d links", len(snap.Nodes), len(snap.Links))
	}
	return m, nil
}

func (m EditorModel) updatePrompt(key tea.KeyMsg) EditorModel {
	switch key.Type {
	case tea.KeyEnter:
		e, err := m.ctrl.ConfirmWeight(m.input)
		if err != nil {
			m.err = err
		} else {
			m.status = e.Describe()
		}
		m.prompt, m.input, m.pristine = nil, "", false
	case tea.KeyEsc:
		if err := m.ctrl.CancelWeight(); err != nil {
			m.err = err
		}
		m.status = "edge cancelled"
		m.prompt, m.input, m.pristine = nil, "", false
	case tea.KeyBackspace:
		if m.pristine {
			m.input, m.pristine = "", false
		} else if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		if m.pristine {
			m.input, m.pristine = "", false
		}
		m.input += string(key.Runes)
	}
	return m
}

func (m EditorModel) step(delta int) int {
	n := m.ctrl.Graph().NodeCount()
	if n == 0 {
		return 0
	}
	return ((m.cursor+delta)%n + n) % n
}

// current returns the node under the cursor.
func (m EditorModel) current() (graph.Node, bool) {
	nodes := m.ctrl.Graph().Nodes()
	if m.cursor < 0 || m.cursor >= len(nodes) {
		return graph.Node{}, false
	}
	return nodes[m.cursor], true
}

func (m *EditorModel) drag(delta graph.Point) {
	n, ok := m.current()
	if !ok {
		return
	}
	moved, err := m.ctrl.DragNode(n.ID, graph.Point{X: n.X + delta.X, Y: n.Y + delta.Y})
	if err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("moved %s to (%s, %s)", moved.ID, num(moved.X), num(moved.Y))
}

func (m *EditorModel) click() {
	n, ok := m.current()
	if !ok {
		return
	}
	req, err := m.ctrl.ClickNode(n.ID)
	if err != nil {
		m.err = err
		return
	}
	if req == nil {
		m.status = "selected " + n.ID
		return
	}
	m.prompt = req
	m.input, m.pristine = req.Default, true
	m.status = ""
}

func (m EditorModel) View() string {
	var b strings.Builder

	canvas := m.ctrl.Canvas()
	b.WriteString(StyleTitle.Render("graphsketch"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %sx%s  style %s  selection %s",
		num(canvas.Width), num(canvas.Height), m.ctrl.EdgeStyle(), m.ctrl.Selection())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("r/b/g add  tab next  ←↑↓→ drag  ⏎ click  d/s/u style  x export  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.nodeTable())
	b.WriteString("\n")

	for i, e := range m.ctrl.Graph().Edges() {
		b.WriteString(listNormalStyle.Render(fmt.Sprintf("  %d. %s", i+1, e.Describe())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.prompt != nil:
		b.WriteString(promptStyle.Render(m.prompt.Prompt()) + " " + StyleValue.Render(m.input+"█"))
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("⏎ confirm  esc cancel"))
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	case m.status != "":
		b.WriteString(styleIconInfo.Render(iconInfo) + " " + m.status)
	}
	b.WriteString("\n")
	return b.String()
}

func (m EditorModel) nodeTable() string {
	nodes := m.ctrl.Graph().Nodes()
	if len(nodes) == 0 {
		return listDimStyle.Render("  no nodes yet") + "\n"
	}

	highlighted, _ := m.ctrl.Highlighted()
	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		mark := ""
		if n.ID == highlighted {
			mark = "picked"
		}
		rows[i] = []string{cursor, n.ID, nodeSwatch(n.Color), num(n.X), num(n.Y), mark}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Color", "X", "Y", "Sel").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})
	return t.Render() + "\n"
}
