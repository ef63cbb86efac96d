package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/graphsketch/pkg/editor"
	"github.com/matzehuels/graphsketch/pkg/graph"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(t *testing.T, m EditorModel, keys ...tea.KeyMsg) EditorModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(EditorModel)
	}
	return m
}

func TestEditorModelAddAndDrag(t *testing.T) {
	ctrl := editor.New()
	m := NewEditorModel(context.Background(), ctrl)

	m = press(t, m, runes("r"), runes("b"))
	if got := ctrl.Graph().NodeCount(); got != 2 {
		t.Fatalf("nodes = %d, want 2", got)
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want the newest node", m.cursor)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyUp})
	n, _ := ctrl.Graph().Node("2")
	if n.X != 610 || n.Y != 290 {
		t.Errorf("node 2 at (%v, %v), want (610, 290)", n.X, n.Y)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor != 0 {
		t.Errorf("tab should wrap to the first node, cursor = %d", m.cursor)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != 1 {
		t.Errorf("shift+tab should wrap back, cursor = %d", m.cursor)
	}
}

func TestEditorModelWeightPrompt(t *testing.T) {
	ctrl := editor.New()
	m := NewEditorModel(context.Background(), ctrl)

	m = press(t, m, runes("g"), runes("g"), runes("d"))
	if ctrl.EdgeStyle() != graph.Directed {
		t.Fatalf("style = %v, want directed", ctrl.EdgeStyle())
	}

	// click node 2, move to node 1, click again
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt == nil {
		t.Fatal("second click should open the weight prompt")
	}
	if m.input != editor.DefaultWeightText {
		t.Errorf("prompt input = %q, want default %q", m.input, editor.DefaultWeightText)
	}
	if !strings.Contains(m.View(), "Enter weight for edge from 2 to 1:") {
		t.Errorf("view lacks the prompt:\n%s", m.View())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("7"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt != nil {
		t.Fatal("enter should close the prompt")
	}
	edges := ctrl.Graph().Edges()
	if len(edges) != 1 || edges[0].Source != "2" || edges[0].Target != "1" || edges[0].Weight != 7 {
		t.Fatalf("edges = %+v", edges)
	}
	if edges[0].Style != graph.Directed {
		t.Errorf("edge style = %v, want directed", edges[0].Style)
	}
}

func TestEditorModelPromptTypingReplacesDefault(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want graph.Weight
	}{
		{"untouched default", nil, 1},
		{"typed digit", []tea.KeyMsg{runes("5")}, 5},
		{"typed then appended", []tea.KeyMsg{runes("1"), runes("2")}, 12},
		{"backspace clears default", []tea.KeyMsg{{Type: tea.KeyBackspace}, runes("3")}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := editor.New()
			m := NewEditorModel(context.Background(), ctrl)
			m = press(t, m, runes("r"), runes("b"), tea.KeyMsg{Type: tea.KeyEnter},
				tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
			if m.prompt == nil {
				t.Fatal("second click should open the weight prompt")
			}
			m = press(t, m, tt.keys...)
			m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			edges := ctrl.Graph().Edges()
			if len(edges) != 1 {
				t.Fatalf("edges = %+v, want one", edges)
			}
			if edges[0].Weight != tt.want {
				t.Errorf("weight = %v, want %v", edges[0].Weight, tt.want)
			}
		})
	}
}

func TestEditorModelCancelPrompt(t *testing.T) {
	ctrl := editor.New()
	m := NewEditorModel(context.Background(), ctrl)

	m = press(t, m, runes("r"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt == nil {
		t.Fatal("self-loop clicks should open the prompt")
	}
	// q while prompting is text, not quit
	next, cmd := m.Update(runes("q"))
	m = next.(EditorModel)
	if cmd != nil {
		t.Error("q inside the prompt should not quit")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.prompt != nil || ctrl.Graph().EdgeCount() != 0 {
		t.Errorf("esc should cancel without an edge; edges = %d", ctrl.Graph().EdgeCount())
	}
}

func TestEditorModelExport(t *testing.T) {
	var got graph.Snapshot
	ctrl := editor.New(editor.WithPublisher(publisherFunc(func(s graph.Snapshot) { got = s })))
	m := NewEditorModel(context.Background(), ctrl)

	m = press(t, m, runes("b"), runes("x"))
	if len(got.Nodes) != 1 {
		t.Errorf("published snapshot = %+v", got)
	}
	if !strings.Contains(m.status, "exported 1 nodes, 0 links") {
		t.Errorf("status = %q", m.status)
	}
}

func TestEditorModelQuit(t *testing.T) {
	m := NewEditorModel(context.Background(), editor.New())
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestEditorModelViewEmpty(t *testing.T) {
	m := NewEditorModel(context.Background(), editor.New())
	if !strings.Contains(m.View(), "no nodes yet") {
		t.Errorf("empty view:\n%s", m.View())
	}
}

type publisherFunc func(graph.Snapshot)

func (f publisherFunc) Publish(_ context.Context, s graph.Snapshot) error {
	f(s)
	return nil
}
