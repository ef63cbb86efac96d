// Package selection tracks the nodes a user has picked toward creating an edge.
//
// The machine has two states. Picking a node from Empty moves to OneSelected;
// picking a second node (the same one included) returns to Empty and yields
// a [Request] for an edge between the two picks. The reset happens on the
// transition itself, independent of whether the edge is later committed.
package selection

// State is the machine's current state.
type State int

const (
	Empty State = iota
	OneSelected
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case OneSelected:
		return "one-selected"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Request asks for an edge from Source to Target.
type Request struct {
	Source string
	Target string
}

// IsSelfLoop reports whether both picks were the same node.
func (r Request) IsSelfLoop() bool { return r.Source == r.Target }

// Machine is the selection state machine. The zero value is Empty and ready
// to use. Machine is not safe for concurrent use.
type Machine struct {
	state State
	first string
}

// Select records a pick. It returns a request and true when the pick
// completes a pair; the machine is then back in Empty.
func (m *Machine) Select(id string) (Request, bool) {
	if m.state == Empty {
		m.state = OneSelected
		m.first = id
		return Request{}, false
	}
	req := Request{Source: m.first, Target: id}
	m.Reset()
	return req, true
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Pending returns the first pick while in OneSelected.
func (m *Machine) Pending() (string, bool) {
	if m.state != OneSelected {
		return "", false
	}
	return m.first, true
}

// Reset returns the machine to Empty.
func (m *Machine) Reset() {
	m.state = Empty
	m.first = ""
}
