package selection

import "testing"

func TestMachine_Transitions(t *testing.T) {
	var m Machine
	if m.State() != Empty {
		t.Fatalf("initial state = %v, want empty", m.State())
	}

	if _, ok := m.Select("1"); ok {
		t.Fatal("first Select should not produce a request")
	}
	if m.State() != OneSelected {
		t.Fatalf("state after one pick = %v, want one-selected", m.State())
	}
	if id, ok := m.Pending(); !ok || id != "1" {
		t.Errorf("Pending() = %q, %v; want 1, true", id, ok)
	}

	req, ok := m.Select("2")
	if !ok {
		t.Fatal("second Select should produce a request")
	}
	if req.Source != "1" || req.Target != "2" {
		t.Errorf("request = %+v, want 1->2", req)
	}
	if m.State() != Empty {
		t.Errorf("state after pair = %v, want empty", m.State())
	}
	if _, ok := m.Pending(); ok {
		t.Error("Pending() should be empty after a pair")
	}
}

func TestMachine_SelfLoop(t *testing.T) {
	var m Machine
	m.Select("3")
	req, ok := m.Select("3")
	if !ok {
		t.Fatal("picking the same node twice should produce a request")
	}
	if !req.IsSelfLoop() {
		t.Errorf("request %+v should be a self loop", req)
	}
	if m.State() != Empty {
		t.Errorf("state = %v, want empty", m.State())
	}
}

func TestMachine_PairsDoNotOverlap(t *testing.T) {
	var m Machine
	picks := []string{"1", "2", "3", "4", "5"}
	var reqs []Request
	for _, id := range picks {
		if req, ok := m.Select(id); ok {
			reqs = append(reqs, req)
		}
	}
	want := []Request{{"1", "2"}, {"3", "4"}}
	if len(reqs) != len(want) {
		t.Fatalf("got %d requests, want %d", len(reqs), len(want))
	}
	for i := range want {
		if reqs[i] != want[i] {
			t.Errorf("request %d = %+v, want %+v", i, reqs[i], want[i])
		}
	}
	if id, _ := m.Pending(); id != "5" {
		t.Errorf("pending = %q, want 5", id)
	}
}

func TestMachine_Reset(t *testing.T) {
	var m Machine
	m.Select("1")
	m.Reset()
	if m.State() != Empty {
		t.Errorf("state after Reset = %v", m.State())
	}
	if _, ok := m.Select("2"); ok {
		t.Error("Select after Reset should start a new pair")
	}
}
