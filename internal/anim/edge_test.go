package anim

import "testing"

func TestRisingEdge(t *testing.T) {
	var edge RisingEdge

	steps := []struct {
		level    bool
		expected bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{true, false},
		{false, false},
		{true, true},
	}

	for i, step := range steps {
		if fired := edge.Update(step.level); fired != step.expected {
			t.Errorf("step %d: Update(%v) = %v, expected %v", i, step.level, fired, step.expected)
		}
	}
}

func TestRisingEdge_Reset(t *testing.T) {
	var edge RisingEdge
	edge.Update(true)

	edge.Reset()

	if edge.Level() {
		t.Error("Level after Reset = true, expected false")
	}
	if !edge.Update(true) {
		t.Error("Update(true) after Reset did not fire")
	}
}
