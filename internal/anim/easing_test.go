package anim

import "testing"

func TestParseEasing(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"linear", false},
		{"ease-in", false},
		{"ease-out", false},
		{"ease-in-out", false},
		{"  Ease-In-Out ", false},
		{"bounce", true},
		{"", true},
	}

	for _, test := range tests {
		curve, err := ParseEasing(test.name)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseEasing(%q) expected error, got nil", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEasing(%q) unexpected error: %v", test.name, err)
			continue
		}
		if curve(0) != 0 || curve(1) != 1 {
			t.Errorf("ParseEasing(%q) curve endpoints = (%v, %v), expected (0, 1)", test.name, curve(0), curve(1))
		}
	}
}

func TestEasingNames(t *testing.T) {
	names := EasingNames()
	expected := []string{EasingEaseIn, EasingEaseInOut, EasingEaseOut, EasingLinear}

	if len(names) != len(expected) {
		t.Fatalf("Expected %d easing names, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Easing name %d: expected %s, got %s", i, expected[i], names[i])
		}
	}
}
