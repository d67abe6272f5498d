package ui

import (
	"math"
	"testing"
)

func TestMobileUI_ScaledSize(t *testing.T) {
	m := NewMobileUI(nil)

	tests := []struct {
		width    float32
		size     float64
		expected float32
	}{
		{375, 200, 200},
		{750, 200, 400},
		{375, 50, 50},
		{187.5, 50, 25},
	}

	for _, test := range tests {
		if got := m.ScaledSize(test.width, test.size); math.Abs(float64(got-test.expected)) > 1e-3 {
			t.Errorf("ScaledSize(%v, %v) = %v, expected %v", test.width, test.size, got, test.expected)
		}
	}
}

func TestMobileUI_IconSize(t *testing.T) {
	m := NewMobileUI(nil)

	size := m.IconSize(375)
	if size.Width != 200 {
		t.Errorf("IconSize(375).Width = %v, expected 200", size.Width)
	}
	if math.Abs(float64(size.Height)-200*5.0/6) > 1e-3 {
		t.Errorf("IconSize(375).Height = %v, expected %v", size.Height, 200*5.0/6)
	}

	if small := m.IconSize(100); small.Width != MinIconWidth {
		t.Errorf("IconSize(100).Width = %v, expected %v", small.Width, MinIconWidth)
	}
}
