package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestRingDashOffset(t *testing.T) {
	tests := []struct {
		progress float64
		expected float64
	}{
		{0, 2 * math.Pi * 2},
		{0.25, 0.75 * 2 * math.Pi * 2},
		{0.5, math.Pi * 2},
		{1, 0},
		{-1, 2 * math.Pi * 2},
		{2, 0},
	}

	for _, test := range tests {
		result := RingDashOffset(test.progress)
		if math.Abs(result-test.expected) > epsilon {
			t.Errorf("RingDashOffset(%v) = %v, expected %v", test.progress, result, test.expected)
		}
	}
}

func TestIdleOpacity(t *testing.T) {
	tests := []struct {
		progress float64
		expected float64
	}{
		{0, 1},
		{0.25, 0.75},
		{0.5, 0.5},
		{1, 0},
		{-0.5, 1},
		{1.5, 0},
	}

	for _, test := range tests {
		result := IdleOpacity(test.progress)
		if math.Abs(result-test.expected) > epsilon {
			t.Errorf("IdleOpacity(%v) = %v, expected %v", test.progress, result, test.expected)
		}
		if result < 0 || result > 1 {
			t.Errorf("IdleOpacity(%v) = %v, outside [0, 1]", test.progress, result)
		}
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		v, inLo, inHi, outLo, outHi float64
		expected                    float64
	}{
		{5, 0, 10, 0, 100, 50},
		{-5, 0, 10, 0, 100, 0},
		{15, 0, 10, 0, 100, 100},
		{0.5, 0, 1, 6, 12, 9},
		{3, 3, 3, 7, 9, 7},
	}

	for _, test := range tests {
		result := Interpolate(test.v, test.inLo, test.inHi, test.outLo, test.outHi)
		if math.Abs(result-test.expected) > epsilon {
			t.Errorf("Interpolate(%v, [%v,%v] -> [%v,%v]) = %v, expected %v",
				test.v, test.inLo, test.inHi, test.outLo, test.outHi, result, test.expected)
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		reference, target, size float64
		expected                 float64
	}{
		{375, 375, 200, 200},
		{375, 750, 200, 400},
		{375, 187.5, 50, 25},
		{0, 500, 50, 50},
	}

	for _, test := range tests {
		result := Scale(test.reference, test.target, test.size)
		if math.Abs(result-test.expected) > epsilon {
			t.Errorf("Scale(%v, %v, %v) = %v, expected %v", test.reference, test.target, test.size, result, test.expected)
		}
	}
}

func TestCheckGeometry(t *testing.T) {
	if CheckPathLength > CheckDash {
		t.Errorf("CheckPathLength %v exceeds dash %v; the hidden offset would not hide the path", CheckPathLength, CheckDash)
	}
	if CheckShownOffset-CheckHiddenOffset != CheckDash {
		t.Errorf("Offset span %v, expected one dash %v", CheckShownOffset-CheckHiddenOffset, CheckDash)
	}
}
