// math/math_test.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
	"testing"
)

func TestClamp(t *testing.T) {
	testCases := []struct {
		x, low, high, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
	}
	for _, tc := range testCases {
		if got := Clamp(tc.x, tc.low, tc.high); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.x, tc.low, tc.high, got, tc.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 2, 10); got != 2 {
		t.Errorf("Lerp(0, 2, 10) = %v, want 2", got)
	}
	if got := Lerp(1, 2, 10); got != 10 {
		t.Errorf("Lerp(1, 2, 10) = %v, want 10", got)
	}
	if got := Lerp(0.5, 2, 10); got != 6 {
		t.Errorf("Lerp(0.5, 2, 10) = %v, want 6", got)
	}
}

func TestAngleConversions(t *testing.T) {
	if got := Degrees(gomath.Pi); gomath.Abs(got-180) > 1e-12 {
		t.Errorf("Degrees(pi) = %v, want 180", got)
	}
	if got := Radians(90); gomath.Abs(got-gomath.Pi/2) > 1e-12 {
		t.Errorf("Radians(90) = %v, want pi/2", got)
	}
}

func TestVec3(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -2, 1}

	if got := Add3(a, b); got != (Vec3{5, 0, 4}) {
		t.Errorf("Add3 = %v", got)
	}
	if got := Sub3(a, b); got != (Vec3{-3, 4, 2}) {
		t.Errorf("Sub3 = %v", got)
	}
	if got := Scale3(a, 2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale3 = %v", got)
	}
	if got := Dot3(a, b); got != 3 {
		t.Errorf("Dot3 = %v, want 3", got)
	}
	if got := Length3(Vec3{3, 4, 0}); got != 5 {
		t.Errorf("Length3 = %v, want 5", got)
	}

	n := Normalize3(Vec3{0, 0, 7})
	if n != (Vec3{0, 0, 1}) {
		t.Errorf("Normalize3 = %v, want unit z", n)
	}
	if got := Normalize3(Vec3{}); got != (Vec3{}) {
		t.Errorf("Normalize3(zero) = %v, want zero", got)
	}
}
