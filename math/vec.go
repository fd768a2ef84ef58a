// math/vec.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

// Vec3 represents a three-component vector (x, y, z) in whatever frame
// the caller is working in; flight state uses it for position, velocity,
// and acceleration.
type Vec3 [3]float64

func Add3(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub3(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Scale3(v Vec3, s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func Dot3(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Length3(v Vec3) float64 {
	return gomath.Sqrt(Dot3(v, v))
}

// Normalize3 returns a unit vector in the direction of v, or the zero
// vector if v has zero length.
func Normalize3(v Vec3) Vec3 {
	l := Length3(v)
	if l == 0 {
		return Vec3{}
	}
	return Scale3(v, 1/l)
}
