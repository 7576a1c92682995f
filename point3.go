// Copyright 2025 The geom32 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom32

import "fmt"

// Point3 is a plain (x, y, z) coordinate value used at API boundaries.
// Types that store coordinates internally keep them as [Vector3] and
// convert to and from Point3 at their surface.
type Point3 struct {
	X float32
	Y float32
	Z float32
}

// Pt3 returns a new [Point3] with the given x, y and z coordinates.
func Pt3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Point3FromVector3 returns a new [Point3] with the components of the
// given [Vector3] as its coordinates.
func Point3FromVector3(v Vector3) Point3 {
	return Point3{X: v.X, Y: v.Y, Z: v.Z}
}

// Set sets this point's X, Y and Z coordinates.
func (p *Point3) Set(x, y, z float32) {
	p.X = x
	p.Y = y
	p.Z = z
}

// SetFromVector3 sets this point's coordinates from a [Vector3].
func (p *Point3) SetFromVector3(v Vector3) {
	p.X = v.X
	p.Y = v.Y
	p.Z = v.Z
}

// Vector3 returns this point as a [Vector3].
func (p Point3) Vector3() Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

// Add adds the other given point to this one and returns the result as a new point.
func (p Point3) Add(other Point3) Point3 {
	return Point3{p.X + other.X, p.Y + other.Y, p.Z + other.Z}
}

// Sub subtracts the other point from this one and returns the result as a new point.
func (p Point3) Sub(other Point3) Point3 {
	return Point3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Equal reports whether this point is exactly equal to other,
// comparing coordinates with ==.
func (p Point3) Equal(other Point3) bool {
	return p == other
}

// AlmostEqual reports whether each coordinate of this point is within
// tol of the corresponding coordinate of other, using the strict
// [FuzzyEqual] comparison.
func (p Point3) AlmostEqual(other Point3, tol float32) bool {
	return FuzzyEqual(p.X, other.X, tol) &&
		FuzzyEqual(p.Y, other.Y, tol) &&
		FuzzyEqual(p.Z, other.Z, tol)
}

func (p Point3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}
