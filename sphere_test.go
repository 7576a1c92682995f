// Copyright 2025 The geom32 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom32

import (
	"testing"

	"github.com/gfxkit/geom32/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestSphereSet(t *testing.T) {
	c := Pt3(1, 2, 3)
	s := NewSphere(&c, 4)
	assert.Equal(t, Vec3(1, 2, 3), s.Center)
	assert.Equal(t, float32(4), s.Radius)
	assert.Equal(t, c, s.CenterPoint())

	// nil center defaults to the origin
	s = NewSphere(nil, 2)
	assert.Equal(t, Vector3{}, s.Center)
	assert.Equal(t, float32(2), s.Radius)

	// Set returns the sphere for chaining, and stores the radius
	// verbatim, sign included
	s2 := &Sphere{}
	assert.Same(t, s2, s2.Set(&c, -1))
	assert.Equal(t, float32(-1), s2.Radius)
}

func TestSphereIsEmpty(t *testing.T) {
	assert.True(t, NewSphere(nil, 0).IsEmpty())
	assert.True(t, NewSphere(nil, -3).IsEmpty())
	assert.False(t, NewSphere(nil, 0.001).IsEmpty())

	var nilSphere *Sphere
	assert.True(t, nilSphere.IsEmpty())

	for _, r := range []float32{-2, -0.5, 0, 0.5, 2} {
		s := NewSphere(nil, r)
		assert.Equal(t, r <= 0, s.IsEmpty())
	}
}

func TestSphereContainsPoint(t *testing.T) {
	s := NewSphere(nil, 2)
	assert.True(t, s.ContainsPoint(Pt3(0, 0, 0)))
	assert.True(t, s.ContainsPoint(Pt3(1, 1, 1)))
	// boundary points on the surface are included
	assert.True(t, s.ContainsPoint(Pt3(2, 0, 0)))
	assert.True(t, s.ContainsPoint(Pt3(0, -2, 0)))
	assert.False(t, s.ContainsPoint(Pt3(2.1, 0, 0)))
	assert.False(t, s.ContainsPoint(Pt3(1.5, 1.5, 0)))
}

func TestSphereDistance(t *testing.T) {
	c := Pt3(1, 0, 0)
	s := NewSphere(&c, 2)
	tolassert.EqualTol(t, -2, s.Distance(Pt3(1, 0, 0)), standardTol)
	tolassert.EqualTol(t, -1, s.Distance(Pt3(2, 0, 0)), standardTol)
	tolassert.EqualTol(t, 0, s.Distance(Pt3(3, 0, 0)), standardTol)
	tolassert.EqualTol(t, 0, s.Distance(Pt3(1, 2, 0)), standardTol)
	tolassert.EqualTol(t, 2, s.Distance(Pt3(5, 0, 0)), standardTol)
}

func TestSphereBoundingBox(t *testing.T) {
	s := NewSphere(nil, 2)
	assert.Equal(t, B3(-2, -2, -2, 2, 2, 2), s.GetBoundingBox())

	c := Pt3(1, 2, 3)
	s = NewSphere(&c, 0.5)
	assert.Equal(t, B3(0.5, 1.5, 2.5, 1.5, 2.5, 3.5), s.GetBoundingBox())

	// bounding box of a fitted sphere contains everything the sphere does
	pts := []Point3{{2, 0, -1}, {0, 3, 1}, {-2, 1, 0}}
	f := (&Sphere{}).SetFromPoints(pts, nil)
	box := f.GetBoundingBox()
	for _, p := range pts {
		assert.True(t, box.ContainsPoint(p.Vector3()))
	}
}

func TestSphereTranslate(t *testing.T) {
	c := Pt3(1, 2, 3)
	s := NewSphere(&c, 4)
	r := s.Translate(Pt3(1, -1, 2))
	assert.Equal(t, Vec3(2, 1, 5), r.Center)
	assert.Equal(t, s.Radius, r.Radius)
	// source is untouched
	assert.Equal(t, Vec3(1, 2, 3), s.Center)

	s.SetTranslate(Pt3(-1, 0, 1))
	assert.Equal(t, Vec3(0, 2, 4), s.Center)
	assert.Equal(t, float32(4), s.Radius)
}

func TestSphereEqual(t *testing.T) {
	c := Pt3(1, 2, 3)
	a := NewSphere(&c, 4)
	b := NewSphere(&c, 4)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	var nilSphere *Sphere
	assert.True(t, nilSphere.Equal(nil))
	assert.False(t, a.Equal(nil))
	assert.False(t, nilSphere.Equal(a))

	// radius comparison is exact, with no tolerance at all
	d := NewSphere(&c, 4.0000005)
	assert.False(t, a.Equal(d))

	// center comparison uses the vector's exact equality
	c2 := Pt3(1, 2, 3.0000005)
	e := NewSphere(&c2, 4)
	assert.False(t, a.Equal(e))
}

func TestSphereSetFromPoints(t *testing.T) {
	pts := []Point3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}}
	s := (&Sphere{}).SetFromPoints(pts, nil)

	// the center is the centroid of the bounding box of the points,
	// not the arithmetic mean of the points themselves
	assert.Equal(t, Vec3(0, 0.5, 0), s.Center)
	tolassert.EqualTol(t, Sqrt(1.25), s.Radius, standardTol)

	// the fit encloses every input point
	for _, p := range pts {
		assert.LessOrEqual(t, s.Distance(p), standardTol)
	}
}

func TestSphereSetFromPointsCenter(t *testing.T) {
	pts := []Point3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}}
	c := Pt3(0, 0, 0)
	s := (&Sphere{}).SetFromPoints(pts, &c)
	assert.Equal(t, Vector3{}, s.Center)
	assert.Equal(t, float32(1), s.Radius)
}

func TestSphereSetFromPointsEmpty(t *testing.T) {
	s := (&Sphere{}).SetFromPoints(nil, nil)
	assert.Equal(t, Vector3{}, s.Center)
	assert.Equal(t, float32(0), s.Radius)
	assert.True(t, s.IsEmpty())

	c := Pt3(5, 6, 7)
	s = (&Sphere{}).SetFromPoints(nil, &c)
	assert.Equal(t, Vec3(5, 6, 7), s.Center)
	assert.Equal(t, float32(0), s.Radius)
}

func TestSphereFitEncloses(t *testing.T) {
	pts := []Point3{
		{0.5, -3, 2}, {7, 0.25, -1}, {-4, 2, 2.5},
		{1, 1, 1}, {-2.5, -2.5, -2.5}, {0, 6, 0}, {3, 3, -3},
	}
	s := (&Sphere{}).SetFromPoints(pts, nil)
	assert.False(t, s.IsEmpty())
	for _, p := range pts {
		assert.LessOrEqual(t, s.Center.DistanceTo(p.Vector3()), s.Radius+standardTol)
	}
}
