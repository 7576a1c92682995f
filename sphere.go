// Copyright 2025 The geom32 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom32

// Sphere represents a 3D sphere defined by its center and a radius.
// A sphere is empty iff Radius <= 0; negative radii are representable
// and always classify as empty. Construction performs no validation of
// the radius sign.
type Sphere struct {
	Center Vector3
	Radius float32
}

// NewSphere returns a new heap-allocated [Sphere] with the specified
// center and radius. A nil center yields a center at the origin.
func NewSphere(center *Point3, radius float32) *Sphere {
	s := &Sphere{}
	return s.Set(center, radius)
}

// Set sets the center and radius of this sphere and returns it, to
// allow initializer chaining. A nil center yields a center at the
// origin. The radius is stored verbatim.
func (s *Sphere) Set(center *Point3, radius float32) *Sphere {
	if center == nil {
		s.Center.SetZero()
	} else {
		s.Center.SetFromPoint3(*center)
	}
	s.Radius = radius
	return s
}

// SetFromPoints sets this sphere so that it encloses all of the given
// points, and returns it. If center is non-nil it is used directly;
// otherwise the center is the centroid of the axis-aligned bounding box
// of the points. The radius is the maximum distance from the chosen
// center to any point, so the result is a guaranteed bounding sphere
// but not the minimal enclosing one. Zero points yield a radius of 0.
func (s *Sphere) SetFromPoints(points []Point3, center *Point3) *Sphere {
	if center != nil {
		s.Center.SetFromPoint3(*center)
	} else {
		box := Box3{}
		box.SetFromPoints(points)
		if box.IsEmpty() { // no points: fall back to the default center
			s.Center.SetZero()
		} else {
			s.Center = box.Center()
		}
	}

	maxRadiusSq := float32(0)
	for _, p := range points {
		maxRadiusSq = Max(maxRadiusSq, s.Center.DistanceToSquared(p.Vector3()))
	}
	s.Radius = Sqrt(maxRadiusSq)
	return s
}

// CenterPoint returns the coordinates of the center of the sphere as a
// [Point3].
func (s *Sphere) CenterPoint() Point3 {
	return Point3FromVector3(s.Center)
}

// IsEmpty reports whether the sphere has a zero or negative radius.
// A nil sphere is empty.
func (s *Sphere) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Radius <= 0
}

// ContainsPoint reports whether the given point is contained in the
// volume of the sphere. Points on the surface are contained.
func (s *Sphere) ContainsPoint(point Point3) bool {
	return s.Center.DistanceToSquared(point.Vector3()) <= s.Radius*s.Radius
}

// Distance returns the signed distance of the given point from the
// surface of the sphere: negative inside, zero on the surface, and
// positive outside.
func (s *Sphere) Distance(point Point3) float32 {
	return s.Center.DistanceTo(point.Vector3()) - s.Radius
}

// GetBoundingBox returns the tightest axis-aligned [Box3] capable of
// containing the sphere: a degenerate box at the center expanded by the
// radius in both directions on every axis.
func (s *Sphere) GetBoundingBox() Box3 {
	box := B3FromVectors(s.Center, s.Center)
	box.ExpandByScalar(s.Radius)
	return box
}

// Translate returns a sphere whose center is this sphere's center
// translated by the coordinates of delta, with the radius unchanged.
func (s *Sphere) Translate(delta Point3) Sphere {
	return Sphere{s.Center.Add(delta.Vector3()), s.Radius}
}

// SetTranslate translates the center of this sphere by the coordinates
// of delta, in place, and returns it. Only the center is written.
func (s *Sphere) SetTranslate(delta Point3) *Sphere {
	s.Center.SetAdd(delta.Vector3())
	return s
}

// Equal reports whether two spheres are equal. The same sphere is equal
// to itself, and a nil sphere is only equal to another nil sphere.
// Radii and centers are compared exactly, with no tolerance; this is
// intentionally stricter than [FuzzyEqual].
func (s *Sphere) Equal(other *Sphere) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.Radius != other.Radius {
		return false
	}
	return s.Center.Equal(other.Center)
}
