// Copyright 2025 The geom32 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom32 is a float32 based point, vector, and bounding volume
// package for 3D graphics and spatial reasoning.
package geom32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// The scalar functions are mostly thin wrappers around chewxy/math32,
// which has optimized float32 implementations.

// Mathematical constants.
const (
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi

	// Epsilon is the smallest float32 such that 1 + Epsilon != 1.
	// It is the customary tolerance for [FuzzyEqual] comparisons of
	// values near unity.
	Epsilon = 0x1p-23
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sincos returns Sin(x), Cos(x), computed together.
//
// Special cases are:
//
//	Sincos(±0) = ±0, 1
//	Sincos(±Inf) = NaN, NaN
//	Sincos(NaN) = NaN, NaN
func Sincos(x float32) (sin, cos float32) {
	return math32.Sincos(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// Min returns the smaller of x or y.
//
// Note that this differs from the built-in function min when called
// with NaN and -Inf.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
//
// Note that this differs from the built-in function max when called
// with NaN and +Inf.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// NaN returns an IEEE 754 “not-a-number” value.
func NaN() float32 {
	return math32.NaN()
}

//////////////////////////////////////////////////////////////
// Generic numeric helpers

// FuzzyEqual reports whether n1 and n2 are equal within the given
// tolerance. The comparison is a strict less-than on the absolute
// difference: an epsilon of 0 never compares equal, even for identical
// values. The difference is taken in whichever direction is
// non-negative, so the function is also valid for unsigned domains.
func FuzzyEqual[T constraints.Integer | constraints.Float](n1, n2, epsilon T) bool {
	if n1 > n2 {
		return n1-n2 < epsilon
	}
	return n2-n1 < epsilon
}

// Lerp returns the linear interpolation between start and stop in
// proportion to amount: (1-amount)*start + amount*stop. The blend is
// evaluated in float64 and converted back to the argument type; for
// integer types the conversion truncates toward zero. Amount is not
// constrained to [0, 1], so values outside it extrapolate.
func Lerp[T constraints.Integer | constraints.Float](start, stop T, amount float64) T {
	return T((1-amount)*float64(start) + amount*float64(stop))
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// MinPos returns the minimum of the two values, excluding any that are <= 0.
func MinPos(a, b float32) float32 {
	if a > 0 && b > 0 {
		return Min(a, b)
	} else if a > 0 {
		return a
	} else if b > 0 {
		return b
	}
	return a
}

// MaxPos returns the maximum of the two values, excluding any that are <= 0.
func MaxPos(a, b float32) float32 {
	if a > 0 && b > 0 {
		return Max(a, b)
	} else if a > 0 {
		return a
	} else if b > 0 {
		return b
	}
	return a
}
