// Copyright 2025 The geom32 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, near equality).
package tolassert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the two given numbers are equal within a
// tolerance of 1e-4.
func Equal[T constraints.Float](t *testing.T, expected, actual T, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 1.0e-4, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are equal within the
// given tolerance.
func EqualTol[T constraints.Float](t *testing.T, expected, actual, tol T, msgAndArgs ...any) bool {
	t.Helper()
	if math.Abs(float64(expected)-float64(actual)) <= float64(tol) {
		return true
	}
	return assert.Equal(t, expected, actual, msgAndArgs...)
}
