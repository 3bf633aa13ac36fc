// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	// At x=0 the spline passes through y1, at x=1 through y2.
	if got := CubicInterpolate(1, 2, 3, 4, 0); got != 2 {
		t.Errorf("CubicInterpolate(x=0) = %g, want 2", got)
	}
	if got := CubicInterpolate(1, 2, 3, 4, 1); math.Abs(float64(got-3)) > 1e-5 {
		t.Errorf("CubicInterpolate(x=1) = %g, want 3", got)
	}
}

func TestCubicInterpolate_LinearRamp(t *testing.T) {
	t.Parallel()

	// A straight line interpolates exactly.
	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		want := 2 + x
		if got := CubicInterpolate(1, 2, 3, 4, x); math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("CubicInterpolate(ramp, %g) = %g, want %g", x, got, want)
		}
	}
}

func TestCubicInterpolate_Midpoint(t *testing.T) {
	t.Parallel()

	// Symmetric neighbors: midpoint overshoots the average slightly on a
	// peak, but a flat segment stays flat.
	if got := CubicInterpolate(5, 5, 5, 5, 0.5); got != 5 {
		t.Errorf("CubicInterpolate(flat, 0.5) = %g, want 5", got)
	}
}
