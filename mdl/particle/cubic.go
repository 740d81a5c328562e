// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import "math"

// EPS is the machine epsilon used by all constitutive comparisons
const EPS = 2.220446049250313e-16

// CubicTol is the tolerance used to classify the discriminant of the normalised cubic
var CubicTol = 1e-12

// CubicRoots returns the three real roots of a*x³ + b*x² + c*x + d = 0 with Shengjin's formulae.
// The cubic is assumed to come from the invariants of a real symmetric tensor. Degenerate or
// inconsistent input (a ≈ 0, A < 0 or Δ > 0) yields zero roots. The order of roots is unspecified.
//  Note: the cubic is normalised to a = 1 and to unit-sized coefficients before the
//        discriminant is classified, so CubicTol does not depend on the units of the tensor.
//  References:
//   [1] Fan Shengjin (1989) A new extracting formula and a new distinguishing means on the one
//       variable cubic equation. Natural Science Journal of Hainan Teachers College, 2(2) 91-98
func CubicRoots(a, b, c, d float64) (roots [3]float64) {

	// degenerate
	if math.Abs(a) <= EPS {
		return
	}

	// normalise: x = s*y
	b, c, d = b/a, c/a, d/a
	s := math.Max(math.Abs(b), math.Max(math.Sqrt(math.Abs(c)), math.Cbrt(math.Abs(d))))
	if s <= 0 {
		return
	}
	b, c, d = b/s, c/(s*s), d/(s*s*s)

	// Shengjin's coefficients
	A := b*b - 3.0*c
	B := b*c - 9.0*d
	C := c*c - 3.0*b*d
	Δ := B*B - 4.0*A*C

	// multiple roots
	if math.Abs(Δ) <= CubicTol {
		if math.Abs(A) <= CubicTol {
			x := -s * b / 3.0
			roots = [3]float64{x, x, x}
			return
		}
		K := B / A
		roots[0] = s * (-b + K)
		roots[1] = -s * K / 2.0
		roots[2] = roots[1]
		return
	}

	// three distinct real roots
	if Δ < 0 {
		if A <= 0 {
			return
		}
		sA := math.Sqrt(A)
		T := (2.0*A*b - 3.0*B) / (2.0 * A * sA)
		T = math.Max(-1.0, math.Min(1.0, T))
		θ := math.Acos(T)
		ct := math.Cos(θ / 3.0)
		st := math.Sin(θ / 3.0)
		roots[0] = s * (-b - 2.0*sA*ct) / 3.0
		roots[1] = s * (-b + sA*(ct+math.Sqrt(3.0)*st)) / 3.0
		roots[2] = s * (-b + sA*(ct-math.Sqrt(3.0)*st)) / 3.0
	}

	// Δ > 0: one real root and two complex ones; not a symmetric tensor
	return
}

// PrincipalValues computes the eigenvalues of the symmetric tensor with components
// (xx, yy, zz, yz, xz, xy) by means of its invariants
func PrincipalValues(xx, yy, zz, yz, xz, xy float64) [3]float64 {
	I1 := xx + yy + zz
	I2 := xx*yy + yy*zz + zz*xx - yz*yz - xz*xz - xy*xy
	I3 := xx*yy*zz + 2.0*yz*xz*xy - xx*yz*yz - yy*xz*xz - zz*xy*xy
	return CubicRoots(1.0, -I1, I2, -I3)
}

// MinMax returns the smallest and largest of three values
func MinMax(v [3]float64) (min, max float64) {
	min, max = v[0], v[0]
	for i := 1; i < 3; i++ {
		if v[i] < min {
			min = v[i]
		}
		if v[i] > max {
			max = v[i]
		}
	}
	return
}
