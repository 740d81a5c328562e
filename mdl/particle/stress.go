// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import "math"

// ScaleDev multiplies all deviatoric stress components by α
func (o *State) ScaleDev(α float64) {
	for i := 0; i < 6; i++ {
		o.Dev[i] *= α
	}
}

// ZeroDev sets the deviatoric stress to zero
func (o *State) ZeroDev() {
	o.Dev = [6]float64{}
	o.Seqv = 0
}

// EquivalentStress computes and stores the von Mises stress √(3 J2)
func (o *State) EquivalentStress() float64 {
	s := &o.Dev
	J2 := 0.5*(s[0]*s[0]+s[1]*s[1]+s[2]*s[2]) + s[3]*s[3] + s[4]*s[4] + s[5]*s[5]
	o.Seqv = math.Sqrt(3.0 * J2)
	return o.Seqv
}

// Sigma returns the full stress tensor (mean + deviatoric) minus the bulk viscosity
func (o *State) Sigma() (σ [6]float64) {
	p := o.Mean - o.Q
	σ = o.Dev
	σ[0] += p
	σ[1] += p
	σ[2] += p
	return
}

// PrincipalStress returns the principal values of the stress tensor minus the bulk viscosity
func (o *State) PrincipalStress() [3]float64 {
	σ := o.Sigma()
	return PrincipalValues(σ[0], σ[1], σ[2], σ[3], σ[4], σ[5])
}

// PrincipalStrain returns the principal values of the total strain stored in Exx..Exy
func (o *State) PrincipalStrain() [3]float64 {
	return PrincipalValues(o.Get(Exx), o.Get(Eyy), o.Get(Ezz), o.Get(Eyz), o.Get(Exz), o.Get(Exy))
}

// RotateJaumann applies the Jaumann correction σ ← σ + Ω·σ - σ·Ω for the incremental spin
// ω = (Ωyz, Ωxz, Ωxy) and splits the result back into mean and traceless deviatoric parts
func (o *State) RotateJaumann(ω *[3]float64) {
	if ω[0] == 0 && ω[1] == 0 && ω[2] == 0 {
		return
	}

	// full stress as a 3x3 matrix
	s := &o.Dev
	m := o.Mean
	S := [3][3]float64{
		{s[0] + m, s[5], s[4]},
		{s[5], s[1] + m, s[3]},
		{s[4], s[3], s[2] + m},
	}

	// skew spin
	W := [3][3]float64{
		{0, ω[2], ω[1]},
		{-ω[2], 0, ω[0]},
		{-ω[1], -ω[0], 0},
	}

	// P = W·S; W·S - S·W = P + Pᵀ
	var P [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				P[i][j] += W[i][k] * S[k][j]
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			S[i][j] += P[i][j] + P[j][i]
		}
	}

	// split
	o.Mean = (S[0][0] + S[1][1] + S[2][2]) / 3.0
	s[0] = S[0][0] - o.Mean
	s[1] = S[1][1] - o.Mean
	s[2] = S[2][2] - o.Mean
	s[3] = S[1][2]
	s[4] = S[0][2]
	s[5] = S[0][1]
}
