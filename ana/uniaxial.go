// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// UniaxialStrainEPP computes the response of an elastic perfectly-plastic von Mises material
// under uniaxial strain ε = εxx (εyy = εzz = 0) with monotonic loading
//
//   elastic:  σm = K ε    sxx = 4/3 G ε    σeqv = 2 G |ε|
//   plastic:  σm = K ε    sxx = 2/3 Y sgn(ε)    σeqv = Y    for |ε| > εY = Y/(2G)
//
//  Note: negative strain and stress mean compression
type UniaxialStrainEPP struct {

	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
	Y float64 // yield stress

	// derived
	K  float64 // bulk modulus
	G  float64 // shear modulus
	εY float64 // strain at yielding
}

// Init initialises this structure
func (o *UniaxialStrainEPP) Init(prms dbf.Params) {

	// default values
	o.E = 200e9
	o.ν = 0.3
	o.Y = 400e6

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Young":
			o.E = p.V
		case "Poisson":
			o.ν = p.V
		case "Yield0":
			o.Y = p.V
		}
	}

	// derived
	o.K = o.E / (3.0 * (1.0 - 2.0*o.ν))
	o.G = o.E / (2.0 * (1.0 + o.ν))
	o.εY = o.Y / (2.0 * o.G)
}

// YieldStrain returns the uniaxial strain at the onset of yielding
func (o UniaxialStrainEPP) YieldStrain() float64 {
	return o.εY
}

// Stress computes the mean stress, the axial deviatoric stress and the equivalent stress
func (o UniaxialStrainEPP) Stress(ε float64) (σm, sxx, σeqv float64) {
	σm = o.K * ε
	if math.Abs(ε) <= o.εY {
		return σm, 4.0 * o.G * ε / 3.0, 2.0 * o.G * math.Abs(ε)
	}
	sgn := 1.0
	if ε < 0 {
		sgn = -1.0
	}
	return σm, 2.0 * o.Y * sgn / 3.0, o.Y
}

// PlasticStrain returns the effective plastic strain 2/3 (|ε| - εY)
func (o UniaxialStrainEPP) PlasticStrain(ε float64) float64 {
	if math.Abs(ε) <= o.εY {
		return 0
	}
	return 2.0 * (math.Abs(ε) - o.εY) / 3.0
}
