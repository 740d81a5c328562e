// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_uniaxial01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniaxial01")

	var sol UniaxialStrainEPP
	sol.Init(dbf.Params{
		&dbf.P{N: "Young", V: 200e9},
		&dbf.P{N: "Poisson", V: 0.3},
		&dbf.P{N: "Yield0", V: 400e6},
	})
	εY := sol.YieldStrain()
	chk.Float64(tst, "εY", 1e-17, εY, 400e6*2.6/(2*200e9))

	// continuity at yielding
	for _, ε := range []float64{εY, -εY} {
		_, s1, q1 := sol.Stress(ε)
		_, s2, q2 := sol.Stress(ε * (1 + 1e-12))
		chk.Float64(tst, "sxx at εY", 1, s1, s2)
		chk.Float64(tst, "σeqv at εY", 1, q1, q2)
	}

	// deviatoric stress is traceless: σeqv = 3/2 |sxx|
	for _, ε := range utl.LinSpace(-5*εY, 5*εY, 11) {
		σm, sxx, σeqv := sol.Stress(ε)
		chk.Float64(tst, io.Sf("σm(%g)", ε), 1e-4, σm, sol.K*ε)
		chk.Float64(tst, io.Sf("σeqv(%g)", ε), 1e-4, σeqv, 1.5*utl.Max(sxx, -sxx))
	}
	chk.Float64(tst, "εp(3εY)", 1e-17, sol.PlasticStrain(3*εY), 4*εY/3)
	chk.Float64(tst, "εp(εY/2)", 0, sol.PlasticStrain(εY/2), 0)
}

func Test_hugoniot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hugoniot01")

	var sol LinearHugoniot
	sol.Init(nil)
	imp := sol.Rho0 * sol.C0 * sol.C0
	for _, μ := range []float64{0, 0.05, 0.2, 0.5} {
		Us, up := sol.Velocities(μ)
		ρ := sol.Rho0 * (1 + μ)

		// Rankine-Hugoniot mass balance
		chk.Float64(tst, io.Sf("mass(μ=%g)", μ), 1e-6, sol.Rho0*Us, ρ*(Us-up))

		// rational form
		den := 1 - (sol.S-1)*μ
		chk.Float64(tst, io.Sf("pH(μ=%g)", μ), 1e-3, sol.Pressure(μ), imp*μ*(1+μ)/(den*den))
	}
	chk.Float64(tst, "E(0)", 0, sol.Energy(0), 0)
}
