// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"math"
	"testing"

	"github.com/cpmech/gompm/ana"
	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_update01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("update01. elastic energy without EOS")

	mat := newMaterial(tst, "IsoElastic", steel(), "", nil, nil, nil, noViscosity(7800))
	pth := &Path{Dt: 1e-6, Segs: []*Segment{{Nincs: 100, Rate: [6]float64{-10, 0, 0, 0, 0, 5}}}}
	var drv Driver
	drv.Silent = !chk.Verbose
	err := drv.Init(mat)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	err = drv.Run(pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of states", len(drv.Res), 101)

	// stress
	G, K := 200e9/2.6, 200e9/1.2
	ε, γ := -1e-3, 5e-4
	s := drv.Res[100]
	chk.Float64(tst, "mean", 1e-2, s.Mean, K*ε)
	chk.Float64(tst, "sxx", 1e-2, s.Dev[0], 4*G*ε/3)
	chk.Float64(tst, "sxy", 1e-2, s.Dev[5], G*γ)

	// strain energy
	W := 0.5 * ((K+4*G/3)*ε*ε + G*γ*γ)
	io.Pforan("Ie = %v  W = %v\n", s.Ie, W)
	chk.Float64(tst, "Ie", 3e-3*W, s.Ie, W)
}

func Test_update02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("update02. semi-implicit energy coupling with EOS")

	mat := newMaterial(tst, "IsoElastic", steel(), "Gruneisen", dbf.Params{
		&dbf.P{N: "C0", V: 4570},
		&dbf.P{N: "S1", V: 1.49},
		&dbf.P{N: "gamma0", V: 1.93},
	}, nil, nil, dbf.Params{&dbf.P{N: "ReferenceDensity", V: 7830}})
	pth := &Path{Dt: 1e-7, Segs: []*Segment{{Nincs: 200, Rate: [6]float64{-1e3, 0, 0, 0, 0, 0}}}}
	var drv Driver
	drv.Silent = !chk.Verbose
	drv.Init(mat)
	err := drv.Run(pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	s := drv.Res[len(drv.Res)-1]
	io.Pforan("p = %v  Ie = %v  q = %v  c = %v\n", s.Pressure(), s.Ie, s.Q, s.C)
	if s.Pressure() <= 0 || s.Ie <= 0 || s.Q <= 0 {
		tst.Errorf("compression must increase pressure, energy and bulk viscosity\n")
		return
	}

	// the pressure is consistent with the final internal energy
	var stp particle.Step
	r := s.GetCopy()
	mat.Eos.UpdatePressure(r, 0, 0, &stp)
	chk.Float64(tst, "p(Ie)", 1e-6*s.Pressure(), s.Pressure(), r.Pressure())

	// energy is monotonic in compression
	for i := 1; i < len(drv.Res); i++ {
		if drv.Res[i].Ie < drv.Res[i-1].Ie {
			tst.Errorf("energy decreased at increment %d\n", i)
			return
		}
	}
}

func Test_update03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("update03. failure in tension")

	mat := newMaterial(tst, "ElaPlastic", dbf.Params{
		&dbf.P{N: "Young", V: 200e9},
		&dbf.P{N: "Poisson", V: 0.3},
		&dbf.P{N: "Yield0", V: 300e6},
	}, "", nil, []string{"PlaStrain"}, []dbf.Params{
		dbf.Params{&dbf.P{N: "epmax", V: 1e-3}},
	}, noViscosity(7800))
	pth := &Path{Dt: 1e-6, Segs: []*Segment{{Nincs: 100, Rate: [6]float64{50, 0, 0, 0, 0, 0}}}}
	var drv Driver
	drv.Silent = !chk.Verbose
	drv.Init(mat)
	err := drv.Run(pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	ifail := -1
	for i, s := range drv.Res {
		if s.Failed {
			ifail = i
			break
		}
	}
	if ifail < 0 {
		tst.Errorf("particle should have failed\n")
		return
	}
	io.Pforan("failed at increment %d\n", ifail)
	if drv.Res[ifail].Get(particle.Epeff) <= 1e-3 {
		tst.Errorf("failure before reaching epmax\n")
	}

	// failed particles carry no stress in tension and keep their volume
	vol := drv.Res[ifail].Volume
	for _, s := range drv.Res[ifail:] {
		chk.Float64(tst, "mean", 0, s.Mean, 0)
		chk.Float64(tst, "seqv", 0, s.Seqv, 0)
		chk.Float64(tst, "volume", 0, s.Volume, vol)
	}
	chk.Float64(tst, "failed (history)", 0, drv.Hist.Last("failed"), 1)
}

func Test_update04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("update04. rigid rotation")

	mat := newMaterial(tst, "IsoElastic", steel(), "", nil, nil, nil, noViscosity(7800))
	s := mat.NewState(7800, 1)
	s.Mean = -1e8
	s.Dev = [6]float64{2e8, -1e8, -1e8, 0, 0, 5e7}
	seqv := s.EquivalentStress()
	var Δε [6]float64
	ω := [3]float64{0, 0, 1e-4}
	stp := particle.Step{Dt: 1e-6}
	for i := 0; i < 100; i++ {
		mat.UpdateStress(s, &Δε, &ω, s.Volume, &stp)
	}
	chk.Float64(tst, "mean", 1e-6, s.Mean, -1e8)
	chk.Float64(tst, "seqv", 1e-3*seqv, s.Seqv, seqv)
	chk.Float64(tst, "szz", 1e-3, s.Dev[2], -1e8)
	if math.Abs(s.Dev[5]-5e7) < 1e5 {
		tst.Errorf("shear stress should have rotated\n")
	}
}

func Test_driver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver01. uniaxial strain with perfect plasticity")

	prms := dbf.Params{
		&dbf.P{N: "Young", V: 200e9},
		&dbf.P{N: "Poisson", V: 0.3},
		&dbf.P{N: "Yield0", V: 100e6},
	}
	mat := newMaterial(tst, "ElaPlastic", prms, "", nil, nil, nil, noViscosity(7800))
	var sol ana.UniaxialStrainEPP
	sol.Init(prms)

	Δε := -1e-5
	pth := &Path{Dt: 1e-6, Segs: []*Segment{{Nincs: 100, Rate: [6]float64{Δε / 1e-6, 0, 0, 0, 0, 0}}}}
	var drv Driver
	drv.Silent = !chk.Verbose
	drv.Init(mat)
	err := drv.Run(pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	for i, s := range drv.Res {
		ε := Δε * float64(i)
		σm, sxx, σeqv := sol.Stress(ε)
		chk.Float64(tst, io.Sf("mean(%d)", i), 1, s.Mean, σm)
		chk.Float64(tst, io.Sf("sxx(%d)", i), 1, s.Dev[0], sxx)
		chk.Float64(tst, io.Sf("seqv(%d)", i), 1, s.Seqv, σeqv)
		chk.Float64(tst, io.Sf("εp(%d)", i), 1e-12, s.Get(particle.Epeff), sol.PlasticStrain(ε))
	}
	chk.Float64(tst, "seqv (history)", 1, drv.Hist.Last("seqv"), 100e6)
	if chk.Verbose {
		io.Pf("%v\n", drv.Hist.Plot("seqv", nil))
	}
}
