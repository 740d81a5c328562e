// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"bytes"
	"testing"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// allocate allocates and initialises a model and a particle state
func allocate(tst *testing.T, name string, prms dbf.Params) (Model, *particle.State) {
	mdl, err := New(name)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	err = mdl.Init(prms)
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	lay := particle.NewLayout()
	mdl.AddExtra(lay)
	return mdl, particle.NewState(lay, 7800, 1.0)
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01")

	names := Names()
	io.Pforan("names = %v\n", names)
	chk.Int(tst, "number of models", len(names), 4)

	for _, name := range names {
		mdl, _ := New(name)
		err := mdl.Init(dbf.Params{&dbf.P{N: "wrong", V: 1}})
		if err == nil {
			tst.Errorf("%s: Init should have failed with wrong parameter name\n", name)
			return
		}
		mdl, _ = New(name)
		err = mdl.Init(append(mdl.GetPrms(true), &dbf.P{N: "Erosion", V: 1}))
		if err != nil {
			tst.Errorf("%s: Init with example parameters failed: %v\n", name, err)
			return
		}
		var buf bytes.Buffer
		mdl.Write(&buf)
		io.Pf("%v", buf.String())
		prms := mdl.GetPrms(false)
		chk.Float64(tst, name+": Erosion", 0, prms[len(prms)-1].V, 1)
	}

	for _, name := range []string{"PlaStrain", "PriStrain", "PriStress"} {
		mdl, _ := New(name)
		if mdl.Init(nil) == nil {
			tst.Errorf("%s: Init without thresholds should have failed\n", name)
		}
	}

	_, err := New("Unknown")
	if err == nil {
		tst.Errorf("New should have failed\n")
	}
}

func Test_plastrain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plastrain01")

	mdl, s := allocate(tst, "PlaStrain", dbf.Params{&dbf.P{N: "epmax", V: 0.5}})
	var tr particle.Transfer

	s.Set(particle.Epeff, 0.4)
	if mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should not fail with εp = 0.4\n")
		return
	}
	s.Set(particle.Epeff, 0.6)
	if !mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should fail with εp = 0.6\n")
		return
	}
	if s.Eroded {
		tst.Errorf("particle should not be eroded\n")
	}

	// failed particles never recover
	s.Set(particle.Epeff, 0)
	if !mdl.CheckFailure(s, &tr) {
		tst.Errorf("failure must be permanent\n")
	}
}

func Test_pristrain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pristrain01")

	prms := dbf.Params{
		&dbf.P{N: "PriStrainMin", V: -0.5},
		&dbf.P{N: "PriStrainMax", V: 0.3},
		&dbf.P{N: "ShearStrainMax", V: 0.4},
		&dbf.P{N: "Erosion", V: 1},
	}
	var tr particle.Transfer

	// uniaxial compression within bounds
	mdl, s := allocate(tst, "PriStrain", prms)
	s.AccumulateStrain(&[6]float64{-0.4, 0, 0, 0, 0, 0})
	if mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should not fail in compression with ε = -0.4\n")
		return
	}

	// uniaxial tension
	s.AccumulateStrain(&[6]float64{0.75, 0, 0, 0, 0, 0})
	if !mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should fail in tension with ε = 0.35\n")
		return
	}
	if !s.Eroded {
		tst.Errorf("particle should be eroded\n")
	}

	// pure shear: engineering γ = 0.5 gives principal strains ±0.25 and shear 0.25
	mdl, s = allocate(tst, "PriStrain", prms)
	s.AccumulateStrain(&[6]float64{0, 0, 0, 0, 0, 0.5})
	if mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should not fail with γ = 0.5\n")
		return
	}

	// γ = 0.7 gives the maximum principal strain 0.35
	s.AccumulateStrain(&[6]float64{0, 0, 0, 0, 0, 0.2})
	p := s.PrincipalStrain()
	vmin, vmax := particle.MinMax(p)
	chk.Float64(tst, "εmax", 1e-14, vmax, 0.35)
	chk.Float64(tst, "εmin", 1e-14, vmin, -0.35)
	if !mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should fail with γ = 0.7\n")
	}
}

func Test_pristress01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pristress01")

	mdl, s := allocate(tst, "PriStress", dbf.Params{
		&dbf.P{N: "PriStressMin", V: -2e9},
		&dbf.P{N: "PriStressMax", V: 500e6},
		&dbf.P{N: "ShearStressMax", V: 800e6},
	})
	var tr particle.Transfer

	s.Mean = -1e9
	if mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should not fail with σm = -1e9\n")
		return
	}

	// the bulk viscosity adds to the compression
	s.Q = 1.5e9
	if !mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should fail with σm - q = -2.5e9\n")
		return
	}

	// shear under confinement
	mdl, s = allocate(tst, "PriStress", mdl.GetPrms(false))
	s.Mean = -1e9
	s.Dev[5] = 700e6
	if mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should not fail with τ = 700e6\n")
		return
	}
	s.Dev[5] = 900e6
	if !mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should fail with τ = 900e6\n")
	}
}

func Test_jcdamage01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jcdamage01")

	mdl, s := allocate(tst, "JohnsonCookDamage", dbf.Params{
		&dbf.P{N: "D1", V: 0.05},
		&dbf.P{N: "D2", V: 3.44},
		&dbf.P{N: "D3", V: -2.12},
		&dbf.P{N: "D4", V: 0.002},
		&dbf.P{N: "D5", V: 0.61},
	})
	o := mdl.(*JohnsonCookDamage)

	// zero triaxiality, reference rate and room temperature
	s.Dev = [6]float64{2e8, -1e8, -1e8, 0, 0, 0}
	s.EquivalentStress()
	εf := o.FractureStrain(0, 0, 0)
	chk.Float64(tst, "εf", 1e-15, εf, 3.49)

	tr := particle.Transfer{Yield: true, Depeff: 0.349}
	if mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should not fail with D = 0.1\n")
		return
	}
	chk.Float64(tst, "D", 1e-15, s.Get(particle.Dmg), 0.1)
	chk.Array(tst, "dev", 1e-6, s.Dev[:], []float64{1.8e8, -0.9e8, -0.9e8, 0, 0, 0})

	// compression increases the fracture strain
	if o.FractureStrain(-1, 0, 0) <= εf {
		tst.Errorf("compression should increase the fracture strain\n")
		return
	}

	// full damage
	tr.Depeff = 10
	if !mdl.CheckFailure(s, &tr) {
		tst.Errorf("particle should fail with D = 1\n")
		return
	}
	chk.Float64(tst, "D", 0, s.Get(particle.Dmg), 1)
	chk.Array(tst, "dev", 0, s.Dev[:], []float64{0, 0, 0, 0, 0, 0})

	// no further accumulation
	s.Set(particle.Dmg, 0.5)
	s.Dev[0] = 1
	mdl.CheckFailure(s, &tr)
	chk.Float64(tst, "D(failed)", 0, s.Get(particle.Dmg), 0.5)
	chk.Float64(tst, "σxx(failed)", 0, s.Dev[0], 1)
}
