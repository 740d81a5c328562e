// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. JSON database")

	mdb, err := ReadMat("data", "metals.mat")
	if err != nil {
		tst.Errorf("ReadMat failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", mdb)
	chk.Strings(tst, "names", mdb.Names(), []string{"steel", "aluminium"})

	steel := mdb.Get("steel")
	if steel == nil {
		tst.Errorf("cannot find steel\n")
		return
	}
	if steel.Mat.Eos == nil {
		tst.Errorf("steel must have an equation of state\n")
		return
	}
	chk.Float64(tst, "steel: rho0", 0, steel.Mat.Rho0, 7830)
	chk.String(tst, steel.Mat.StrengthName, "JohnsonCook")
	chk.String(tst, steel.Mat.EosName, "Gruneisen")
	chk.Strings(tst, "steel: failures", steel.Mat.FailureNames, []string{"JohnsonCookDamage"})
	if !steel.Mat.Lay.Has(particle.Dmg) {
		tst.Errorf("steel must store damage\n")
	}

	alu := mdb.Get("aluminium")
	if alu.Mat.Eos != nil {
		tst.Errorf("aluminium must not have an equation of state\n")
	}
	chk.Float64(tst, "aluminium: bq1", 0, alu.Mat.Bq1, 0)
	chk.Float64(tst, "aluminium: bq2", 0, alu.Mat.Bq2, 0)

	if mdb.Get("copper") != nil {
		tst.Errorf("Get should return nil for missing material\n")
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. YAML database")

	mdb, err := ReadMat("data", "explosives.yaml")
	if err != nil {
		tst.Errorf("ReadMat failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", mdb)

	tnt := mdb.Get("tnt")
	chk.String(tst, tnt.Desc, "TNT with programmed burn")
	chk.String(tst, tnt.Mat.EosName, "HighExpBurn")
	chk.Float64(tst, "tnt: rho0", 0, tnt.Mat.Rho0, 1630)
	if !tnt.Mat.Lay.Has(particle.LightTime) {
		tst.Errorf("tnt must store the light time\n")
	}
	s := tnt.Mat.NewState(1630, 1)
	chk.Float64(tst, "tnt: Ie", 1, s.Ie, 7e9)

	water := mdb.Get("water")
	chk.Int(tst, "water: FailedType", water.Mat.FailedType, 2)
	chk.Float64(tst, "water: TensileCutoff", 0, water.Mat.TensileCutoff, 1e5)
	chk.Strings(tst, "water: failures", water.Mat.FailureNames, []string{"PriStress"})
}

func Test_mat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat03. errors")

	_, err := ReadMat("data", "repeated.yaml")
	if err == nil {
		tst.Errorf("repeated names should cause an error\n")
	}
	io.Pforan("%v\n", err)

	_, err = ReadMat("data", "nonexistent.mat")
	if err == nil {
		tst.Errorf("missing file should cause an error\n")
	}

	_, err = ReadPath("data", "nonexistent.yaml")
	if err == nil {
		tst.Errorf("missing path file should cause an error\n")
	}

	_, err = ReadSim("data/nonexistent.sim")
	if err == nil {
		tst.Errorf("missing simulation file should cause an error\n")
	}

	var m Material
	err = m.Init()
	if err == nil {
		tst.Errorf("material without strength should cause an error\n")
	}
}

func Test_path01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("path01")

	pth, err := ReadPath("data", "uniaxial.yaml")
	if err != nil {
		tst.Errorf("ReadPath failed:\n%v", err)
		return
	}
	chk.Float64(tst, "dt", 0, pth.Dt, 1e-6)
	chk.Int(tst, "number of segments", len(pth.Segs), 2)
	chk.Int(tst, "number of increments", pth.Nincs(), 150)
	chk.Array(tst, "rate", 0, pth.Segs[1].Rate[:], []float64{100, 0, 0, 0, 0, 0})
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. steel under uniaxial strain")

	sim, err := ReadSim("data/steel.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "steel")
	chk.String(tst, sim.DirOut, "/tmp/gompm/steel")
	chk.Int(tst, "every", sim.Every, 10)

	err = sim.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	hist := sim.Driver.Hist
	chk.Int(tst, "number of records", hist.Len(), 151)
	pmin, pmax := hist.Range("p")
	io.Pforan("p = [%g, %g]\n", pmin, pmax)
	if pmax <= 0 {
		tst.Errorf("compression must increase the pressure\n")
	}
	if hist.Last("p") >= pmax {
		tst.Errorf("unloading must decrease the pressure\n")
	}
	if hist.Last("epeff") <= 0 {
		tst.Errorf("steel should have yielded\n")
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. programmed burn")

	sim, err := ReadSim("data/tnt.yaml")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	err = sim.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	for i, s := range sim.Driver.Res {
		t := sim.Driver.Hist.T[i]
		if t <= 1.443e-6 {
			chk.Float64(tst, io.Sf("p(t=%g)", t), 0, s.Pressure(), 0)
		}
	}
	p := sim.Driver.Hist.Last("p")
	io.Pforan("final p = %g\n", p)
	if p < 1e9 {
		tst.Errorf("detonation products must be pressurised\n")
	}
	if chk.Verbose {
		io.Pf("%v\n", sim.Driver.Hist.Plot("p", nil))
	}
}
