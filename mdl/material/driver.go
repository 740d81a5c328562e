// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gompm/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Segment holds a constant strain rate and spin applied during Nincs increments
type Segment struct {
	Nincs int        `json:"nincs" yaml:"nincs"` // number of increments
	Rate  [6]float64 `json:"rate" yaml:"rate"`   // strain rate (xx, yy, zz, yz, xz, xy); engineering shear
	Spin  [3]float64 `json:"spin" yaml:"spin"`   // spin rate (Ωyz, Ωxz, Ωxy)
}

// Path holds a loading path for one material point
type Path struct {
	Dt        float64    `json:"dt" yaml:"dt"`               // time step size
	Rho       float64    `json:"rho" yaml:"rho"`             // initial density; 0 means the reference density
	Vol       float64    `json:"vol" yaml:"vol"`             // initial volume; 0 means 1
	LightTime float64    `json:"lighttime" yaml:"lighttime"` // light time for programmed burn
	Segs      []*Segment `json:"segments" yaml:"segments"`   // segments
}

// Check checks the path data
func (o *Path) Check() error {
	if o.Dt <= 0 {
		return chk.Err("path: dt must be positive. %g is incorrect\n", o.Dt)
	}
	if o.Rho < 0 || o.Vol < 0 {
		return chk.Err("path: initial density and volume must not be negative. rho=%g and vol=%g are incorrect\n", o.Rho, o.Vol)
	}
	if len(o.Segs) == 0 {
		return chk.Err("path: there must be at least one segment\n")
	}
	for i, seg := range o.Segs {
		if seg.Nincs < 1 {
			return chk.Err("path: number of increments of segment %d must be positive. %d is incorrect\n", i, seg.Nincs)
		}
	}
	return nil
}

// Nincs returns the total number of increments
func (o *Path) Nincs() (n int) {
	for _, seg := range o.Segs {
		n += seg.Nincs
	}
	return
}

// HistoryKeys are the keys recorded by Driver
var HistoryKeys = []string{"rho", "mean", "p", "seqv", "q", "c", "ie", "T", "epeff", "dmg", "failed"}

// Driver runs one material point along a path
type Driver struct {

	// input
	Mat *Material // material

	// settings
	Silent bool // do not show messages
	Exp    bool // update the volume with the exponential map

	// results
	Res  []*particle.State // states after each increment; Res[0] is the initial state
	Hist *out.History      // history of scalar quantities
}

// Init initialises driver
func (o *Driver) Init(mat *Material) (err error) {
	if mat == nil || mat.Strength == nil {
		return chk.Err("driver: material must be initialised\n")
	}
	o.Mat = mat
	return
}

// Run runs simulation
func (o *Driver) Run(pth *Path) (err error) {

	// check path
	err = pth.Check()
	if err != nil {
		return
	}

	// initial state
	rho, vol := pth.Rho, pth.Vol
	if rho == 0 {
		rho = o.Mat.Rho0
	}
	if vol == 0 {
		vol = 1
	}
	s := o.Mat.NewState(rho*vol, vol)
	if s.Has(particle.LightTime) {
		s.Set(particle.LightTime, pth.LightTime)
	}
	o.Res = make([]*particle.State, 0, pth.Nincs()+1)
	o.Hist = out.NewHistory(HistoryKeys...)
	o.record(0, s)

	// increments
	var Δε [6]float64
	var ω [3]float64
	stp := particle.Step{Dt: pth.Dt}
	for k, seg := range pth.Segs {
		for i := 0; i < 6; i++ {
			Δε[i] = seg.Rate[i] * pth.Dt
		}
		for i := 0; i < 3; i++ {
			ω[i] = seg.Spin[i] * pth.Dt
		}
		if !o.Exp && 1.0+Δε[0]+Δε[1]+Δε[2] <= 0 {
			return chk.Err("driver: volumetric strain increment of segment %d inverts the volume\n", k)
		}
		for inc := 0; inc < seg.Nincs; inc++ {
			s = s.GetCopy()
			volOld := s.Volume
			if o.Exp {
				s.UpdateVolumeExp(&Δε)
			} else {
				s.UpdateVolume(&Δε)
			}
			stp.Time += pth.Dt
			o.Mat.UpdateStress(s, &Δε, &ω, volOld, &stp)
			o.record(stp.Time, s)
		}
		if !o.Silent {
			io.Pf("segment %d: t = %g  p = %g  seqv = %g  failed = %v\n", k, stp.Time, s.Pressure(), s.Seqv, s.Failed)
		}
	}
	return
}

// record saves s and its scalar quantities
func (o *Driver) record(t float64, s *particle.State) {
	o.Res = append(o.Res, s)
	var epeff, dmg, failed float64
	if s.Has(particle.Epeff) {
		epeff = s.Get(particle.Epeff)
	}
	if s.Has(particle.Dmg) {
		dmg = s.Get(particle.Dmg)
	}
	if s.Failed {
		failed = 1
	}
	o.Hist.Push(t, s.Density, s.Mean, s.Pressure(), s.Seqv, s.Q, s.C, s.Ie, s.Temperature(), epeff, dmg, failed)
}
