// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strength

import (
	"bytes"
	"math"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// JohnsonCook implements the Johnson-Cook model [1]
//   σy = (A + B εpⁿ) (1 + C ln ε̇*) (1 - T*ᵐ)
// with A = Yield0, ε̇* = ε̇p / ε̇0 and T* = (T - Troom) / (Tmelt - Troom).
// The elastic trial uses the shear modulus degraded by the cumulative damage.
type JohnsonCook struct {
	Plastic

	// parameters
	B     float64 // hardening modulus
	N     float64 // hardening exponent
	C     float64 // strain rate coefficient
	M     float64 // thermal softening exponent
	Tmelt float64 // melting temperature
	Epso  float64 // reference strain rate

	// flags
	thermal bool // use thermal softening and damage
}

// add model to factory
func init() {
	allocators["JohnsonCook"] = func() Model { return new(JohnsonCook) }
}

// setDefault sets default values
func (o *JohnsonCook) setDefault() {
	o.Plastic.setDefault()
	o.Epso = 1
}

// setPrm sets one parameter; returns false if p does not belong to JohnsonCook
func (o *JohnsonCook) setPrm(p *dbf.P) bool {
	switch p.N {
	case "B":
		o.B = p.V
	case "n":
		o.N = p.V
	case "C":
		o.C = p.V
	case "epso":
		o.Epso = p.V
	case "m":
		if !o.thermal {
			return false
		}
		o.M = p.V
	case "melt":
		if !o.thermal {
			return false
		}
		o.Tmelt = p.V
	default:
		return o.Plastic.setPrm(p)
	}
	return true
}

// initJC checks parameters and computes derived ones
func (o *JohnsonCook) initJC(model string, rho0 float64) (err error) {
	if o.Yield0 <= 0 {
		return chk.Err("%s: Yield0 must be positive. %g is incorrect\n", model, o.Yield0)
	}
	if o.Epso <= 0 {
		return chk.Err("%s: epso must be positive. %g is incorrect\n", model, o.Epso)
	}
	err = o.initDerived(model, rho0)
	if err != nil {
		return
	}
	if o.thermal {
		if o.Cp <= 0 {
			return chk.Err("%s: SpecHeat must be positive. %g is incorrect\n", model, o.Cp)
		}
		if o.Tmelt <= o.Troom {
			return chk.Err("%s: melt must be greater than roomt = %g. %g is incorrect\n", model, o.Troom, o.Tmelt)
		}
		o.Temp = true
	}
	return
}

// Init initialises model
func (o *JohnsonCook) Init(prms dbf.Params, rho0 float64) (err error) {
	o.thermal = true
	o.setDefault()
	for _, p := range prms {
		if !o.setPrm(p) {
			return chk.Err("JohnsonCook: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.initJC("JohnsonCook", rho0)
}

// GetPrms gets (an example) of parameters
//  Example: 4340 steel
func (o JohnsonCook) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Young", V: 200e9},
			&dbf.P{N: "Poisson", V: 0.29},
			&dbf.P{N: "SpecHeat", V: 477},
			&dbf.P{N: "Yield0", V: 792e6},
			&dbf.P{N: "B", V: 510e6},
			&dbf.P{N: "n", V: 0.26},
			&dbf.P{N: "C", V: 0.014},
			&dbf.P{N: "m", V: 1.03},
			&dbf.P{N: "melt", V: 1793},
		}
	}
	prms := append(o.getPrms(),
		&dbf.P{N: "B", V: o.B},
		&dbf.P{N: "n", V: o.N},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "epso", V: o.Epso},
	)
	if o.thermal {
		prms = append(prms, &dbf.P{N: "m", V: o.M}, &dbf.P{N: "melt", V: o.Tmelt})
	}
	return prms
}

// AddExtra registers extra properties
func (o *JohnsonCook) AddExtra(lay *particle.Layout) {
	o.Plastic.AddExtra(lay)
	if o.thermal {
		lay.Add(particle.Dmg, 0)
	}
}

// UpdateDeviatoricStress updates the deviatoric stress
func (o *JohnsonCook) UpdateDeviatoricStress(s *particle.State, Δε *[6]float64, stp *particle.Step, tr *particle.Transfer) {

	// elastic trial
	G := o.G
	if o.thermal {
		G *= 1.0 - s.Get(particle.Dmg)
	}
	elasticDev(s, Δε, G)
	seqv := s.EquivalentStress()
	tr.Yield = false
	tr.Depeff, tr.Lsrate, tr.Tstar = 0, 0, 0
	sy := s.Get(particle.SigmaY)
	if seqv <= sy {
		return
	}

	// homologous temperature
	tstar := 0.0
	if o.thermal {
		tstar = (s.Get(particle.Kelvin) - o.Troom) / (o.Tmelt - o.Troom)
		if tstar > 1 {
			tstar = 1
			s.Fail(false)
		} else if tstar < 0 {
			tstar = 0
		}
	}

	// plastic strain increment
	epeff := s.Get(particle.Epeff)
	Ep := o.B * o.N * math.Pow(epeff+1e-4, o.N-1.0)
	depeff := (seqv - sy) / (3.0*o.G + Ep)
	epeff += depeff

	// strain rate
	srate := 1.0
	if stp.Dt > 0 {
		srate = math.Max(depeff/o.Epso/stp.Dt, 1.0)
	}
	lsrate := math.Log(srate)

	// new yield stress
	sy = (o.Yield0 + o.B*math.Pow(epeff, o.N)) * (1.0 + o.C*lsrate)
	if o.thermal {
		sy *= 1.0 - math.Pow(tstar, o.M)
	}
	if sy < 0 {
		particle.Warn("yield stress less than zero in Johnson-Cook strength: %g with temperature of %g K\n", sy, s.Temperature())
		sy = 0
	}
	s.Set(particle.SigmaY, sy)

	// return
	if sy > seqv {
		depeff = 0
	} else {
		s.Set(particle.Epeff, epeff)
		tr.Yield = true
		radialReturn(s, seqv, sy)
	}
	tr.Depeff = depeff
	tr.Lsrate = lsrate
	tr.Tstar = tstar
}

// Write writes parameters
func (o *JohnsonCook) Write(buf *bytes.Buffer) {
	if o.thermal {
		o.writeIso(buf, "ISO-Plasticity: Johnson-Cook plasticity")
		io.Ff(buf, "%-13s %-13s %-13s %-13s %-13s\n", "Sigma_y", "B", "C", "n", "m")
		io.Ff(buf, "%-13g %-13g %-13g %-13g %-13g\n", o.Yield0, o.B, o.C, o.N, o.M)
		io.Ff(buf, "%-13s %-13s %-13s\n", "Melt Temp.", "Spec. Heat", "epso")
		io.Ff(buf, "%-13g %-13g %-13g\n", o.Tmelt, o.Cp, o.Epso)
	} else {
		o.writeIso(buf, "ISO-Plasticity: Simplified Johnson-Cook plasticity")
		io.Ff(buf, "%-13s %-13s %-13s %-13s %-13s\n", "Sigma_y", "B", "C", "n", "epso")
		io.Ff(buf, "%-13g %-13g %-13g %-13g %-13g\n", o.Yield0, o.B, o.C, o.N, o.Epso)
	}
	o.writeTemp(buf)
	io.Ff(buf, "\n")
}

// SimJohnsonCook implements the Johnson-Cook model without thermal softening
type SimJohnsonCook struct {
	JohnsonCook
}

// add model to factory
func init() {
	allocators["SimJohnsonCook"] = func() Model { return new(SimJohnsonCook) }
}

// Init initialises model
func (o *SimJohnsonCook) Init(prms dbf.Params, rho0 float64) (err error) {
	o.thermal = false
	o.setDefault()
	for _, p := range prms {
		if !o.setPrm(p) {
			return chk.Err("SimJohnsonCook: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.initJC("SimJohnsonCook", rho0)
}

// GetPrms gets (an example) of parameters
func (o SimJohnsonCook) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Young", V: 200e9},
			&dbf.P{N: "Poisson", V: 0.29},
			&dbf.P{N: "Yield0", V: 792e6},
			&dbf.P{N: "B", V: 510e6},
			&dbf.P{N: "n", V: 0.26},
			&dbf.P{N: "C", V: 0.014},
		}
	}
	return o.JohnsonCook.GetPrms(false)
}
