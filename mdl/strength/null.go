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

// Null implements a strength model for fluids. The deviatoric stress is either zero,
// Newtonian (mu) or power-law (ck, nn). It must be used with an equation of state.
type Null struct {
	Mu   float64 // Newtonian viscosity
	Ck   float64 // consistency of power-law fluid
	Nn   float64 // flow index of power-law fluid
	Rho0 float64 // reference density
}

// add model to factory
func init() {
	allocators["Null"] = func() Model { return new(Null) }
}

// Init initialises model
func (o *Null) Init(prms dbf.Params, rho0 float64) (err error) {
	o.Nn = 1
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "ck":
			o.Ck = p.V
		case "nn":
			o.Nn = p.V
		default:
			return chk.Err("Null: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Mu > particle.EPS && o.Ck > particle.EPS {
		return chk.Err("Null: strength cannot be both Newtonian (mu=%g) and non-Newtonian (ck=%g)\n", o.Mu, o.Ck)
	}
	o.Rho0 = rho0
	return
}

// GetPrms gets (an example) of parameters
//  Example: water
func (o Null) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "mu", V: 1e-3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "ck", V: o.Ck},
		&dbf.P{N: "nn", V: o.Nn},
	}
}

// AddExtra does nothing
func (o *Null) AddExtra(lay *particle.Layout) {
}

// UpdateDeviatoricStress computes the viscous deviatoric stress from the strain rate
func (o *Null) UpdateDeviatoricStress(s *particle.State, Δε *[6]float64, stp *particle.Step, tr *particle.Transfer) {
	tr.Yield = false
	if stp.Dt <= 0 || (o.Mu <= particle.EPS && o.Ck <= particle.EPS) {
		s.ZeroDev()
		return
	}
	Δεm := (Δε[0] + Δε[1] + Δε[2]) / 3.0
	if o.Mu > particle.EPS {
		for i := 0; i < 3; i++ {
			s.Dev[i] = o.Mu * (Δε[i] - Δεm) / stp.Dt
			s.Dev[3+i] = 0.5 * o.Mu * Δε[3+i] / stp.Dt
		}
	} else {
		for i := 0; i < 3; i++ {
			s.Dev[i] = powerLaw(Δε[i]-Δεm, stp.Dt, o.Ck, o.Nn)
			s.Dev[3+i] = powerLaw(0.5*Δε[3+i], stp.Dt, o.Ck, o.Nn)
		}
	}
	s.EquivalentStress()
}

// powerLaw returns sign(Δ) ck (|Δ|/dt)ⁿ
func powerLaw(Δ, dt, ck, nn float64) float64 {
	v := ck * math.Pow(math.Abs(Δ)/dt, nn)
	if Δ < 0 {
		return -v
	}
	return v
}

// ElasticPressure cannot be used
func (o *Null) ElasticPressure(s *particle.State, Δvol float64) {
	chk.Panic("Null strength model must be used with an equation of state\n")
}

// SoundSpeedSquareStrength returns zero
func (o *Null) SoundSpeedSquareStrength(s *particle.State) float64 {
	return 0
}

// SoundSpeedSquareElastic cannot be used
func (o *Null) SoundSpeedSquareElastic(s *particle.State) float64 {
	chk.Panic("Null strength model must be used with an equation of state\n")
	return 0
}

// UpdateTemperature does nothing
func (o *Null) UpdateTemperature(s *particle.State, Δvol float64, tr *particle.Transfer) {
}

// ModifyPressureByTemperature does nothing
func (o *Null) ModifyPressureByTemperature(s *particle.State) {
}

// Write writes parameters
func (o *Null) Write(buf *bytes.Buffer) {
	io.Ff(buf, "Strength Type: Null: Null strength model (used with EOS)\n")
	io.Ff(buf, "%-13s %-13s %-13s %-13s\n", "Density", "mu", "ck", "nn")
	io.Ff(buf, "%-13g %-13g %-13g %-13g\n\n", o.Rho0, o.Mu, o.Ck, o.Nn)
}
