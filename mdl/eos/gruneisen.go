// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"bytes"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Gruneisen implements the Mie-Grüneisen equation of state with a linear Us-up Hugoniot
//
//   pH = ρ0 C0² μ (1 + μ) / (1 - (S1 - 1) μ)²
//   p  = pH (1 - γ μ / 2) + γ0 E     with γ = γ0 ρ0 / ρ
//
//  Note: pH is singular at μ = 1/(S1-1). Beyond μcut = Cutoff/(S1-1) the Hugoniot is
//        extrapolated linearly and the particle is marked as failed
type Gruneisen struct {
	Base

	// parameters
	S1     float64 // slope of the Us-up relation
	Gamma0 float64 // Grüneisen coefficient
	Cutoff float64 // fraction of the singular compression where the Hugoniot is cut

	// derived
	imp    float64 // ρ0 C0²
	μcut   float64 // cut compression; zero means no cut
	simple bool    // use the polynomial Hugoniot
	c2, c3 float64 // coefficients of the polynomial Hugoniot
}

// add model to factory
func init() {
	allocators["Gruneisen"] = func() Model { return new(Gruneisen) }
}

// Init initialises model
func (o *Gruneisen) Init(prms dbf.Params, rho0 float64) (err error) {
	model := "Gruneisen"
	if o.simple {
		model = "SimGruneisen"
	} else {
		o.Cutoff = 0.9
	}
	for _, p := range prms {
		if o.setPrm(p) {
			continue
		}
		switch {
		case p.N == "S1":
			o.S1 = p.V
		case p.N == "gamma0":
			o.Gamma0 = p.V
		case p.N == "cutoff" && !o.simple:
			o.Cutoff = p.V
		default:
			return chk.Err("%s: parameter named %q is incorrect\n", model, p.N)
		}
	}
	err = o.initBase(model, rho0)
	if err != nil {
		return
	}
	if o.C0 < particle.EPS {
		return chk.Err("%s: parameter C0 is needed\n", model)
	}
	o.imp = o.Rho0 * o.C0 * o.C0
	if o.simple {
		o.c2 = 2.0*o.S1 - 1.0
		o.c3 = (o.S1 - 1.0) * (3.0*o.S1 - 1.0)
		return
	}
	if o.Cutoff <= 0 || o.Cutoff >= 1 {
		return chk.Err("%s: cutoff must be in (0, 1). %g is incorrect\n", model, o.Cutoff)
	}
	o.μcut = 0
	if o.S1 > 1 {
		o.μcut = o.Cutoff / (o.S1 - 1.0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Gruneisen) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "C0", V: 5328},
			&dbf.P{N: "S1", V: 1.338},
			&dbf.P{N: "gamma0", V: 2.0},
		}
	}
	prms := append(o.getPrms(),
		&dbf.P{N: "S1", V: o.S1},
		&dbf.P{N: "gamma0", V: o.Gamma0},
	)
	if !o.simple {
		prms = append(prms, &dbf.P{N: "cutoff", V: o.Cutoff})
	}
	return prms
}

// Hugoniot returns the Hugoniot pressure pH and its derivative dpH/dμ
func (o *Gruneisen) Hugoniot(μ float64) (pH, dpH float64) {
	if o.simple {
		pH = o.imp * μ * (1.0 + μ*(o.c2+μ*o.c3))
		dpH = o.imp * (1.0 + μ*(2.0*o.c2+3.0*o.c3*μ))
		return
	}
	if o.μcut > 0 && μ > o.μcut {
		pc, dpc := o.Hugoniot(o.μcut)
		return pc + dpc*(μ-o.μcut), dpc
	}
	den := 1.0 - (o.S1-1.0)*μ
	pH = o.imp * μ * (1.0 + μ) / (den * den)
	dpH = o.imp * (1.0 + (o.S1+1.0)*μ) / (den * den * den)
	return
}

// UpdatePressure sets the mean stress
func (o *Gruneisen) UpdatePressure(s *particle.State, Δvh, Δie float64, stp *particle.Step) {
	V0, E, μ := o.state(s, Δie)
	γ := o.Gamma0 * o.Rho0 / s.Density
	A := o.imp * μ
	if μ > particle.EPS {
		pH, _ := o.Hugoniot(μ)
		A = pH * (1.0 - 0.5*γ*μ)
	}
	if o.μcut > 0 && μ > o.μcut {
		s.Fail(false)
	}
	s.Mean = -semiImplicit(A, o.Gamma0, E, Δvh, V0)
}

// SoundSpeedSquare returns dp/dρ
func (o *Gruneisen) SoundSpeedSquare(s *particle.State, stp *particle.Step) float64 {
	if s.Failed {
		return 0
	}
	p := -s.Mean
	rv := o.Rho0 / s.Density
	μ := 1.0/rv - 1.0
	γ := o.Gamma0 * rv
	if μ > particle.EPS {
		pH, dpH := o.Hugoniot(μ)
		return (dpH*(1.0-0.5*γ*μ)-0.5*pH*γ)/o.Rho0 + p*rv*γ/o.Rho0
	}
	return o.C0*o.C0 + p*rv*γ/o.Rho0
}

// Write writes parameters
func (o *Gruneisen) Write(buf *bytes.Buffer) {
	if o.simple {
		o.writeHeader(buf, "Simplified Mie-Gruneisen EOS")
		io.Ff(buf, "%-13s %-13s\n", "S1", "Gamma0")
		io.Ff(buf, "%-13g %-13g\n\n", o.S1, o.Gamma0)
		return
	}
	o.writeHeader(buf, "Mie-Gruneisen EOS")
	io.Ff(buf, "%-13s %-13s %-13s\n", "S1", "Gamma0", "Cutoff")
	io.Ff(buf, "%-13g %-13g %-13g\n\n", o.S1, o.Gamma0, o.Cutoff)
}
