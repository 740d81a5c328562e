// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"bytes"
	"math"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// JWL implements the Jones-Wilkins-Lee equation of state for detonation products
//
//   p = A (1 - w/(R1 v)) exp(-R1 v) + B (1 - w/(R2 v)) exp(-R2 v) + w E / v
//
// where v = ρ0/ρ is the relative volume. Negative pressures are set to zero
type JWL struct {
	Base
	A, B   float64 // pressure coefficients
	R1, R2 float64 // decay coefficients
	W      float64 // Grüneisen coefficient ω
}

// add model to factory
func init() {
	allocators["JWL"] = func() Model { return new(JWL) }
}

// setPrm sets one parameter; returns false if p does not belong to JWL
func (o *JWL) setPrm(p *dbf.P) bool {
	if o.Base.setPrm(p) {
		return true
	}
	switch p.N {
	case "A":
		o.A = p.V
	case "B":
		o.B = p.V
	case "R1":
		o.R1 = p.V
	case "R2":
		o.R2 = p.V
	case "w":
		o.W = p.V
	default:
		return false
	}
	return true
}

// initJWL checks parameters
func (o *JWL) initJWL(model string, rho0 float64) error {
	if o.R1 <= 0 || o.R2 <= 0 {
		return chk.Err("%s: R1 and R2 must be positive. R1=%g and R2=%g are incorrect\n", model, o.R1, o.R2)
	}
	return o.initBase(model, rho0)
}

// Init initialises model
func (o *JWL) Init(prms dbf.Params, rho0 float64) (err error) {
	for _, p := range prms {
		if !o.setPrm(p) {
			return chk.Err("JWL: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.initJWL("JWL", rho0)
}

// GetPrms gets (an example) of parameters
func (o JWL) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // TNT
			&dbf.P{N: "A", V: 371.2e9},
			&dbf.P{N: "B", V: 3.231e9},
			&dbf.P{N: "R1", V: 4.15},
			&dbf.P{N: "R2", V: 0.95},
			&dbf.P{N: "w", V: 0.3},
			&dbf.P{N: "E0", V: 7e9},
		}
	}
	return o.jwlPrms()
}

// jwlPrms returns the JWL parameters
func (o *JWL) jwlPrms() dbf.Params {
	return append(o.getPrms(),
		&dbf.P{N: "A", V: o.A},
		&dbf.P{N: "B", V: o.B},
		&dbf.P{N: "R1", V: o.R1},
		&dbf.P{N: "R2", V: o.R2},
		&dbf.P{N: "w", V: o.W},
	)
}

// terms returns the exponential terms a = (A - Aw/(R1 v)) exp(-R1 v) and b = (B - Bw/(R2 v)) exp(-R2 v)
// together with their derivatives with respect to v
func (o *JWL) terms(rv float64) (a, b, dadv, dbdv float64) {
	r1, r2 := o.R1*rv, o.R2*rv
	aw, bw := o.A*o.W/r1, o.B*o.W/r2
	e1, e2 := math.Exp(-r1), math.Exp(-r2)
	a = (o.A - aw) * e1
	b = (o.B - bw) * e2
	dadv = -(o.R1*(o.A-aw) - aw/rv) * e1
	dbdv = -(o.R2*(o.B-bw) - bw/rv) * e2
	return
}

// UpdatePressure sets the mean stress
func (o *JWL) UpdatePressure(s *particle.State, Δvh, Δie float64, stp *particle.Step) {
	V0, E, _ := o.state(s, Δie)
	rv := o.Rho0 / s.Density
	a, b, _, _ := o.terms(rv)
	p := semiImplicit(a+b, o.W/rv, E, Δvh, V0)
	if p < particle.EPS {
		p = 0
	}
	s.Mean = -p
}

// SoundSpeedSquare returns dp/dρ
func (o *JWL) SoundSpeedSquare(s *particle.State, stp *particle.Step) float64 {
	if s.Failed {
		return 0
	}
	p := -s.Mean
	rv := o.Rho0 / s.Density
	E := s.Ie * o.Rho0 / s.Mass
	_, _, dadv, dbdv := o.terms(rv)
	return rv*rv/o.Rho0*(-dadv-dbdv+o.W*E/(rv*rv)) + p*o.W/s.Density
}

// Write writes parameters
func (o *JWL) Write(buf *bytes.Buffer) {
	o.writeHeader(buf, "JWL EOS")
	o.writeJWL(buf)
	io.Ff(buf, "\n")
}

// writeJWL writes the JWL coefficients
func (o *JWL) writeJWL(buf *bytes.Buffer) {
	io.Ff(buf, "%-13s %-13s %-13s %-13s %-13s\n", "A", "B", "R1", "R2", "w")
	io.Ff(buf, "%-13g %-13g %-13g %-13g %-13g\n", o.A, o.B, o.R1, o.R2, o.W)
}
