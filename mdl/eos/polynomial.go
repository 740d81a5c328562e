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

// Polynomial implements the linear polynomial equation of state
//
//   p = c0 + c1 μ + c2 μ² + c3 μ³ + (c4 + c5 μ + c6 μ²) E
//
//  Note: c2 and c6 are ignored in tension (μ < 0)
type Polynomial struct {
	Base
	C [7]float64 // coefficients c0..c6
}

// add model to factory
func init() {
	allocators["Polynomial"] = func() Model { return new(Polynomial) }
}

// Init initialises model
func (o *Polynomial) Init(prms dbf.Params, rho0 float64) (err error) {
	for _, p := range prms {
		if o.setPrm(p) {
			continue
		}
		if len(p.N) == 2 && p.N[0] == 'c' && p.N[1] >= '0' && p.N[1] <= '6' {
			o.C[p.N[1]-'0'] = p.V
			continue
		}
		return chk.Err("Polynomial: parameter named %q is incorrect\n", p.N)
	}
	return o.initBase("Polynomial", rho0)
}

// GetPrms gets (an example) of parameters
func (o Polynomial) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "c1", V: 75.2e9},
			&dbf.P{N: "c2", V: 65e9},
			&dbf.P{N: "c3", V: 10e9},
			&dbf.P{N: "c4", V: 2.0},
			&dbf.P{N: "c5", V: 2.0},
		}
	}
	prms := o.getPrms()
	for i, c := range o.C {
		prms = append(prms, &dbf.P{N: io.Sf("c%d", i), V: c})
	}
	return prms
}

// coefficients returns A(μ) and B(μ)
func (o *Polynomial) coefficients(μ float64) (A, B float64) {
	c := &o.C
	if μ < -particle.EPS {
		A = c[0] + μ*(c[1]+μ*μ*c[3])
		B = c[4] + μ*c[5]
		return
	}
	A = c[0] + μ*(c[1]+μ*(c[2]+μ*c[3]))
	B = c[4] + μ*(c[5]+μ*c[6])
	return
}

// UpdatePressure sets the mean stress
func (o *Polynomial) UpdatePressure(s *particle.State, Δvh, Δie float64, stp *particle.Step) {
	V0, E, μ := o.state(s, Δie)
	A, B := o.coefficients(μ)
	s.Mean = -semiImplicit(A, B, E, Δvh, V0)
}

// SoundSpeedSquare returns dp/dρ
func (o *Polynomial) SoundSpeedSquare(s *particle.State, stp *particle.Step) float64 {
	if s.Failed || o.Rho0 <= particle.EPS {
		return 0
	}
	c := &o.C
	p := -s.Mean
	rv := o.Rho0 / s.Density
	μ := 1.0/rv - 1.0
	E := s.Ie * o.Rho0 / s.Mass
	var B, C, D float64
	if μ < -particle.EPS {
		B = c[4] + μ*c[5]
		C = c[1] + 3.0*c[3]*μ*μ
		D = c[5]
	} else {
		B = c[4] + μ*(c[5]+μ*c[6])
		C = c[1] + μ*(2.0*c[2]+3.0*c[3]*μ)
		D = c[5] + 2.0*c[6]*μ
	}
	return (C + D*E + B*p*rv*rv) / o.Rho0
}

// Write writes parameters
func (o *Polynomial) Write(buf *bytes.Buffer) {
	o.writeHeader(buf, "Linear polynomial EOS")
	io.Ff(buf, "%-13s %-13s %-13s %-13s %-13s %-13s %-13s\n", "c0", "c1", "c2", "c3", "c4", "c5", "c6")
	for _, c := range o.C {
		io.Ff(buf, "%-13g ", c)
	}
	io.Ff(buf, "\n\n")
}
