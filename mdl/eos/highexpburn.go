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

// HighExpBurn implements the JWL equation of state of a high explosive scaled by the
// burn fraction F = max(F1, F2) with
//
//   F1 = (t - tL) D / (1.5 h)          programmed burn; tL is the light time of the particle
//   F2 = ρ0 D² (1 - V/V0) / PCJ        beta burn
type HighExpBurn struct {
	JWL

	// parameters
	D          float64 // detonation velocity
	PCJ        float64 // Chapman-Jouguet pressure
	H          float64 // characteristic length
	Beta       bool    // beta burn
	Programmed bool    // programmed burn

	// derived
	f1coef float64 // D / (1.5 h)
	f2coef float64 // ρ0 D² / PCJ
}

// add model to factory
func init() {
	allocators["HighExpBurn"] = func() Model { return new(HighExpBurn) }
}

// Init initialises model
func (o *HighExpBurn) Init(prms dbf.Params, rho0 float64) (err error) {
	o.Programmed = true
	for _, p := range prms {
		if o.setPrm(p) {
			continue
		}
		switch p.N {
		case "D":
			o.D = p.V
		case "PCJ":
			o.PCJ = p.V
		case "h":
			o.H = p.V
		case "beta":
			o.Beta = p.V > particle.EPS
		case "programed":
			o.Programmed = p.V > particle.EPS
		default:
			return chk.Err("HighExpBurn: parameter named %q is incorrect\n", p.N)
		}
	}
	err = o.initJWL("HighExpBurn", rho0)
	if err != nil {
		return
	}
	if !o.Beta && !o.Programmed {
		return chk.Err("HighExpBurn: at least one burn method (beta or programed) must be selected\n")
	}
	if o.D <= 0 {
		return chk.Err("HighExpBurn: detonation velocity D must be positive. %g is incorrect\n", o.D)
	}
	if o.Programmed {
		if o.H < particle.EPS {
			return chk.Err("HighExpBurn: characteristic length h is needed for programmed burn\n")
		}
		o.f1coef = o.D / (1.5 * o.H)
	}
	if o.Beta {
		if o.PCJ < particle.EPS {
			return chk.Err("HighExpBurn: Chapman-Jouguet pressure PCJ is needed for beta burn\n")
		}
		o.f2coef = o.Rho0 * o.D * o.D / o.PCJ
	}
	o.C0 = o.D
	return
}

// GetPrms gets (an example) of parameters
func (o HighExpBurn) GetPrms(example bool) dbf.Params {
	if example {
		return append(o.JWL.GetPrms(true),
			&dbf.P{N: "D", V: 6930},
			&dbf.P{N: "PCJ", V: 21e9},
			&dbf.P{N: "h", V: 1e-3},
		)
	}
	return append(o.jwlPrms(),
		&dbf.P{N: "D", V: o.D},
		&dbf.P{N: "PCJ", V: o.PCJ},
		&dbf.P{N: "h", V: o.H},
		&dbf.P{N: "beta", V: b2f(o.Beta)},
		&dbf.P{N: "programed", V: b2f(o.Programmed)},
	)
}

// AddExtra registers the light time
func (o *HighExpBurn) AddExtra(lay *particle.Layout) {
	lay.Add(particle.LightTime, 0)
}

// LightTime returns the time the detonation front, moving with velocity D from a
// detonation point lit at tdet, needs to reach a particle at distance dist
func (o *HighExpBurn) LightTime(tdet, dist float64) float64 {
	return tdet + dist/o.D
}

// Fraction returns the burn fraction of a particle at time t
func (o *HighExpBurn) Fraction(s *particle.State, t float64) (F float64) {
	var f1, f2 float64
	if o.Programmed {
		tl := s.Get(particle.LightTime)
		if t > tl {
			f1 = math.Min((t-tl)*o.f1coef, 1.0)
		}
	}
	if o.Beta {
		V0 := s.Mass / o.Rho0
		f2 = o.f2coef * (1.0 - s.Volume/V0)
		if f2 > 0.95 {
			f2 = 1.0
		}
	}
	F = math.Max(f1, f2)
	if F < 1e-4 {
		F = 0
	}
	return
}

// UpdatePressure sets the mean stress
func (o *HighExpBurn) UpdatePressure(s *particle.State, Δvh, Δie float64, stp *particle.Step) {
	F := o.Fraction(s, stp.Time)
	o.JWL.UpdatePressure(s, Δvh, Δie, stp)
	s.Mean *= F
}

// SoundSpeedSquare returns the maximum of the JWL value and (D (1 - F))²
func (o *HighExpBurn) SoundSpeedSquare(s *particle.State, stp *particle.Step) float64 {
	c := o.D * (1.0 - o.Fraction(s, stp.Time))
	return math.Max(o.JWL.SoundSpeedSquare(s, stp), c*c)
}

// Write writes parameters
func (o *HighExpBurn) Write(buf *bytes.Buffer) {
	o.writeHeader(buf, "High explosive burn (JWL EOS)")
	o.writeJWL(buf)
	io.Ff(buf, "%-13s %-13s %-13s %-13s %-13s\n", "D", "PCJ", "h", "beta", "programed")
	io.Ff(buf, "%-13g %-13g %-13g %-13v %-13v\n\n", o.D, o.PCJ, o.H, o.Beta, o.Programmed)
}

// b2f converts a flag to a parameter value
func b2f(flag bool) float64 {
	if flag {
		return 1
	}
	return 0
}
