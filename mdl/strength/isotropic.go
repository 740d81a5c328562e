// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strength

import (
	"bytes"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Isotropic holds the data shared by isotropic strength models
type Isotropic struct {

	// parameters
	E     float64 // Young's modulus
	Nu    float64 // Poisson's coefficient
	Cp    float64 // specific heat
	Alpha float64 // temperature coefficient
	Troom float64 // room temperature

	// derived
	G    float64 // shear modulus
	K    float64 // bulk modulus
	Rho0 float64 // reference density
	Temp bool    // track temperature
}

// setDefault sets default values
func (o *Isotropic) setDefault() {
	o.Troom = 293
}

// setPrm sets one parameter; returns false if p does not belong to Isotropic
func (o *Isotropic) setPrm(p *dbf.P) bool {
	switch p.N {
	case "Young":
		o.E = p.V
	case "Poisson":
		o.Nu = p.V
	case "SpecHeat":
		o.Cp = p.V
	case "TemperatureCoefficient":
		o.Alpha = p.V
	case "roomt":
		o.Troom = p.V
	default:
		return false
	}
	return true
}

// initDerived checks parameters and computes derived ones
func (o *Isotropic) initDerived(model string, rho0 float64) error {
	if o.E <= 0 {
		return chk.Err("%s: Young modulus must be positive. %g is incorrect\n", model, o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("%s: Poisson coefficient must be in (-1, 0.5). %g is incorrect\n", model, o.Nu)
	}
	if rho0 <= 0 {
		return chk.Err("%s: reference density must be positive. %g is incorrect\n", model, rho0)
	}
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
	o.Rho0 = rho0
	o.Temp = o.Cp > 0
	return nil
}

// elasticDev adds the elastic deviatoric increment 2G(Δε - Δεm); shear components are engineering
func elasticDev(s *particle.State, Δε *[6]float64, G float64) {
	Δεm := (Δε[0] + Δε[1] + Δε[2]) / 3.0
	s.Dev[0] += 2.0 * G * (Δε[0] - Δεm)
	s.Dev[1] += 2.0 * G * (Δε[1] - Δεm)
	s.Dev[2] += 2.0 * G * (Δε[2] - Δεm)
	s.Dev[3] += G * Δε[3]
	s.Dev[4] += G * Δε[4]
	s.Dev[5] += G * Δε[5]
}

// AddExtra registers the temperature if it is tracked
func (o *Isotropic) AddExtra(lay *particle.Layout) {
	if o.Temp {
		lay.Add(particle.Kelvin, o.Troom)
	}
}

// ElasticPressure updates the mean stress with the bulk modulus
func (o *Isotropic) ElasticPressure(s *particle.State, Δvol float64) {
	s.Mean += o.K * Δvol
}

// SoundSpeedSquareStrength returns 4/3 G / ρ
func (o *Isotropic) SoundSpeedSquareStrength(s *particle.State) float64 {
	return 4.0 * o.G / (3.0 * s.Density)
}

// SoundSpeedSquareElastic returns K / ρ
func (o *Isotropic) SoundSpeedSquareElastic(s *particle.State) float64 {
	return o.K / s.Density
}

// ModifyPressureByTemperature subtracts α (T - Troom) from the mean stress
func (o *Isotropic) ModifyPressureByTemperature(s *particle.State) {
	if o.Temp && o.Alpha != 0 {
		s.Mean -= o.Alpha * (s.Get(particle.Kelvin) - o.Troom)
	}
}

// getPrms returns the isotropic parameters
func (o *Isotropic) getPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Young", V: o.E},
		&dbf.P{N: "Poisson", V: o.Nu},
		&dbf.P{N: "SpecHeat", V: o.Cp},
		&dbf.P{N: "TemperatureCoefficient", V: o.Alpha},
		&dbf.P{N: "roomt", V: o.Troom},
	}
}

// writeIso writes the elastic constants
func (o *Isotropic) writeIso(buf *bytes.Buffer, title string) {
	io.Ff(buf, "Strength Type: %s\n", title)
	io.Ff(buf, "%-13s %-13s %-13s\n", "Density", "E", "Poisson")
	io.Ff(buf, "%-13g %-13g %-13g\n", o.Rho0, o.E, o.Nu)
}

// writeTemp writes the temperature constants
func (o *Isotropic) writeTemp(buf *bytes.Buffer) {
	if o.Temp {
		io.Ff(buf, "%-13s %-13s %-13s\n", "Room Temp.", "Temp. Coef.", "Spec. Heat")
		io.Ff(buf, "%-13g %-13g %-13g\n", o.Troom, o.Alpha, o.Cp)
	}
}
