// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equations of state for the volumetric response of materials
// under high pressure. Pressures are updated with the semi-implicit energy coupling
//
//   p_new = (A(μ) + B(μ) E) / (1 + B Δvh / V0)
//
// where μ = ρ/ρ0 - 1, E is the internal energy per reference volume V0 = m/ρ0,
// and Δvh is half of the volume change of the step
//  References:
//   [1] Lee EL, Hornig HC and Kury JW (1968) Adiabatic expansion of high explosive
//       detonation products. UCRL-50422
//   [2] Hallquist JO (2006) LS-DYNA Theory Manual. Livermore Software Technology Corp.
package eos

import (
	"bytes"
	"sort"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Model defines equations of state
type Model interface {
	Init(prms dbf.Params, rho0 float64) error                                // initialises model
	GetPrms(example bool) dbf.Params                                         // gets (an example) of parameters
	AddExtra(lay *particle.Layout)                                           // registers extra particle properties
	UpdatePressure(s *particle.State, Δvh, Δie float64, stp *particle.Step) // sets the mean stress
	SoundSpeedSquare(s *particle.State, stp *particle.Step) float64          // bulk contribution to c²
	InitialEnergy() float64                                                  // initial internal energy per unit volume
	Write(buf *bytes.Buffer)                                                 // writes parameters
}

// New equation of state
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in eos database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Base holds the data shared by all equations of state
type Base struct {
	C0   float64 // reference sound speed
	E0   float64 // initial internal energy per unit volume
	Rho0 float64 // reference density
}

// setPrm sets one parameter; returns false if p does not belong to Base
func (o *Base) setPrm(p *dbf.P) bool {
	switch p.N {
	case "C0":
		o.C0 = p.V
	case "E0":
		o.E0 = p.V
	default:
		return false
	}
	return true
}

// initBase checks the reference density
func (o *Base) initBase(model string, rho0 float64) error {
	if rho0 <= 0 {
		return chk.Err("%s: reference density must be positive. %g is incorrect\n", model, rho0)
	}
	o.Rho0 = rho0
	return nil
}

// getPrms returns the base parameters
func (o *Base) getPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "C0", V: o.C0},
		&dbf.P{N: "E0", V: o.E0},
	}
}

// AddExtra does nothing
func (o *Base) AddExtra(lay *particle.Layout) {}

// InitialEnergy returns E0
func (o *Base) InitialEnergy() float64 {
	return o.E0
}

// state returns the reference volume, the energy per reference volume including Δie and μ
func (o *Base) state(s *particle.State, Δie float64) (V0, E, μ float64) {
	V0 = s.Mass / o.Rho0
	E = (s.Ie + Δie) / V0
	μ = s.Density/o.Rho0 - 1.0
	return
}

// semiImplicit computes the new pressure from the energy-independent term A and the
// energy coefficient B
func semiImplicit(A, B, E, Δvh, V0 float64) float64 {
	return (A + B*E) / (1.0 + B*Δvh/V0)
}

// writeHeader writes the title and the reference values
func (o *Base) writeHeader(buf *bytes.Buffer, title string) {
	io.Ff(buf, "EOS Type: %s\n", title)
	io.Ff(buf, "%-13s %-13s %-13s\n", "Density", "C0", "E0")
	io.Ff(buf, "%-13g %-13g %-13g\n", o.Rho0, o.C0, o.E0)
}
