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

// Plastic holds the data shared by plastic isotropic models
type Plastic struct {
	Isotropic
	Yield0 float64 // initial yield stress
	Pwc    float64 // fraction of plastic work converted into heat
}

// setDefault sets default values
func (o *Plastic) setDefault() {
	o.Isotropic.setDefault()
	o.Pwc = 0.9
}

// setPrm sets one parameter; returns false if p does not belong to Plastic
func (o *Plastic) setPrm(p *dbf.P) bool {
	switch p.N {
	case "Yield0":
		o.Yield0 = p.V
	case "PlasticWorkCoefficient":
		o.Pwc = p.V
	default:
		return o.Isotropic.setPrm(p)
	}
	return true
}

// getPrms returns the plastic parameters
func (o *Plastic) getPrms() dbf.Params {
	return append(o.Isotropic.getPrms(),
		&dbf.P{N: "Yield0", V: o.Yield0},
		&dbf.P{N: "PlasticWorkCoefficient", V: o.Pwc},
	)
}

// AddExtra registers the plastic strain, the yield stress and the temperature
func (o *Plastic) AddExtra(lay *particle.Layout) {
	o.Isotropic.AddExtra(lay)
	lay.Add(particle.Epeff, 0)
	lay.Add(particle.SigmaY, o.Yield0)
}

// UpdateTemperature adds the heat generated by plastic work
func (o *Plastic) UpdateTemperature(s *particle.State, Δvol float64, tr *particle.Transfer) {
	if !o.Temp || s.Failed || !tr.Yield {
		return
	}
	s.Add(particle.Kelvin, o.Pwc*s.Seqv*tr.Depeff/s.Density/o.Cp)
}

// radialReturn scales the deviatoric stress from seqv to sy
func radialReturn(s *particle.State, seqv, sy float64) {
	s.ScaleDev(sy / seqv)
	s.Seqv = sy
}

// ElaPlastic implements elastic-perfectly plastic von Mises model
type ElaPlastic struct {
	Plastic
}

// add model to factory
func init() {
	allocators["ElaPlastic"] = func() Model { return new(ElaPlastic) }
}

// Init initialises model
func (o *ElaPlastic) Init(prms dbf.Params, rho0 float64) (err error) {
	o.setDefault()
	for _, p := range prms {
		if !o.setPrm(p) {
			return chk.Err("ElaPlastic: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Yield0 <= 0 {
		return chk.Err("ElaPlastic: Yield0 must be positive. %g is incorrect\n", o.Yield0)
	}
	return o.initDerived("ElaPlastic", rho0)
}

// GetPrms gets (an example) of parameters
func (o ElaPlastic) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Young", V: 200e9},
			&dbf.P{N: "Poisson", V: 0.3},
			&dbf.P{N: "Yield0", V: 300e6},
		}
	}
	return o.getPrms()
}

// UpdateDeviatoricStress updates the deviatoric stress
func (o *ElaPlastic) UpdateDeviatoricStress(s *particle.State, Δε *[6]float64, stp *particle.Step, tr *particle.Transfer) {
	elasticDev(s, Δε, o.G)
	seqv := s.EquivalentStress()
	tr.Yield = false
	tr.Depeff = 0
	if seqv > o.Yield0 {
		tr.Yield = true
		tr.Depeff = (seqv - s.Get(particle.SigmaY)) / (3.0 * o.G)
		s.Add(particle.Epeff, tr.Depeff)
		radialReturn(s, seqv, o.Yield0)
	}
}

// Write writes parameters
func (o *ElaPlastic) Write(buf *bytes.Buffer) {
	o.writeIso(buf, "ISO-Plasticity: Elastic-perfectly plasticity")
	io.Ff(buf, "%-13s\n%-13g\n", "Sigma_y", o.Yield0)
	o.writeTemp(buf)
	io.Ff(buf, "\n")
}
