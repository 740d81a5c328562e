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

// IsoHarden implements von Mises plasticity with linear isotropic hardening
type IsoHarden struct {
	Plastic
	Et float64 // tangent modulus
	Ep float64 // plastic modulus E Et / (E - Et)
}

// add model to factory
func init() {
	allocators["IsoHarden"] = func() Model { return new(IsoHarden) }
}

// Init initialises model
func (o *IsoHarden) Init(prms dbf.Params, rho0 float64) (err error) {
	o.setDefault()
	for _, p := range prms {
		switch p.N {
		case "TangMod":
			o.Et = p.V
		default:
			if !o.setPrm(p) {
				return chk.Err("IsoHarden: parameter named %q is incorrect\n", p.N)
			}
		}
	}
	if o.Yield0 <= 0 {
		return chk.Err("IsoHarden: Yield0 must be positive. %g is incorrect\n", o.Yield0)
	}
	err = o.initDerived("IsoHarden", rho0)
	if err != nil {
		return
	}
	if o.Et < 0 || o.Et >= o.E {
		return chk.Err("IsoHarden: TangMod must be in [0, E). %g is incorrect\n", o.Et)
	}
	o.Ep = o.E * o.Et / (o.E - o.Et)
	return
}

// GetPrms gets (an example) of parameters
func (o IsoHarden) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Young", V: 200e9},
			&dbf.P{N: "Poisson", V: 0.3},
			&dbf.P{N: "Yield0", V: 300e6},
			&dbf.P{N: "TangMod", V: 2e9},
		}
	}
	return append(o.getPrms(), &dbf.P{N: "TangMod", V: o.Et})
}

// UpdateDeviatoricStress updates the deviatoric stress
func (o *IsoHarden) UpdateDeviatoricStress(s *particle.State, Δε *[6]float64, stp *particle.Step, tr *particle.Transfer) {
	elasticDev(s, Δε, o.G)
	seqv := s.EquivalentStress()
	tr.Yield = false
	tr.Depeff = 0
	sy := s.Get(particle.SigmaY)
	if seqv > sy {
		tr.Depeff = (seqv - sy) / (3.0*o.G + o.Ep)
		s.Add(particle.Epeff, tr.Depeff)
		sy += o.Ep * tr.Depeff
		s.Set(particle.SigmaY, sy)
		if sy < seqv {
			tr.Yield = true
			radialReturn(s, seqv, sy)
		}
	}
}

// Write writes parameters
func (o *IsoHarden) Write(buf *bytes.Buffer) {
	o.writeIso(buf, "ISO-Plasticity: Linear isotropic hardening")
	io.Ff(buf, "%-13s %-13s\n%-13g %-13g\n", "Sigma_y", "TangMod", o.Yield0, o.Et)
	o.writeTemp(buf)
	io.Ff(buf, "\n")
}
