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

// IsoElastic implements isotropic linear elasticity
type IsoElastic struct {
	Isotropic
}

// add model to factory
func init() {
	allocators["IsoElastic"] = func() Model { return new(IsoElastic) }
}

// Init initialises model
func (o *IsoElastic) Init(prms dbf.Params, rho0 float64) (err error) {
	o.setDefault()
	for _, p := range prms {
		if !o.setPrm(p) {
			return chk.Err("IsoElastic: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.initDerived("IsoElastic", rho0)
}

// GetPrms gets (an example) of parameters
func (o IsoElastic) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Young", V: 200e9},
			&dbf.P{N: "Poisson", V: 0.3},
		}
	}
	return o.getPrms()
}

// UpdateDeviatoricStress updates the deviatoric stress
func (o *IsoElastic) UpdateDeviatoricStress(s *particle.State, Δε *[6]float64, stp *particle.Step, tr *particle.Transfer) {
	elasticDev(s, Δε, o.G)
	s.EquivalentStress()
}

// ElasticPressure updates the mean stress. With temperature, the total form
// K (V - V0) / V0 - α (T - Troom) is used
func (o *IsoElastic) ElasticPressure(s *particle.State, Δvol float64) {
	if o.Temp {
		V0 := s.Mass / o.Rho0
		s.Mean = o.K*(s.Volume-V0)/V0 - o.Alpha*(s.Get(particle.Kelvin)-o.Troom)
		return
	}
	s.Mean += o.K * Δvol
}

// UpdateTemperature applies the thermoelastic effect
func (o *IsoElastic) UpdateTemperature(s *particle.State, Δvol float64, tr *particle.Transfer) {
	if o.Temp {
		T := s.Get(particle.Kelvin)
		s.Set(particle.Kelvin, T-o.Alpha*T*Δvol/s.Density/o.Cp)
	}
}

// Write writes parameters
func (o *IsoElastic) Write(buf *bytes.Buffer) {
	o.writeIso(buf, "ISO-Elasticity: Isotropic elasticity")
	o.writeTemp(buf)
	io.Ff(buf, "\n")
}
