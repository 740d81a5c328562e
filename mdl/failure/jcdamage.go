// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"bytes"
	"math"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// JohnsonCookDamage accumulates the damage D = Σ Δεp / εf with the fracture strain
//
//   εf = (D1 + D2 exp(D3 σ*)) (1 + D4 ln ε̇*) (1 + D5 T*)     σ* = σm / σeqv
//
// The deviatoric stress is scaled by (1 - D) and the particle fails when D reaches one
type JohnsonCookDamage struct {
	Base
	D [5]float64 // D1..D5
}

// add model to factory
func init() {
	allocators["JohnsonCookDamage"] = func() Model { return new(JohnsonCookDamage) }
}

// Init initialises model
func (o *JohnsonCookDamage) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.setPrm(p) {
			continue
		}
		if len(p.N) == 2 && p.N[0] == 'D' && p.N[1] >= '1' && p.N[1] <= '5' {
			o.D[p.N[1]-'1'] = p.V
			continue
		}
		return chk.Err("JohnsonCookDamage: parameter named %q is incorrect\n", p.N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o JohnsonCookDamage) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // 4340 steel
			&dbf.P{N: "D1", V: 0.05},
			&dbf.P{N: "D2", V: 3.44},
			&dbf.P{N: "D3", V: -2.12},
			&dbf.P{N: "D4", V: 0.002},
			&dbf.P{N: "D5", V: 0.61},
		}
	}
	prms := make(dbf.Params, 0, 6)
	for i, d := range o.D {
		prms = append(prms, &dbf.P{N: io.Sf("D%d", i+1), V: d})
	}
	return append(prms, o.erosionPrm())
}

// AddExtra registers the damage
func (o *JohnsonCookDamage) AddExtra(lay *particle.Layout) {
	lay.Add(particle.Dmg, 0)
}

// FractureStrain returns εf for the stress triaxiality σ*, the logarithmic strain rate and T*
func (o *JohnsonCookDamage) FractureStrain(triax, lsrate, tstar float64) float64 {
	d := &o.D
	return (d[0] + d[1]*math.Exp(d[2]*triax)) * (1.0 + d[3]*lsrate) * (1.0 + d[4]*tstar)
}

// CheckFailure accumulates damage with the plastic strain increment of this step
func (o *JohnsonCookDamage) CheckFailure(s *particle.State, tr *particle.Transfer) bool {
	if s.Failed {
		return true
	}
	triax := s.Mean / (s.Seqv + particle.EPS)
	εf := o.FractureStrain(triax, tr.Lsrate, tr.Tstar)
	if εf <= particle.EPS {
		return false
	}
	dold := s.Get(particle.Dmg)
	if dold < 1.0 {
		dnew := math.Min(dold+tr.Depeff/εf, 1.0)
		s.Set(particle.Dmg, dnew)
		s.ScaleDev((1.0 - dnew) / (1.0 - dold))
	}
	if math.Abs(s.Get(particle.Dmg)-1.0) <= particle.EPS {
		o.fail(s)
	}
	return s.Failed
}

// Write writes parameters
func (o *JohnsonCookDamage) Write(buf *bytes.Buffer) {
	io.Ff(buf, "Failure model: Johnson-Cook accumulated damage\n")
	io.Ff(buf, "%-13s %-13s %-13s %-13s %-13s\n", "D1", "D2", "D3", "D4", "D5")
	io.Ff(buf, "%-13g %-13g %-13g %-13g %-13g\n", o.D[0], o.D[1], o.D[2], o.D[3], o.D[4])
	o.writeErosion(buf)
}
