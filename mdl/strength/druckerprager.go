// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strength

import (
	"bytes"
	"math"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// DruckerPrager implements a Drucker-Prager model with non-associated flow and tension cutoff
//   f = τ + qφ σm - kφ    with τ = √J2 and σm the mean stress (negative in compression)
//   g = τ + qψ σm
// The trial mean stress σm + K tr(Δε) is computed and corrected here, thus ElasticPressure
// does nothing for this model.
//  Return regimes:
//   shear:   σm < σt and f > 0          ⇒ return to the cone along g
//   corner:  σm ≥ σt and h > 0          ⇒ return to the cone along g
//   tension: σm ≥ σt and h ≤ 0          ⇒ σm = σt and τ ≤ τp
//  where σt is the tensile strength, τp = kφ - qφ σt and h = τ - τp - αp (σm - σt)
type DruckerPrager struct {
	Plastic

	// parameters
	Qphi float64 // friction coefficient qφ
	Kphi float64 // cohesion coefficient kφ
	Qpsi float64 // dilatancy coefficient qψ
	Tenf float64 // tensile strength

	// derived
	ten  float64 // effective tensile strength min(Tenf, kφ/qφ)
	taup float64 // τ at the tension corner
	alp  float64 // αp = √(1 + qφ²) - qφ
}

// add model to factory
func init() {
	allocators["DruckerPrager"] = func() Model { return new(DruckerPrager) }
}

// Init initialises model
func (o *DruckerPrager) Init(prms dbf.Params, rho0 float64) (err error) {
	o.setDefault()
	for _, p := range prms {
		switch p.N {
		case "qfai":
			o.Qphi = p.V
		case "kfai":
			o.Kphi = p.V
		case "qpsi":
			o.Qpsi = p.V
		case "tenf":
			o.Tenf = p.V
		default:
			if !o.setPrm(p) {
				return chk.Err("DruckerPrager: parameter named %q is incorrect\n", p.N)
			}
		}
	}
	err = o.initDerived("DruckerPrager", rho0)
	if err != nil {
		return
	}
	if o.Qphi < 0 || o.Qpsi < 0 || o.Kphi < 0 {
		return chk.Err("DruckerPrager: qfai, kfai and qpsi must be non-negative. %g, %g, %g are incorrect\n", o.Qphi, o.Kphi, o.Qpsi)
	}
	o.ten = 0
	if o.Qphi > 0 {
		o.ten = math.Min(o.Tenf, o.Kphi/o.Qphi)
	}
	o.taup = o.Kphi - o.Qphi*o.ten
	o.alp = math.Sqrt(1.0+o.Qphi*o.Qphi) - o.Qphi
	return
}

// GetPrms gets (an example) of parameters
//  Example: sand with φ = 30°, ψ = 0 and c = 0 (plane strain matching)
func (o DruckerPrager) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Young", V: 1.0e7},
			&dbf.P{N: "Poisson", V: 0.3},
			&dbf.P{N: "qfai", V: 0.24},
			&dbf.P{N: "kfai", V: 0},
			&dbf.P{N: "qpsi", V: 0},
			&dbf.P{N: "tenf", V: 0},
		}
	}
	return append(o.getPrms(),
		&dbf.P{N: "qfai", V: o.Qphi},
		&dbf.P{N: "kfai", V: o.Kphi},
		&dbf.P{N: "qpsi", V: o.Qpsi},
		&dbf.P{N: "tenf", V: o.Tenf},
	)
}

// CohesionFriction computes qφ and kφ from cohesion c and friction angle φ (degrees)
// by matching the Mohr-Coulomb surface in plane strain
func CohesionFriction(c, φdeg float64) (qphi, kphi float64) {
	tφ := math.Tan(φdeg * math.Pi / 180.0)
	den := math.Sqrt(9.0 + 12.0*tφ*tφ)
	return 3.0 * tφ / den, 3.0 * c / den
}

// Yield evaluates the yield function for a given state
func (o *DruckerPrager) Yield(s *particle.State) float64 {
	return s.Seqv/math.Sqrt(3.0) + o.Qphi*s.Mean - o.Kphi
}

// UpdateDeviatoricStress updates the deviatoric and mean stresses
func (o *DruckerPrager) UpdateDeviatoricStress(s *particle.State, Δε *[6]float64, stp *particle.Step, tr *particle.Transfer) {

	// elastic trial
	elasticDev(s, Δε, o.G)
	seqv := s.EquivalentStress()
	s.Mean += o.K * (Δε[0] + Δε[1] + Δε[2])
	σm := s.Mean
	τ := seqv / math.Sqrt(3.0)
	f := τ + o.Qphi*σm - o.Kphi
	tr.Yield = false
	tr.Depeff = 0

	// shear return
	shear := func() {
		dλ := f / (o.G + o.K*o.Qphi*o.Qpsi)
		s.Mean = σm - o.K*o.Qpsi*dλ
		τnew := math.Max(o.Kphi-o.Qphi*s.Mean, 0)
		if τ > 0 {
			s.ScaleDev(τnew / τ)
		}
		s.Seqv = τnew * math.Sqrt(3.0)
		tr.Depeff = dλ * math.Sqrt(1.0/3.0+2.0/9.0*o.Qpsi*o.Qpsi)
	}

	if σm-o.ten < -particle.EPS {
		if f <= particle.EPS {
			return
		}
		shear()
	} else {
		h := τ - o.taup - o.alp*(σm-o.ten)
		if h > particle.EPS {
			shear()
		} else {
			dλ := (σm - o.ten) / o.K
			s.Mean = o.ten
			if τ > o.taup {
				s.ScaleDev(o.taup / τ)
				s.Seqv = o.taup * math.Sqrt(3.0)
			}
			tr.Depeff = dλ * math.Sqrt(2.0) / 3.0
		}
	}
	tr.Yield = true
	s.Add(particle.Epeff, tr.Depeff)
}

// ElasticPressure does nothing: the mean stress is updated by UpdateDeviatoricStress
func (o *DruckerPrager) ElasticPressure(s *particle.State, Δvol float64) {
}

// Write writes parameters
func (o *DruckerPrager) Write(buf *bytes.Buffer) {
	o.writeIso(buf, "ISO-Plasticity: Drucker-Prager plasticity")
	io.Ff(buf, "%-13s %-13s %-13s %-13s\n", "qfai", "kfai", "qpsi", "tenf")
	io.Ff(buf, "%-13g %-13g %-13g %-13g\n", o.Qphi, o.Kphi, o.Qpsi, o.Tenf)
	o.writeTemp(buf)
	io.Ff(buf, "\n")
}
