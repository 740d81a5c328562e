// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"bytes"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// PlaStrain fails particles whose effective plastic strain exceeds Epmax
type PlaStrain struct {
	Base
	Epmax float64 // maximum effective plastic strain
}

// add model to factory
func init() {
	allocators["PlaStrain"] = func() Model { return new(PlaStrain) }
}

// Init initialises model
func (o *PlaStrain) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.setPrm(p) {
			continue
		}
		switch p.N {
		case "epmax":
			o.Epmax = p.V
		default:
			return chk.Err("PlaStrain: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Epmax <= particle.EPS {
		return chk.Err("PlaStrain: epmax must be positive. %g is incorrect\n", o.Epmax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PlaStrain) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "epmax", V: 0.5}}
	}
	return dbf.Params{&dbf.P{N: "epmax", V: o.Epmax}, o.erosionPrm()}
}

// AddExtra registers the effective plastic strain
func (o *PlaStrain) AddExtra(lay *particle.Layout) {
	lay.Add(particle.Epeff, 0)
}

// CheckFailure checks the effective plastic strain
func (o *PlaStrain) CheckFailure(s *particle.State, tr *particle.Transfer) bool {
	if s.Failed {
		return true
	}
	if s.Get(particle.Epeff) > o.Epmax {
		o.fail(s)
	}
	return s.Failed
}

// Write writes parameters
func (o *PlaStrain) Write(buf *bytes.Buffer) {
	io.Ff(buf, "Failure model: Effective plastic strain\n")
	io.Ff(buf, "epmax: %g\n", o.Epmax)
	o.writeErosion(buf)
}
