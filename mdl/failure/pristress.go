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

// PriStress fails particles whose principal stresses or maximum shear stress exceed the bounds
type PriStress struct {
	Base
	Min      float64 // minimum principal stress (negative)
	Max      float64 // maximum principal stress (positive)
	ShearMax float64 // maximum shear stress (positive)
}

// add model to factory
func init() {
	allocators["PriStress"] = func() Model { return new(PriStress) }
}

// Init initialises model
func (o *PriStress) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.setPrm(p) {
			continue
		}
		switch p.N {
		case "PriStressMin":
			o.Min = p.V
		case "PriStressMax":
			o.Max = p.V
		case "ShearStressMax":
			o.ShearMax = p.V
		default:
			return chk.Err("PriStress: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Min >= -particle.EPS {
		return chk.Err("PriStress: PriStressMin must be negative. %g is incorrect\n", o.Min)
	}
	if o.Max <= particle.EPS {
		return chk.Err("PriStress: PriStressMax must be positive. %g is incorrect\n", o.Max)
	}
	if o.ShearMax <= particle.EPS {
		return chk.Err("PriStress: ShearStressMax must be positive. %g is incorrect\n", o.ShearMax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PriStress) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "PriStressMin", V: -2e9},
			&dbf.P{N: "PriStressMax", V: 500e6},
			&dbf.P{N: "ShearStressMax", V: 800e6},
		}
	}
	return dbf.Params{
		&dbf.P{N: "PriStressMin", V: o.Min},
		&dbf.P{N: "PriStressMax", V: o.Max},
		&dbf.P{N: "ShearStressMax", V: o.ShearMax},
		o.erosionPrm(),
	}
}

// CheckFailure checks the principal values of the stress minus the bulk viscosity
func (o *PriStress) CheckFailure(s *particle.State, tr *particle.Transfer) bool {
	if s.Failed {
		return true
	}
	vmin, vmax := particle.MinMax(s.PrincipalStress())
	if exceeds(vmin, vmax, o.Min, o.Max, o.ShearMax) {
		o.fail(s)
	}
	return s.Failed
}

// Write writes parameters
func (o *PriStress) Write(buf *bytes.Buffer) {
	io.Ff(buf, "Failure model: Principal stress\n")
	io.Ff(buf, "PriStressMin: %g\nPriStressMax: %g\nShearStressMax: %g\n", o.Min, o.Max, o.ShearMax)
	o.writeErosion(buf)
}
