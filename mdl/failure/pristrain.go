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

// PriStrain fails particles whose principal strains or maximum shear strain exceed the bounds
type PriStrain struct {
	Base
	Min      float64 // minimum principal strain (negative)
	Max      float64 // maximum principal strain (positive)
	ShearMax float64 // maximum shear strain (positive)
}

// add model to factory
func init() {
	allocators["PriStrain"] = func() Model { return new(PriStrain) }
}

// Init initialises model
func (o *PriStrain) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.setPrm(p) {
			continue
		}
		switch p.N {
		case "PriStrainMin":
			o.Min = p.V
		case "PriStrainMax":
			o.Max = p.V
		case "ShearStrainMax":
			o.ShearMax = p.V
		default:
			return chk.Err("PriStrain: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Min >= -particle.EPS {
		return chk.Err("PriStrain: PriStrainMin must be negative. %g is incorrect\n", o.Min)
	}
	if o.Max <= particle.EPS {
		return chk.Err("PriStrain: PriStrainMax must be positive. %g is incorrect\n", o.Max)
	}
	if o.ShearMax <= particle.EPS {
		return chk.Err("PriStrain: ShearStrainMax must be positive. %g is incorrect\n", o.ShearMax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PriStrain) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "PriStrainMin", V: -0.5},
			&dbf.P{N: "PriStrainMax", V: 0.3},
			&dbf.P{N: "ShearStrainMax", V: 0.4},
		}
	}
	return dbf.Params{
		&dbf.P{N: "PriStrainMin", V: o.Min},
		&dbf.P{N: "PriStrainMax", V: o.Max},
		&dbf.P{N: "ShearStrainMax", V: o.ShearMax},
		o.erosionPrm(),
	}
}

// AddExtra registers the strain components
func (o *PriStrain) AddExtra(lay *particle.Layout) {
	lay.AddStrain()
}

// CheckFailure checks the principal values of the total strain
func (o *PriStrain) CheckFailure(s *particle.State, tr *particle.Transfer) bool {
	if s.Failed {
		return true
	}
	vmin, vmax := particle.MinMax(s.PrincipalStrain())
	if exceeds(vmin, vmax, o.Min, o.Max, o.ShearMax) {
		o.fail(s)
	}
	return s.Failed
}

// Write writes parameters
func (o *PriStrain) Write(buf *bytes.Buffer) {
	io.Ff(buf, "Failure model: Principal strain\n")
	io.Ff(buf, "PriStrainMin: %g\nPriStrainMax: %g\nShearStrainMax: %g\n", o.Min, o.Max, o.ShearMax)
	o.writeErosion(buf)
}
