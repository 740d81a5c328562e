// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package failure implements failure criteria for material points. Once a particle
// has failed, it never recovers and further checks do nothing
//  References:
//   [1] Johnson GR and Cook WH (1985) Fracture characteristics of three metals subjected to
//       various strains, strain rates, temperatures and pressures. Eng Fract Mech 21(1):31-48
package failure

import (
	"bytes"
	"sort"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Model defines failure models
type Model interface {
	Init(prms dbf.Params) error                                 // initialises model
	GetPrms(example bool) dbf.Params                            // gets (an example) of parameters
	AddExtra(lay *particle.Layout)                              // registers extra particle properties
	CheckFailure(s *particle.State, tr *particle.Transfer) bool // checks and records failure; returns s.Failed
	Write(buf *bytes.Buffer)                                    // writes parameters
}

// New failure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in failure database", name)
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

// Base holds the erosion flag shared by all failure models
type Base struct {
	Erosion bool // failed particles are also eroded
}

// setPrm sets one parameter; returns false if p does not belong to Base
func (o *Base) setPrm(p *dbf.P) bool {
	if p.N == "Erosion" {
		o.Erosion = p.V > particle.EPS
		return true
	}
	return false
}

// fail marks s as failed and, with erosion, as eroded
func (o *Base) fail(s *particle.State) {
	s.Fail(o.Erosion)
}

// erosionPrm returns the erosion flag as a parameter
func (o *Base) erosionPrm() *dbf.P {
	if o.Erosion {
		return &dbf.P{N: "Erosion", V: 1}
	}
	return &dbf.P{N: "Erosion", V: 0}
}

// AddExtra does nothing
func (o *Base) AddExtra(lay *particle.Layout) {}

// writeErosion writes the erosion flag
func (o *Base) writeErosion(buf *bytes.Buffer) {
	io.Ff(buf, "Erosion: %v\n\n", o.Erosion)
}

// exceeds checks the smallest and largest principal values against the bounds lo and hi
// and their half difference against smax
func exceeds(vmin, vmax, lo, hi, smax float64) bool {
	shear := (vmax - vmin) / 2.0
	if lo < -particle.EPS && vmin < -particle.EPS && vmin < lo {
		return true
	}
	if hi > particle.EPS && vmax > particle.EPS && vmax > hi {
		return true
	}
	if smax > particle.EPS && shear > particle.EPS && shear > smax {
		return true
	}
	return false
}
