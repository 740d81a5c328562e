// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "github.com/cpmech/gosl/fun/dbf"

// SimGruneisen implements the Mie-Grüneisen equation of state with the cubic Hugoniot
//
//   pH = ρ0 C0² (μ + (2S1-1) μ² + (S1-1)(3S1-1) μ³)
//
// which is regular for all μ and needs no cutoff
type SimGruneisen struct {
	Gruneisen
}

// add model to factory
func init() {
	allocators["SimGruneisen"] = func() Model { return new(SimGruneisen) }
}

// Init initialises model
func (o *SimGruneisen) Init(prms dbf.Params, rho0 float64) (err error) {
	o.simple = true
	return o.Gruneisen.Init(prms, rho0)
}
