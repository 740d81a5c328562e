// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/fun/dbf"

// LinearHugoniot computes the shock Hugoniot of a material with the linear relation
// between shock velocity and particle velocity
//
//   Us = C0 + S up
//
// in terms of the compression μ = ρ/ρ0 - 1 and η = 1 - ρ0/ρ = μ/(1+μ)
type LinearHugoniot struct {
	Rho0 float64 // reference density
	C0   float64 // bulk sound speed
	S    float64 // slope
}

// Init initialises this structure
func (o *LinearHugoniot) Init(prms dbf.Params) {

	// default values: aluminium
	o.Rho0 = 2700
	o.C0 = 5300
	o.S = 1.35

	// parameters
	for _, p := range prms {
		switch p.N {
		case "rho0":
			o.Rho0 = p.V
		case "C0":
			o.C0 = p.V
		case "S1":
			o.S = p.V
		}
	}
}

// Velocities returns the shock velocity Us and the particle velocity up at compression μ
func (o LinearHugoniot) Velocities(μ float64) (Us, up float64) {
	η := μ / (1.0 + μ)
	Us = o.C0 / (1.0 - o.S*η)
	up = η * Us
	return
}

// Pressure returns the Hugoniot pressure ρ0 Us up
func (o LinearHugoniot) Pressure(μ float64) float64 {
	Us, up := o.Velocities(μ)
	return o.Rho0 * Us * up
}

// Energy returns the internal energy per reference volume behind the shock: p η / 2
func (o LinearHugoniot) Energy(μ float64) float64 {
	return 0.5 * o.Pressure(μ) * μ / (1.0 + μ)
}
