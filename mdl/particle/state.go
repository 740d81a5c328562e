// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package particle implements the physical state of material points and the
// tensor operations needed by constitutive updates
//  Notation:
//   Symmetric tensors are stored as (xx, yy, zz, yz, xz, xy).
//   Strain increments carry engineering shear components (γ = 2ε).
//   The mean stress is negative in compression: mean = -pressure.
package particle

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// State holds the physical state of one material point
type State struct {

	// scalars
	Mass    float64 // mass (constant)
	Volume  float64 // current volume
	Density float64 // density = Mass / Volume
	Mean    float64 // mean stress (negative in compression)
	Seqv    float64 // von Mises equivalent stress
	Q       float64 // artificial bulk viscosity
	Ie      float64 // internal energy
	C       float64 // sound speed

	// deviatoric stress (xx, yy, zz, yz, xz, xy); trace is zero
	Dev [6]float64

	// flags
	Failed bool // particle has failed
	Eroded bool // particle is removed from momentum mapping

	// extra properties
	lay   *Layout   // shared slot table
	extra []float64 // values; len == lay.Count()
}

// NewState allocates a new state with all extra properties of lay set to their initial values
func NewState(lay *Layout, mass, volume float64) (o *State) {
	if lay == nil {
		lay = NewLayout()
	}
	if volume <= 0 {
		chk.Panic("volume of particle must be positive. %g is incorrect", volume)
	}
	o = new(State)
	o.Mass = mass
	o.Volume = volume
	o.Density = mass / volume
	o.lay = lay
	o.extra = make([]float64, lay.Count())
	copy(o.extra, lay.init)
	return
}

// Layout returns the slot table of this state
func (o *State) Layout() *Layout {
	return o.lay
}

// Has tells whether extra property e is available
func (o *State) Has(e Extra) bool {
	return o.lay.pos[e] >= 0
}

// Get returns extra property e
func (o *State) Get(e Extra) float64 {
	return o.extra[o.lay.pos[e]]
}

// Set sets extra property e
func (o *State) Set(e Extra, v float64) {
	o.extra[o.lay.pos[e]] = v
}

// Add adds v to extra property e
func (o *State) Add(e Extra, v float64) {
	o.extra[o.lay.pos[e]] += v
}

// SetFrom copies all values from another state with the same layout
func (o *State) SetFrom(other *State) {
	lay, extra := o.lay, o.extra
	*o = *other
	if lay != other.lay || len(extra) != len(other.extra) {
		lay, extra = other.lay, make([]float64, len(other.extra))
	}
	o.lay, o.extra = lay, extra
	copy(o.extra, other.extra)
}

// GetCopy returns a deep copy of this state; e.g. when a particle splits
func (o *State) GetCopy() *State {
	other := new(State)
	other.SetFrom(o)
	return other
}

// SetVolume sets the volume and recomputes the density
func (o *State) SetVolume(volume float64) {
	o.Volume = volume
	o.Density = o.Mass / o.Volume
}

// UpdateVolume updates the volume with the volumetric part of the strain increment de
func (o *State) UpdateVolume(de *[6]float64) {
	o.SetVolume(o.Volume * (1.0 + de[0] + de[1] + de[2]))
}

// UpdateVolumeExp updates the volume with the exponential map of the volumetric strain increment
func (o *State) UpdateVolumeExp(de *[6]float64) {
	o.SetVolume(o.Volume * math.Exp(de[0]+de[1]+de[2]))
}

// Fail marks the particle as failed and, if erode is true, as eroded
func (o *State) Fail(erode bool) {
	o.Failed = true
	if erode {
		o.Eroded = true
	}
}

// Pressure returns -Mean
func (o *State) Pressure() float64 {
	return -o.Mean
}

// Temperature returns the temperature or zero if it is not tracked
func (o *State) Temperature() float64 {
	if o.lay.pos[Kelvin] < 0 {
		return 0
	}
	return o.extra[o.lay.pos[Kelvin]]
}

// AccumulateStrain adds the strain increment de (engineering shear) to the total strain
// stored in Exx..Exy (tensor shear)
func (o *State) AccumulateStrain(de *[6]float64) {
	for i := 0; i < 3; i++ {
		o.Add(Exx+Extra(i), de[i])
		o.Add(Eyz+Extra(i), 0.5*de[3+i])
	}
}
