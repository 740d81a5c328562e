// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Extra enumerates the optional scalars a particle may carry
type Extra int

// extra properties
const (
	Exx       Extra = iota // total strain: xx
	Eyy                    // total strain: yy
	Ezz                    // total strain: zz
	Eyz                    // total strain: yz (tensor component)
	Exz                    // total strain: xz (tensor component)
	Exy                    // total strain: xy (tensor component)
	Epeff                  // effective plastic strain
	Kelvin                 // absolute temperature
	Dmg                    // cumulative damage
	SigmaY                 // current yield stress
	LightTime              // time at which the detonation front reaches the particle
	NumExtra               // number of extra properties
)

// ExtraNames holds the names of extra properties
var ExtraNames = [NumExtra]string{"Exx", "Eyy", "Ezz", "Eyz", "Exz", "Exy", "epeff", "kelvin", "DMG", "sigma_y", "LT"}

// String returns the name of an extra property
func (o Extra) String() string {
	if o < 0 || o >= NumExtra {
		return io.Sf("Extra(%d)", int(o))
	}
	return ExtraNames[o]
}

// Layout maps the extra properties used by one material to compact slots.
// All particles of a material share the same Layout.
type Layout struct {
	pos  [NumExtra]int // slot of each extra property; -1 means absent
	init []float64     // initial value of each slot
}

// NewLayout returns an empty layout
func NewLayout() (o *Layout) {
	o = new(Layout)
	for i := 0; i < int(NumExtra); i++ {
		o.pos[i] = -1
	}
	return
}

// Add registers an extra property with initial value v0.
// Registering the same property twice keeps the first slot and the first initial value.
func (o *Layout) Add(e Extra, v0 float64) {
	if e < 0 || e >= NumExtra {
		chk.Panic("extra property %d is out of range", int(e))
	}
	if o.pos[e] >= 0 {
		return
	}
	o.pos[e] = len(o.init)
	o.init = append(o.init, v0)
}

// AddStrain registers the six total strain components
func (o *Layout) AddStrain() {
	for e := Exx; e <= Exy; e++ {
		o.Add(e, 0)
	}
}

// Has tells whether e has been registered
func (o *Layout) Has(e Extra) bool {
	return o.pos[e] >= 0
}

// Slot returns the slot index of e or -1
func (o *Layout) Slot(e Extra) int {
	return o.pos[e]
}

// Count returns the number of registered properties
func (o *Layout) Count() int {
	return len(o.init)
}

// Write writes the registered properties
func (o *Layout) Write(buf *bytes.Buffer) {
	io.Ff(buf, "Extra particle properties: %d\n", o.Count())
	for e := Extra(0); e < NumExtra; e++ {
		if o.pos[e] >= 0 {
			io.Ff(buf, "  %-8s slot=%d init=%g\n", e, o.pos[e], o.init[o.pos[e]])
		}
	}
}
