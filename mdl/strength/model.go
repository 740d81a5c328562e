// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package strength implements models for the deviatoric (strength) response of solids
// updated explicitly at material points
//  References:
//   [1] Johnson GR and Cook WH (1983) A constitutive model and data for metals subjected to
//       large strains, high strain rates and high temperatures. Proc 7th Int Symp on Ballistics
//   [2] Zhang X, Chen Z and Liu Y (2016) The Material Point Method: A Continuum-Based
//       Particle Method for Extreme Loading Cases. Academic Press
package strength

import (
	"bytes"
	"sort"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines strength models
//  Note: the stress rotation is applied by the material before UpdateDeviatoricStress
type Model interface {
	Init(prms dbf.Params, rho0 float64) error                                                            // initialises model
	GetPrms(example bool) dbf.Params                                                                     // gets (an example) of parameters
	AddExtra(lay *particle.Layout)                                                                       // registers extra particle properties
	UpdateDeviatoricStress(s *particle.State, Δε *[6]float64, stp *particle.Step, tr *particle.Transfer) // elastic trial + plasticity
	ElasticPressure(s *particle.State, Δvol float64)                                                     // updates mean stress if there is no EOS
	SoundSpeedSquareStrength(s *particle.State) float64                                                  // shear contribution to c²
	SoundSpeedSquareElastic(s *particle.State) float64                                                   // bulk contribution to c² if there is no EOS
	UpdateTemperature(s *particle.State, Δvol float64, tr *particle.Transfer)                            // updates temperature
	ModifyPressureByTemperature(s *particle.State)                                                       // adds thermal pressure to mean stress
	Write(buf *bytes.Buffer)                                                                             // writes parameters
}

// New strength model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in strength database", name)
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
