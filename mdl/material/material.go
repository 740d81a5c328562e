// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package material combines strength, equation of state and failure models and
// implements the explicit stress update of material points
package material

import (
	"bytes"
	"math"

	"github.com/cpmech/gompm/mdl/eos"
	"github.com/cpmech/gompm/mdl/failure"
	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gompm/mdl/strength"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// failure response types
const (
	NoTension              = 0 // tensile mean stress is released and the volume is restored
	NoTensionNoCompression = 1 // mean stress is always released and the volume is restored
	TensileCutoff          = 2 // mean stress above -TensileCutoff is released
)

// Material holds the models of one material. It is shared by all particles of this
// material and is not modified after Init
type Material struct {

	// models
	Strength strength.Model  // strength model
	Eos      eos.Model       // equation of state; may be nil
	Failures []failure.Model // failure models; checked in order

	// names
	Name         string   // name of material
	StrengthName string   // name of strength model
	EosName      string   // name of equation of state; "" if none
	FailureNames []string // names of failure models

	// extra parameters
	Rho0          float64 // reference density
	Bq1           float64 // quadratic artificial viscosity coefficient
	Bq2           float64 // linear artificial viscosity coefficient
	FailedType    int     // failure response type
	TensileCutoff float64 // tensile cutoff for TensileCutoff response

	// derived
	Lay    *particle.Layout // extra properties required by all models
	strain bool             // accumulate total strain
}

// noModel tells whether name means "no model"
func noModel(name string) bool {
	return name == "" || name == "none" || name == "None"
}

// Init initialises material
//  Input:
//   strName   -- name of strength model
//   strPrms   -- parameters of strength model
//   eosName   -- name of equation of state; "", "none" or "None" means no EOS
//   eosPrms   -- parameters of equation of state
//   failNames -- names of failure models
//   failPrms  -- parameters of failure models; len(failPrms) == len(failNames)
//   extra     -- ReferenceDensity, bq1, bq2, FailedType and TensileCutoff
func (o *Material) Init(strName string, strPrms dbf.Params, eosName string, eosPrms dbf.Params,
	failNames []string, failPrms []dbf.Params, extra dbf.Params) (err error) {

	// extra parameters
	o.Bq1, o.Bq2 = 1.5, 0.06
	for _, p := range extra {
		switch p.N {
		case "ReferenceDensity":
			o.Rho0 = p.V
		case "bq1":
			o.Bq1 = p.V
		case "bq2":
			o.Bq2 = p.V
		case "FailedType":
			o.FailedType = int(p.V)
		case "TensileCutoff":
			o.TensileCutoff = p.V
		default:
			return chk.Err("material: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Rho0 <= 0 {
		return chk.Err("material: ReferenceDensity must be positive. %g is incorrect\n", o.Rho0)
	}
	if o.FailedType < NoTension || o.FailedType > TensileCutoff {
		return chk.Err("material: FailedType must be 0, 1 or 2. %d is incorrect\n", o.FailedType)
	}
	if len(failPrms) != len(failNames) {
		return chk.Err("material: number of failure parameter sets (%d) must be equal to number of failure models (%d)\n", len(failPrms), len(failNames))
	}

	// strength
	o.StrengthName = strName
	o.Strength, err = strength.New(strName)
	if err != nil {
		return
	}
	err = o.Strength.Init(strPrms, o.Rho0)
	if err != nil {
		return
	}

	// equation of state
	o.Eos, o.EosName = nil, ""
	if !noModel(eosName) {
		o.EosName = eosName
		o.Eos, err = eos.New(eosName)
		if err != nil {
			return
		}
		err = o.Eos.Init(eosPrms, o.Rho0)
		if err != nil {
			return
		}
	}

	// failure
	o.Failures, o.FailureNames = nil, nil
	for i, name := range failNames {
		if noModel(name) {
			continue
		}
		if name == "JohnsonCookDamage" && strName != "JohnsonCook" && strName != "SimJohnsonCook" {
			return chk.Err("material: JohnsonCookDamage needs the strain rate and temperature of a JohnsonCook or SimJohnsonCook strength model. %q is incorrect\n", strName)
		}
		var f failure.Model
		f, err = failure.New(name)
		if err != nil {
			return
		}
		err = f.Init(failPrms[i])
		if err != nil {
			return
		}
		o.Failures = append(o.Failures, f)
		o.FailureNames = append(o.FailureNames, name)
	}

	// extra properties
	o.Lay = particle.NewLayout()
	o.Strength.AddExtra(o.Lay)
	if o.Eos != nil {
		o.Eos.AddExtra(o.Lay)
	}
	for _, f := range o.Failures {
		f.AddExtra(o.Lay)
	}
	o.strain = o.Lay.Has(particle.Exx)
	return
}

// NewState allocates the state of a new particle with the extra properties of this material
//  Note: with an EOS, the internal energy is set to E0 V
func (o *Material) NewState(mass, volume float64) (s *particle.State) {
	s = particle.NewState(o.Lay, mass, volume)
	if o.Eos != nil {
		s.Ie = o.Eos.InitialEnergy() * volume
	}
	return
}

// UpdateStress updates the stress of one particle
//  Input:
//   Δε     -- strain increment (engineering shear)
//   ω      -- spin increment (Ωyz, Ωxz, Ωxy)
//   volOld -- volume before the volume update of this step; s.Volume is the new volume
//   stp    -- time step context
func (o *Material) UpdateStress(s *particle.State, Δε *[6]float64, ω *[3]float64, volOld float64, stp *particle.Step) {

	// old state
	devOld := s.Dev
	meanOld := s.Mean
	Δvol := Δε[0] + Δε[1] + Δε[2]
	Δvh := 0.5 * (s.Volume - volOld)
	V2 := s.Volume + volOld
	if o.strain {
		s.AccumulateStrain(Δε)
	}

	// deviatoric stress
	var tr particle.Transfer
	s.RotateJaumann(ω)
	o.Strength.UpdateDeviatoricStress(s, Δε, stp, &tr)
	o.SoundSpeed(s, stp)
	o.ArtificialViscosity(s, Δvol, stp.Dt)

	// pressure and internal energy
	var Δie float64
	if o.Eos != nil {
		if s.Failed {
			Δie = Δvh * (meanOld - 2.0*s.Q)
			o.Eos.UpdatePressure(s, Δvh, Δie, stp)
			o.Strength.ModifyPressureByTemperature(s)
		} else {
			Δie = 0.25*devWork(Δε, &devOld, &s.Dev)*V2 + Δvh*(meanOld-2.0*s.Q)
			o.Eos.UpdatePressure(s, Δvh, Δie, stp)
			o.Strength.ModifyPressureByTemperature(s)
			Δie += Δvh * s.Mean
		}
	} else {
		o.Strength.ElasticPressure(s, Δvol)
		mpart := meanOld + s.Mean - 2.0*s.Q
		Δie = 0.25 * (devWork(Δε, &devOld, &s.Dev) + mpart*Δvol) * V2
	}

	// failure
	for _, f := range o.Failures {
		f.CheckFailure(s, &tr)
	}
	if s.Failed {
		o.ResponseFailure(s, volOld)
		Δie = Δvh * (meanOld + s.Mean - 2.0*s.Q)
	}

	// energy and temperature
	s.Ie += Δie
	o.Strength.UpdateTemperature(s, Δvol, &tr)
}

// devWork returns Δε : (sOld + sNew) with engineering shear strains
func devWork(Δε, sOld, sNew *[6]float64) (w float64) {
	for i := 0; i < 6; i++ {
		w += Δε[i] * (sOld[i] + sNew[i])
	}
	return
}

// SoundSpeed computes and stores the sound speed
func (o *Material) SoundSpeed(s *particle.State, stp *particle.Step) {
	c2 := o.Strength.SoundSpeedSquareStrength(s)
	if o.Eos != nil {
		c2 += o.Eos.SoundSpeedSquare(s, stp)
	} else {
		c2 += o.Strength.SoundSpeedSquareElastic(s)
	}
	if c2 <= -particle.EPS {
		particle.Warn("material %q: the square of the sound speed is negative (%g). strength=%s eos=%s\n", o.Name, c2, o.StrengthName, o.EosName)
		s.C = particle.EPS
		return
	}
	s.C = math.Sqrt(math.Max(c2, 0))
}

// ArtificialViscosity computes the bulk viscosity of particles under compression and
// increases the stored sound speed accordingly
//  Input:
//   Δvol -- volumetric strain increment
//   dt   -- time step size
func (o *Material) ArtificialViscosity(s *particle.State, Δvol, dt float64) {
	s.Q = 0
	if s.Mean >= -particle.EPS || dt <= 0 {
		return
	}
	rate := Δvol / dt
	if rate >= -particle.EPS {
		return
	}
	L := math.Cbrt(s.Volume)
	c := s.C
	s.Q = s.Density * L * rate * (o.Bq1*L*rate - o.Bq2*c)
	cq := o.Bq2*c - o.Bq1*L*rate
	s.C = cq + math.Sqrt(cq*cq+c*c)
}

// ResponseFailure applies the failure response to a failed particle. The deviatoric stress
// is always released
func (o *Material) ResponseFailure(s *particle.State, volOld float64) {
	s.ZeroDev()
	switch o.FailedType {
	case NoTension:
		if s.Mean > -particle.EPS {
			o.release(s, volOld)
		}
	case NoTensionNoCompression:
		o.release(s, volOld)
	case TensileCutoff:
		if s.Mean > -o.TensileCutoff {
			s.Mean = 0
			s.Q = 0
		}
	}
}

// release sets the mean stress and the bulk viscosity to zero and restores the volume
func (o *Material) release(s *particle.State, volOld float64) {
	s.Mean = 0
	s.Q = 0
	s.SetVolume(volOld)
}

// Write writes the parameters of all models
func (o *Material) Write(buf *bytes.Buffer) {
	io.Ff(buf, "Material: %s\n", o.Name)
	io.Ff(buf, "%-13s %-13s %-13s %-13s %-13s\n", "Density", "bq1", "bq2", "FailedType", "TensileCutoff")
	io.Ff(buf, "%-13g %-13g %-13g %-13d %-13g\n\n", o.Rho0, o.Bq1, o.Bq2, o.FailedType, o.TensileCutoff)
	o.Strength.Write(buf)
	if o.Eos != nil {
		o.Eos.Write(buf)
	}
	for _, f := range o.Failures {
		f.Write(buf)
	}
	o.Lay.Write(buf)
}
