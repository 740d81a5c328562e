// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gompm/mdl/material"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// ModelData holds the name and parameters of one model
type ModelData struct {
	Type string     `json:"type"` // name of model; e.g. "ElaPlastic", "Gruneisen", "PlaStrain"
	Prms dbf.Params `json:"prms"` // parameters
}

// Material holds material data
type Material struct {

	// input
	Name     string       `json:"name"`     // name of material
	Desc     string       `json:"desc"`     // description
	Strength *ModelData   `json:"strength"` // strength model
	Eos      *ModelData   `json:"eos"`      // equation of state; may be omitted
	Failures []*ModelData `json:"failures"` // failure models
	Extra    dbf.Params   `json:"extra"`    // ReferenceDensity, bq1, bq2, FailedType and TensileCutoff

	// derived
	Mat *material.Material // initialised material
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a JSON (.mat or .json) or YAML (.yaml or .yml) file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	mdb = new(MatDb)
	err = decode(fn, b, mdb)
	if err != nil {
		return nil, err
	}

	// alloc/init
	names := make(map[string]bool)
	for i, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("material # %d in %q must have a name", i, fn)
		}
		if names[m.Name] {
			return nil, chk.Err("material named %q is repeated in %q", m.Name, fn)
		}
		names[m.Name] = true
		err = m.Init()
		if err != nil {
			return nil, chk.Err("cannot initialise material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Init allocates and initialises the material models
func (o *Material) Init() (err error) {
	if o.Strength == nil {
		return chk.Err("strength model is missing")
	}
	var eosName string
	var eosPrms dbf.Params
	if o.Eos != nil {
		eosName, eosPrms = o.Eos.Type, o.Eos.Prms
	}
	failNames := make([]string, len(o.Failures))
	failPrms := make([]dbf.Params, len(o.Failures))
	for i, f := range o.Failures {
		failNames[i], failPrms[i] = f.Type, f.Prms
	}
	o.Mat = &material.Material{Name: o.Name}
	return o.Mat.Init(o.Strength.Type, o.Strength.Prms, eosName, eosPrms, failNames, failPrms, o.Extra)
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Names returns the names of all materials
func (o MatDb) Names() (names []string) {
	for _, mat := range o.Materials {
		names = append(names, mat.Name)
	}
	return
}

// String returns a summary of one material
func (o *Material) String() string {
	var buf bytes.Buffer
	if o.Desc != "" {
		io.Ff(&buf, "# %s\n", o.Desc)
	}
	if o.Mat == nil {
		io.Ff(&buf, "Material: %s (not initialised)\n", o.Name)
		return buf.String()
	}
	o.Mat.Write(&buf)
	return buf.String()
}

// String returns a summary of all materials
func (o MatDb) String() string {
	var buf bytes.Buffer
	for i, m := range o.Materials {
		if i > 0 {
			io.Ff(&buf, "\n")
		}
		io.Ff(&buf, "%v", m)
	}
	return buf.String()
}
