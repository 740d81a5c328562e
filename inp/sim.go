// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from JSON or YAML files: material databases,
// strain paths and single-point simulations
package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gompm/mdl/material"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Simulation holds the data of a single material point simulation
type Simulation struct {

	// input
	Desc     string         `json:"desc"`     // description of simulation
	Matfile  string         `json:"matfile"`  // materials file path; relative to the directory of the simulation file
	Material string         `json:"material"` // name of material
	Pathfile string         `json:"pathfile"` // path file; used if Path is not given
	Path     *material.Path `json:"path"`     // strain path
	Exp      bool           `json:"exp"`      // update the volume with the exponential map
	DirOut   string         `json:"dirout"`   // directory for output; e.g. /tmp/gompm
	Every    int            `json:"every"`    // write every Every records to the output table; 0 means 1

	// derived
	Key    string           // simulation key; e.g. mysim01.sim => mysim01
	MatDb  *MatDb           // materials database
	MatDat *Material        // material of simulation
	Driver *material.Driver // driver ready to run
}

// ReadPath reads a strain path from a JSON or YAML file
func ReadPath(dir, fn string) (pth *material.Path, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	pth = new(material.Path)
	err = decode(fn, b, pth)
	if err != nil {
		return nil, err
	}
	err = pth.Check()
	if err != nil {
		return nil, chk.Err("path file %q is incorrect:\n%v", fn, err)
	}
	return
}

// ReadSim reads a simulation file and initialises the materials database and the driver
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	o = new(Simulation)
	err = decode(simfilepath, b, o)
	if err != nil {
		return nil, err
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if o.DirOut == "" {
		o.DirOut = "/tmp/gompm/" + o.Key
	}
	if o.Every < 1 {
		o.Every = 1
	}

	// materials
	if o.Matfile == "" {
		return nil, chk.Err("ReadSim: materials file must be given")
	}
	o.MatDb, err = ReadMat(dir, o.Matfile)
	if err != nil {
		return nil, err
	}
	o.MatDat = o.MatDb.Get(o.Material)
	if o.MatDat == nil {
		return nil, chk.Err("ReadSim: cannot find material named %q in %q", o.Material, o.Matfile)
	}

	// path
	if o.Path == nil {
		if o.Pathfile == "" {
			return nil, chk.Err("ReadSim: either path or pathfile must be given")
		}
		o.Path, err = ReadPath(dir, o.Pathfile)
		if err != nil {
			return nil, err
		}
	}
	err = o.Path.Check()
	if err != nil {
		return nil, err
	}

	// driver
	o.Driver = &material.Driver{Silent: true, Exp: o.Exp}
	err = o.Driver.Init(o.MatDat.Mat)
	return
}

// Run runs the simulation
func (o *Simulation) Run() error {
	return o.Driver.Run(o.Path)
}
