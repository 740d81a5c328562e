// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// steel returns the parameters of an elastic steel
func steel() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Young", V: 200e9},
		&dbf.P{N: "Poisson", V: 0.3},
	}
}

// noViscosity returns extra parameters without artificial viscosity
func noViscosity(rho0 float64) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "ReferenceDensity", V: rho0},
		&dbf.P{N: "bq1", V: 0},
		&dbf.P{N: "bq2", V: 0},
	}
}

// newMaterial allocates and initialises a material
func newMaterial(tst *testing.T, strName string, strPrms dbf.Params, eosName string, eosPrms dbf.Params,
	failNames []string, failPrms []dbf.Params, extra dbf.Params) *Material {
	mat := &Material{Name: "test"}
	err := mat.Init(strName, strPrms, eosName, eosPrms, failNames, failPrms, extra)
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return mat
}
