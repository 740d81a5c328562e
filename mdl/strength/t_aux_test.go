// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strength

import (
	"testing"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// allocate allocates and initialises a model and a particle state with unit volume
func allocate(tst *testing.T, name string, rho0 float64, prms dbf.Params) (Model, *particle.State) {
	mdl, err := New(name)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	err = mdl.Init(prms, rho0)
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	lay := particle.NewLayout()
	mdl.AddExtra(lay)
	return mdl, particle.NewState(lay, rho0, 1.0)
}
