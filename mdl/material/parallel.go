// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"runtime"
	"sync"

	"github.com/cpmech/gompm/mdl/particle"
	"github.com/cpmech/gosl/chk"
)

// UpdateAll updates the stress of all particles of one material concurrently. Eroded
// particles are skipped
//  Input:
//   des      -- strain increments of each particle
//   dws      -- spin increments of each particle
//   volsOld  -- volumes before the volume update of this step
//   stp      -- time step context; must not be changed while UpdateAll runs
//   nworkers -- number of goroutines; ≤ 0 means runtime.NumCPU()
func UpdateAll(mat *Material, states []*particle.State, des [][6]float64, dws [][3]float64, volsOld []float64, stp *particle.Step, nworkers int) (err error) {
	n := len(states)
	if len(des) != n || len(dws) != n || len(volsOld) != n {
		return chk.Err("UpdateAll: sizes of increments (%d, %d, %d) must be equal to the number of particles (%d)\n", len(des), len(dws), len(volsOld), n)
	}
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}
	if nworkers > n {
		nworkers = n
	}
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < n; i += nworkers {
				if states[i].Eroded {
					continue
				}
				mat.UpdateStress(states[i], &des[i], &dws[i], volsOld[i], stp)
			}
		}(w)
	}
	wg.Wait()
	return
}
