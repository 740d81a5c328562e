// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

// Transfer carries values computed by the strength model to the EOS and failure models
// during one stress update. It is created for each update and never stored.
type Transfer struct {
	Yield  bool    // plastic flow occurred in this step
	Depeff float64 // increment of effective plastic strain
	Lsrate float64 // logarithm of the dimensionless plastic strain rate
	Tstar  float64 // homologous temperature (T - Troom) / (Tmelt - Troom)
}

// Reset clears all fields
func (o *Transfer) Reset() {
	*o = Transfer{}
}

// Step holds the time-step context of one update. All particles of a step share the same Step.
type Step struct {
	Dt   float64 // time step size
	Time float64 // current time
}
