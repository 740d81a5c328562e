// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of material point histories as text tables and
// terminal plots
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// History holds time series of scalar quantities recorded at the same times
type History struct {
	Keys []string             // keys in order of definition
	T    []float64            // times
	Vals map[string][]float64 // maps key to values; len(Vals[key]) == len(T)
}

// NewHistory allocates a new history with the given keys
func NewHistory(keys ...string) (o *History) {
	o = new(History)
	o.Keys = keys
	o.Vals = make(map[string][]float64)
	for _, key := range keys {
		if _, ok := o.Vals[key]; ok {
			chk.Panic("key %q is repeated", key)
		}
		o.Vals[key] = make([]float64, 0)
	}
	return
}

// Push appends the values at time t; vals must follow the order of Keys
func (o *History) Push(t float64, vals ...float64) {
	if len(vals) != len(o.Keys) {
		chk.Panic("number of values (%d) must be equal to number of keys (%d)", len(vals), len(o.Keys))
	}
	o.T = append(o.T, t)
	for i, key := range o.Keys {
		o.Vals[key] = append(o.Vals[key], vals[i])
	}
}

// Len returns the number of records
func (o *History) Len() int {
	return len(o.T)
}

// Get returns the values of key
//  Note: returns nil if key is not found
func (o *History) Get(key string) []float64 {
	return o.Vals[key]
}

// Last returns the last value of key
func (o *History) Last(key string) float64 {
	v := o.Vals[key]
	if len(v) == 0 {
		chk.Panic("there are no values for key %q", key)
	}
	return v[len(v)-1]
}

// Range returns the minimum and maximum values of key
func (o *History) Range(key string) (min, max float64) {
	v := o.Vals[key]
	if len(v) == 0 {
		return
	}
	min, max = v[0], v[0]
	for _, x := range v {
		min = utl.Min(min, x)
		max = utl.Max(max, x)
	}
	return
}
