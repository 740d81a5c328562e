// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Table writes the history as a text table with one row per record
//  every -- writes every n-th record; the last record is always written
func (o *History) Table(buf *bytes.Buffer, every int) {
	if every < 1 {
		every = 1
	}
	io.Ff(buf, "%14s", "time")
	for _, key := range o.Keys {
		io.Ff(buf, "%14s", key)
	}
	io.Ff(buf, "\n")
	n := o.Len()
	for i := 0; i < n; i++ {
		if i%every != 0 && i != n-1 {
			continue
		}
		io.Ff(buf, "%14.6e", o.T[i])
		for _, key := range o.Keys {
			io.Ff(buf, "%14.6e", o.Vals[key][i])
		}
		io.Ff(buf, "\n")
	}
}
