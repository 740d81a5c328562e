// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
)

// PlotOpts holds options for terminal plots
type PlotOpts struct {
	Width  int     // number of columns; 0 means the number of records
	Height int     // number of rows
	Scale  float64 // values are multiplied by Scale; 0 means 1
	Unit   string  // unit written in the caption
}

// Plot returns a terminal plot of key versus time
func (o *History) Plot(key string, opts *PlotOpts) string {
	return o.PlotMany([]string{key}, opts)
}

// PlotMany returns a terminal plot of all keys versus time
func (o *History) PlotMany(keys []string, opts *PlotOpts) string {
	if opts == nil {
		opts = &PlotOpts{Width: 80, Height: 15}
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	data := make([][]float64, len(keys))
	for i, key := range keys {
		v, ok := o.Vals[key]
		if !ok {
			chk.Panic("cannot plot %q because it is not in history", key)
		}
		if len(v) == 0 {
			chk.Panic("cannot plot %q because it has no values", key)
		}
		data[i] = make([]float64, len(v))
		for j, x := range v {
			data[i][j] = x * scale
		}
	}
	caption := io.Sf("%v", keys)
	if opts.Unit != "" {
		caption += " [" + opts.Unit + "]"
	}
	if o.Len() > 0 {
		caption += io.Sf("  t = %g to %g", o.T[0], o.T[o.Len()-1])
	}
	args := []asciigraph.Option{asciigraph.Caption(caption)}
	if opts.Width > 0 {
		args = append(args, asciigraph.Width(opts.Width))
	}
	if opts.Height > 0 {
		args = append(args, asciigraph.Height(opts.Height))
	}
	if len(data) > 1 {
		colors := []asciigraph.AnsiColor{asciigraph.Default, asciigraph.Red, asciigraph.Green, asciigraph.Blue, asciigraph.Yellow}
		sc := make([]asciigraph.AnsiColor, len(data))
		for i := range sc {
			sc[i] = colors[i%len(colors)]
		}
		args = append(args, asciigraph.SeriesColors(sc...))
	}
	return asciigraph.PlotMany(data, args...)
}
