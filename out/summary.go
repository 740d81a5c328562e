// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cpmech/gosl/io"
)

// styles of summary panels
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(8)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))
)

// Summary returns a panel with the last value and the range of each key. All keys are
// shown if none is given
func (o *History) Summary(title string, keys ...string) string {
	if len(keys) == 0 {
		keys = o.Keys
	}
	lines := []string{titleStyle.Render(title)}
	if o.Len() > 0 {
		lines = append(lines, rangeStyle.Render(io.Sf("t = %g to %g (%d records)", o.T[0], o.T[o.Len()-1], o.Len())))
	}
	for _, key := range keys {
		if o.Get(key) == nil || o.Len() == 0 {
			continue
		}
		lo, hi := o.Range(key)
		lines = append(lines, labelStyle.Render(key)+valueStyle.Render(io.Sf("%13.6g", o.Last(key)))+
			rangeStyle.Render(io.Sf("  [%13.6g, %13.6g]", lo, hi)))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}
