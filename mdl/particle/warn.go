// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"sync"

	"github.com/cpmech/gosl/io"
)

var (
	warnMutex sync.Mutex
	warnCount int
	warnQuiet bool
)

// Warn reports a recoverable numerical problem. It may be called from many goroutines.
func Warn(msg string, prm ...interface{}) {
	warnMutex.Lock()
	defer warnMutex.Unlock()
	warnCount++
	if !warnQuiet {
		io.Pfyel("WARNING: "+msg, prm...)
	}
}

// Warnings returns the number of warnings issued so far
func Warnings() int {
	warnMutex.Lock()
	defer warnMutex.Unlock()
	return warnCount
}

// QuietWarnings switches printing of warnings off (or on)
func QuietWarnings(quiet bool) {
	warnMutex.Lock()
	warnQuiet = quiet
	warnMutex.Unlock()
}
