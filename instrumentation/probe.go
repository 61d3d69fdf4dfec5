// This file is part of Harness65.
//
// Harness65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Harness65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Harness65.  If not, see <https://www.gnu.org/licenses/>.

//go:build instrumentation
// +build instrumentation

package instrumentation

import (
	"fmt"
	"time"
)

// Probe accumulates the elapsed time between consecutive cycle starts.
type Probe struct {
	lastStart   int64
	accumulated int64
	cycles      int64
}

// NewProbe is the preferred method of initialisation for the Probe type.
func NewProbe() *Probe {
	return &Probe{}
}

// CycleStart marks the start of a bus cycle. The first call only arms the
// probe; measurement begins with the second call.
func (prb *Probe) CycleStart() {
	now := time.Now().UnixNano()
	if prb.lastStart != 0 {
		prb.accumulated += now - prb.lastStart
		prb.cycles++
	}
	prb.lastStart = now
}

// Report returns the average cycle duration so far, or the empty string if
// nothing has been measured yet.
func (prb *Probe) Report() string {
	if prb.cycles == 0 {
		return ""
	}
	return fmt.Sprintf("avg cycle %v (%d cycles)", time.Duration(prb.accumulated/prb.cycles), prb.cycles)
}
