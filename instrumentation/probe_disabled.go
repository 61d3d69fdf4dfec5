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

//go:build !instrumentation
// +build !instrumentation

package instrumentation

// Probe is the no-op form of the probe. It takes no measurements and costs
// the bus loop nothing.
type Probe struct{}

// NewProbe is the preferred method of initialisation for the Probe type.
func NewProbe() *Probe {
	return &Probe{}
}

// CycleStart does nothing in this form of the package.
func (prb *Probe) CycleStart() {
}

// Report always returns the empty string in this form of the package.
func (prb *Probe) Report() string {
	return ""
}
