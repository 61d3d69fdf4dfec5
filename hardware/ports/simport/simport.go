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

// Package simport implements the ports.Port interface without any hardware
// attached. It stands in for the CPU side of the bus: on every rising edge of
// PHI2 it presents a new address and control-in state, taken from a queue of
// transactions or from a drive function.
//
// The data lines are modelled as a latch that retains the last value anybody
// drove onto them. A read of an unmapped address therefore sees the last
// driven value, which is the documented open-bus convention for this project.
package simport

import (
	"github.com/jetsetilly/harness65/hardware/ports"
)

// Transaction describes the CPU side of one bus cycle.
type Transaction struct {
	Address uint16

	// the control-in lines presented for the duration of the cycle
	Control uint8

	// the value the CPU drives onto the data lines. only used when the
	// Control field indicates a write cycle (RWB low)
	Data uint8
}

// DriveFunc supplies the transaction for a cycle when the queue is empty.
type DriveFunc func(cycle int) Transaction

// the transaction presented when the queue is empty and no drive function has
// been given. a read of an unmapped address with SYNC, MLB and VPB all at
// their inactive levels.
var idle = Transaction{
	Address: 0x4000,
	Control: ports.RWB | ports.MLB | ports.VPB,
}

// Simport implements the ports.Port interface.
type Simport struct {
	addr    uint16
	ctlIn   uint8
	ctlOut  uint8
	data    uint8
	dataDir ports.Direction

	queue []Transaction
	drive DriveFunc
	cycle int

	recording  bool
	controlLog []uint8
}

// NewSimport is the preferred method of initialisation for the Simport type.
// The drive argument may be nil, in which case cycles not covered by the
// queue are idle reads of an unmapped address.
func NewSimport(drive DriveFunc) *Simport {
	return &Simport{
		drive:   drive,
		dataDir: ports.Input,
	}
}

// Queue transactions to be presented on subsequent rising edges of PHI2.
func (sim *Simport) Queue(trs ...Transaction) {
	sim.queue = append(sim.queue, trs...)
}

// Record every value written to the control-out group. For tests that want
// to check edge ordering.
func (sim *Simport) Record(on bool) {
	sim.recording = on
	if !on {
		sim.controlLog = nil
	}
}

// ControlLog returns the recorded control-out writes.
func (sim *Simport) ControlLog() []uint8 {
	return sim.controlLog
}

// DriveData models another device on the bus driving the data lines.
func (sim *Simport) DriveData(value uint8) {
	sim.data = value
}

// DataLines returns the current value of the data lines.
func (sim *Simport) DataLines() uint8 {
	return sim.data
}

// DataDirection returns the direction the harness has configured for the
// data group.
func (sim *Simport) DataDirection() ports.Direction {
	return sim.dataDir
}

// Cycles returns the number of rising PHI2 edges seen so far.
func (sim *Simport) Cycles() int {
	return sim.cycle
}

// advance the CPU side of the bus. called on every rising edge of PHI2.
func (sim *Simport) risingEdge() {
	var tr Transaction

	if len(sim.queue) > 0 {
		tr = sim.queue[0]
		sim.queue = sim.queue[1:]
	} else if sim.drive != nil {
		tr = sim.drive(sim.cycle)
	} else {
		tr = idle
	}

	sim.addr = tr.Address
	sim.ctlIn = tr.Control
	if tr.Control&ports.RWB == 0 {
		// write cycle. the CPU drives the data lines
		sim.data = tr.Data
	}

	sim.cycle++
}

// ConfigureDirection implements the ports.Port interface.
func (sim *Simport) ConfigureDirection(group ports.LineGroup, dir ports.Direction) {
	if group == ports.Data {
		sim.dataDir = dir
	}
}

// Read implements the ports.Port interface.
func (sim *Simport) Read(group ports.LineGroup) uint8 {
	switch group {
	case ports.AddressLow:
		return uint8(sim.addr & 0x00ff)
	case ports.AddressHigh:
		return uint8(sim.addr >> 8)
	case ports.Data:
		return sim.data
	case ports.ControlIn:
		return sim.ctlIn
	case ports.ControlOut:
		return sim.ctlOut
	}

	return 0
}

// Write implements the ports.Port interface.
func (sim *Simport) Write(group ports.LineGroup, value uint8) {
	switch group {
	case ports.Data:
		sim.data = value

	case ports.ControlOut:
		if sim.ctlOut&ports.PHI2 == 0 && value&ports.PHI2 == ports.PHI2 {
			sim.risingEdge()
		}
		sim.ctlOut = value
		if sim.recording {
			sim.controlLog = append(sim.controlLog, value)
		}
	}
}
