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

package simport_test

import (
	"testing"

	"github.com/jetsetilly/harness65/hardware/ports"
	"github.com/jetsetilly/harness65/hardware/ports/simport"
	"github.com/jetsetilly/harness65/test"
)

func clockPulse(sim *simport.Simport, out uint8) {
	sim.Write(ports.ControlOut, out|ports.PHI2)
	sim.Write(ports.ControlOut, out&^ports.PHI2)
}

func TestQueue(t *testing.T) {
	sim := simport.NewSimport(nil)
	sim.Queue(
		simport.Transaction{Address: 0xa000, Control: ports.RWB | ports.SYNC | ports.MLB | ports.VPB},
		simport.Transaction{Address: 0x0010, Control: ports.MLB | ports.VPB, Data: 0x42},
	)

	out := ports.RDY | ports.IRQB | ports.NMIB | ports.SOB | ports.BE | ports.RESB

	clockPulse(sim, out)
	test.Equate(t, sim.Read(ports.AddressHigh), 0xa0)
	test.Equate(t, sim.Read(ports.AddressLow), 0x00)
	test.Equate(t, ports.Sample(sim.Read(ports.ControlIn)).IsSync(), true)

	// second transaction is a write cycle. the CPU drives the data lines
	clockPulse(sim, out)
	test.Equate(t, sim.Read(ports.AddressLow), 0x10)
	test.Equate(t, sim.Read(ports.Data), 0x42)
	test.Equate(t, ports.Sample(sim.Read(ports.ControlIn)).IsWrite(), true)

	// queue exhausted. idle transaction is an unmapped read
	clockPulse(sim, out)
	test.Equate(t, sim.Read(ports.AddressHigh), 0x40)
	test.Equate(t, sim.Cycles(), 3)
}

func TestOpenBusRetention(t *testing.T) {
	sim := simport.NewSimport(nil)

	// whatever was last driven onto the data lines stays there
	sim.DriveData(0x5a)
	test.Equate(t, sim.Read(ports.Data), 0x5a)

	// an idle (read) cycle does not disturb the latch
	clockPulse(sim, ports.RESB)
	test.Equate(t, sim.Read(ports.Data), 0x5a)
}

func TestRisingEdgeOnly(t *testing.T) {
	sim := simport.NewSimport(nil)

	// a write that leaves PHI2 high does not count another cycle
	sim.Write(ports.ControlOut, ports.PHI2)
	sim.Write(ports.ControlOut, ports.PHI2|ports.RESB)
	test.Equate(t, sim.Cycles(), 1)

	sim.Write(ports.ControlOut, ports.RESB)
	test.Equate(t, sim.Cycles(), 1)
}
