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

package hardware

import (
	"github.com/jetsetilly/harness65/hardware/memory"
	"github.com/jetsetilly/harness65/hardware/ports"
	"github.com/jetsetilly/harness65/instrumentation"
	"github.com/jetsetilly/harness65/logger"
)

// Harness is the main container for the bus engine. It is constructed once
// at process start and lives for the lifetime of the process; there is no
// teardown.
type Harness struct {
	Ports ports.Port
	Mem   *memory.Memory
	Rst   *ResetSequencer
	Probe *instrumentation.Probe

	// the value most recently presented on the control-out group. PHI2 and
	// RESB are the only bits that ever change after construction
	ctlOut uint8
}

// NewHarness is the preferred method of initialisation for the Harness type.
// The ROM image must be supplied before the first cycle runs; it is immutable
// thereafter.
func NewHarness(port ports.Port, rom []uint8) *Harness {
	harn := &Harness{
		Ports: port,
		Mem:   memory.NewMemory(rom),
		Probe: instrumentation.NewProbe(),
	}
	harn.Rst = newResetSequencer(harn)

	port.ConfigureDirection(ports.AddressLow, ports.Input)
	port.ConfigureDirection(ports.AddressHigh, ports.Input)
	port.ConfigureDirection(ports.Data, ports.Input)
	port.ConfigureDirection(ports.ControlIn, ports.Input)
	port.ConfigureDirection(ports.ControlOut, ports.Output)

	// every control-out line except PHI2 to its benign level. RDY and BE high
	// so the CPU runs with the bus enabled; the interrupt and set-overflow
	// lines high, ie. not asserted. RESB high until the reset sequence says
	// otherwise
	harn.ctlOut = ports.RDY | ports.IRQB | ports.NMIB | ports.SOB | ports.BE | ports.RESB
	port.Write(ports.ControlOut, harn.ctlOut)

	logger.Logf("harness", "%d byte rom installed", harn.Mem.RomSize())

	return harn
}

// Reset runs the reset sequence to completion. Called once at startup and on
// demand by the debugger's reset command.
func (harn *Harness) Reset() {
	harn.Rst.Run()
}

// drive a full clock pulse with no bus transaction. used by the reset
// sequencer.
func (harn *Harness) clockPulse() {
	harn.ctlOut |= ports.PHI2
	harn.Ports.Write(ports.ControlOut, harn.ctlOut)
	harn.ctlOut &^= ports.PHI2
	harn.Ports.Write(ports.ControlOut, harn.ctlOut)
}
