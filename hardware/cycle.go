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
	"runtime"

	"github.com/jetsetilly/harness65/hardware/memory/memorymap"
	"github.com/jetsetilly/harness65/hardware/ports"
)

// CycleHook is called once per bus cycle with the sampled address, the datum
// transferred and a snapshot of the control-in lines. The hook is called
// while the data lines are still driven and may block for an unbounded time;
// the CPU's state holds while the clock is stopped.
type CycleHook func(address uint16, data uint8, sample ports.Sample) error

// Cycle performs exactly one bus transaction. The order of operations within
// the transaction is fixed:
//
//	clock high; sample control-in; sample address; data transfer; hook;
//	release data lines; clock low
//
// For a read of a decoded address the harness drives the stored byte onto the
// data lines. For a read of an unmapped address it samples whatever is
// externally present and treats that as the datum. For a write it samples the
// data lines and forwards the value to memory (which discards it unless the
// address decodes to RAM).
func (harn *Harness) Cycle(hook CycleHook) error {
	p := harn.Ports

	harn.ctlOut |= ports.PHI2
	p.Write(ports.ControlOut, harn.ctlOut)

	sample := ports.Sample(p.Read(ports.ControlIn))
	address := uint16(p.Read(ports.AddressHigh))<<8 | uint16(p.Read(ports.AddressLow))

	var data uint8

	if sample.IsWrite() {
		data = p.Read(ports.Data)
		harn.Mem.Write(address, data)
	} else {
		if memorymap.IsArea(address, memorymap.Unmapped) {
			data = p.Read(ports.Data)
		} else {
			data = harn.Mem.Read(address)
			p.ConfigureDirection(ports.Data, ports.Output)
			p.Write(ports.Data, data)
		}
	}

	if hook != nil {
		if err := hook(address, data, sample); err != nil {
			return err
		}
	}

	p.ConfigureDirection(ports.Data, ports.Input)

	harn.ctlOut &^= ports.PHI2
	p.Write(ports.ControlOut, harn.ctlOut)

	return nil
}

// Run repeats Cycle() forever; it is the only scheduling loop in the system.
// No cycle is ever elided, even while the hook blocks.
//
// The original controller disabled interrupts for the duration of every
// timing-critical cycle. The nearest equivalent here is to pin the loop to
// one OS thread; the debug-input mechanism runs on its own goroutine and
// meets the loop only at the hook's declared blocking point.
func (harn *Harness) Run(hook CycleHook) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		harn.Probe.CycleStart()
		if err := harn.Cycle(hook); err != nil {
			return err
		}
	}
}
