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

import "github.com/jetsetilly/harness65/hardware/ports"

// The W65C02 requires RESB to be held low for at least two clock cycles and
// then takes seven cycles after the release of RESB before the first opcode
// fetch. Both phases are run with a margin over the datasheet minimums.
const (
	resetLowCycles  = 4
	resetHighCycles = 9
)

// ResetSequencer drives the documented reset pulse protocol. The sequence is
// synchronous and uninterruptible; it always runs to completion before
// control returns to the caller.
type ResetSequencer struct {
	harn *Harness
}

func newResetSequencer(harn *Harness) *ResetSequencer {
	return &ResetSequencer{harn: harn}
}

// Run the reset sequence: RESB low for the low-phase cycle count, then RESB
// high for the high-phase cycle count. The cycles are plain clock pulses; no
// bus transaction is serviced while the sequence runs.
//
// Note that RAM is deliberately untouched. Memory contents persist across
// resets, as they do on the real board.
func (seq *ResetSequencer) Run() {
	harn := seq.harn

	harn.ctlOut &^= ports.RESB
	harn.Ports.Write(ports.ControlOut, harn.ctlOut)
	for i := 0; i < resetLowCycles; i++ {
		harn.clockPulse()
	}

	harn.ctlOut |= ports.RESB
	harn.Ports.Write(ports.ControlOut, harn.ctlOut)
	for i := 0; i < resetHighCycles; i++ {
		harn.clockPulse()
	}
}
