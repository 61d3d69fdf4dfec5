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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/harness65/hardware"
	"github.com/jetsetilly/harness65/hardware/ports"
	"github.com/jetsetilly/harness65/hardware/ports/simport"
	"github.com/jetsetilly/harness65/test"
)

func TestResetSequence(t *testing.T) {
	sim := simport.NewSimport(nil)
	harn := hardware.NewHarness(sim, nil)

	sim.Record(true)
	harn.Reset()

	log := sim.ControlLog()

	// one write asserting RESB low, four full clock pulses, one write
	// releasing RESB, nine full clock pulses. exactly that; no more, no fewer
	test.Equate(t, len(log), 1+8+1+18)

	// low phase. RESB low throughout, PHI2 alternating
	test.Equate(t, log[0]&ports.RESB, 0)
	test.Equate(t, log[0]&ports.PHI2, 0)
	for i := 1; i <= 8; i++ {
		if log[i]&ports.RESB != 0 {
			t.Fatalf("RESB released early (write %d)", i)
		}
		expected := uint8(0)
		if i%2 == 1 {
			expected = ports.PHI2
		}
		if log[i]&ports.PHI2 != expected {
			t.Fatalf("PHI2 out of order in low phase (write %d)", i)
		}
	}

	// high phase
	test.Equate(t, log[9]&ports.RESB, ports.RESB)
	test.Equate(t, log[9]&ports.PHI2, 0)
	for i := 10; i <= 27; i++ {
		if log[i]&ports.RESB == 0 {
			t.Fatalf("RESB reasserted during high phase (write %d)", i)
		}
		expected := uint8(0)
		if i%2 == 0 {
			expected = ports.PHI2
		}
		if log[i]&ports.PHI2 != expected {
			t.Fatalf("PHI2 out of order in high phase (write %d)", i)
		}
	}

	// the clock is left low with RESB released
	test.Equate(t, log[len(log)-1]&(ports.RESB|ports.PHI2), ports.RESB)
}

func TestRAMPersistsAcrossReset(t *testing.T) {
	sim := simport.NewSimport(nil)
	harn := hardware.NewHarness(sim, nil)

	harn.Mem.Write(0x0010, 0x42)
	harn.Reset()
	test.Equate(t, harn.Mem.Read(0x0010), 0x42)
}

func TestResetBenignLines(t *testing.T) {
	sim := simport.NewSimport(nil)
	harn := hardware.NewHarness(sim, nil)

	sim.Record(true)
	harn.Reset()

	// RDY, IRQB, NMIB, SOB and BE stay at their benign levels throughout
	const benign = ports.RDY | ports.IRQB | ports.NMIB | ports.SOB | ports.BE
	for i, v := range sim.ControlLog() {
		if v&benign != benign {
			t.Fatalf("benign control-out line disturbed during reset (write %d)", i)
		}
	}
}
