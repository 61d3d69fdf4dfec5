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

package debugger

import (
	"io"
	"testing"

	"github.com/jetsetilly/harness65/curated"
	"github.com/jetsetilly/harness65/debugger/terminal"
	"github.com/jetsetilly/harness65/hardware"
	"github.com/jetsetilly/harness65/hardware/ports"
	"github.com/jetsetilly/harness65/hardware/ports/simport"
	"github.com/jetsetilly/harness65/test"
)

// mockTerm scripts the debugger's input and captures its output. when
// hangupWhenDone is true the exhausted script reports a waiting byte, so the
// next hook entry reads the hangup error and Run() returns; without it a
// running session would loop forever.
type mockTerm struct {
	input          []uint8
	hangupWhenDone bool

	transcript []string
	feedback   []string
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) ReadByte() (byte, error) {
	if len(trm.input) == 0 {
		return 0, curated.Errorf(terminal.ChannelHangup, io.EOF)
	}
	b := trm.input[0]
	trm.input = trm.input[1:]
	return b, nil
}

func (trm *mockTerm) ByteWaiting() bool {
	return len(trm.input) > 0 || trm.hangupWhenDone
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleTranscript:
		trm.transcript = append(trm.transcript, s)
	default:
		trm.feedback = append(trm.feedback, s)
	}
}

func newTestSession(trm *mockTerm, rom []uint8) (*simport.Simport, *hardware.Harness, *Debugger) {
	sim := simport.NewSimport(nil)
	harn := hardware.NewHarness(sim, rom)
	return sim, harn, NewDebugger(harn, trm)
}

func TestStepStepContinue(t *testing.T) {
	trm := &mockTerm{input: []uint8{'s', 's', 'c'}, hangupWhenDone: true}
	sim, _, dbg := newTestSession(trm, []uint8{0xea})

	err := dbg.Start()
	test.ExpectedFailure(t, err)
	if !curated.Has(err, terminal.ChannelHangup) {
		t.Fatalf("session should have ended with a hangup error, not: %v", err)
	}

	// two steps, then the cycle that carried the continue command, then one
	// free-running cycle before the hangup
	test.Equate(t, len(trm.transcript), 4)
	test.Equate(t, dbg.stepping, false)

	// idle simulated cycles read an unmapped address
	test.Equate(t, trm.transcript[0], "r-MV 4000 00")

	// reset pulses plus four serviced bus cycles
	test.Equate(t, sim.Cycles(), 17)
}

func TestRunningStateNeverBlocks(t *testing.T) {
	trm := &mockTerm{}
	_, harn, dbg := newTestSession(trm, []uint8{0xea})
	dbg.stepping = false

	// with no byte pending the hook must return without any observable effect
	for i := 0; i < 10; i++ {
		test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))
	}
	test.Equate(t, len(trm.transcript), 0)
}

func TestBreakWhileRunning(t *testing.T) {
	trm := &mockTerm{input: []uint8{'b', 's'}}
	_, harn, dbg := newTestSession(trm, []uint8{0xea})
	dbg.stepping = false

	// the break command is noticed mid-cycle but only takes effect at the
	// next cycle boundary; the current cycle still completes
	test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))
	test.Equate(t, dbg.stepping, true)
	test.Equate(t, len(trm.transcript), 1)

	// now stepping. the next cycle blocks until the step command resolves
	test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))
	test.Equate(t, len(trm.transcript), 2)
}

func TestBreakIgnoredWhenStepping(t *testing.T) {
	trm := &mockTerm{input: []uint8{'b', 'x', 's'}}
	_, harn, dbg := newTestSession(trm, []uint8{0xea})

	// b is a running-state command and unrecognised bytes never unblock the
	// stepping read; only the trailing s lets the cycle finish
	test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))
	test.Equate(t, len(trm.input), 0)
	test.Equate(t, len(trm.transcript), 1)
	test.Equate(t, dbg.stepping, true)
}

func TestResetCommandWhileStepping(t *testing.T) {
	trm := &mockTerm{input: []uint8{'r'}}
	sim, harn, dbg := newTestSession(trm, []uint8{0xea})

	sim.Record(true)
	test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))

	// reset runs to completion inside the cycle: the cycle's own clock-high
	// and clock-low writes bracket the full 28-write reset sequence
	log := sim.ControlLog()
	test.Equate(t, len(log), 30)
	if log[1]&ports.RESB != 0 {
		t.Errorf("reset sequence should begin by taking RESB low")
	}
	if log[len(log)-1]&ports.RESB == 0 {
		t.Errorf("RESB should be high again once the sequence has finished")
	}

	// a reset does not change the session state
	test.Equate(t, dbg.stepping, true)
}

func TestResetCommandWhileRunning(t *testing.T) {
	trm := &mockTerm{input: []uint8{'r'}}
	sim, harn, dbg := newTestSession(trm, []uint8{0xea})
	dbg.stepping = false

	sim.Record(true)
	test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))

	test.Equate(t, len(sim.ControlLog()), 30)
	test.Equate(t, dbg.stepping, false)
	test.Equate(t, len(trm.transcript), 1)
}

func TestTranscriptWrite(t *testing.T) {
	trm := &mockTerm{input: []uint8{'s'}}
	sim, harn, dbg := newTestSession(trm, []uint8{0xea})

	sim.Queue(simport.Transaction{
		Address: 0x0010,
		Control: ports.MLB | ports.VPB,
		Data:    0x42,
	})

	test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))
	test.Equate(t, trm.transcript[0], "W-MV 0010 42")
	test.Equate(t, harn.Mem.Peek(0x0010), 0x42)
}

func TestTranscriptSyncDisassembles(t *testing.T) {
	trm := &mockTerm{input: []uint8{'s'}}
	sim, harn, dbg := newTestSession(trm, []uint8{0xa9, 0x42})

	sim.Queue(simport.Transaction{
		Address: 0xa000,
		Control: ports.RWB | ports.SYNC | ports.MLB | ports.VPB,
	})

	test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))
	test.Equate(t, trm.transcript[0], "rSMV a000 a9 LDA #$42")
}

func TestTranscriptVectorPull(t *testing.T) {
	trm := &mockTerm{input: []uint8{'s'}}
	sim, harn, dbg := newTestSession(trm, []uint8{0xea})

	// VPB at its active (low) level. the address is unmapped so the datum is
	// whatever was last driven onto the bus
	sim.DriveData(0xfc)
	sim.Queue(simport.Transaction{
		Address: 0x4000,
		Control: ports.RWB | ports.MLB,
	})

	test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))
	test.Equate(t, trm.transcript[0], "r-M- 4000 fc")
}

func TestTranscriptBusLocked(t *testing.T) {
	trm := &mockTerm{input: []uint8{'s'}}
	sim, harn, dbg := newTestSession(trm, []uint8{0xea})

	sim.Queue(simport.Transaction{
		Address: 0x0000,
		Control: ports.RWB | ports.VPB,
	})

	test.ExpectedSuccess(t, harn.Cycle(dbg.cycleHook))
	test.Equate(t, trm.transcript[0], "r--V 0000 00")
}
