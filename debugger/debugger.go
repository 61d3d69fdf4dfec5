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
	"github.com/jetsetilly/harness65/debugger/terminal"
	"github.com/jetsetilly/harness65/hardware"
	"github.com/jetsetilly/harness65/hardware/ports"
)

// the startup banner. the four commands are the entire user interface.
const banner = "harness65: s (step) c (continue) b (break) r (reset)"

// Debugger is the interactive state machine overlaying the bus engine.
type Debugger struct {
	harn *hardware.Harness
	term terminal.Terminal

	// when stepping is true the clock is halted after every cycle until a
	// command resolves. true at startup
	stepping bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The terminal must already have been Initialise()d.
func NewDebugger(harn *hardware.Harness, term terminal.Terminal) *Debugger {
	return &Debugger{
		harn:     harn,
		term:     term,
		stepping: true,
	}
}

// Start the debugging session: print the banner, put the CPU through the
// reset sequence and hand control to the bus loop. It does not return until
// the control channel goes away.
func (dbg *Debugger) Start() error {
	dbg.term.TermPrintLine(terminal.StyleFeedback, banner)
	dbg.harn.Reset()
	return dbg.harn.Run(dbg.cycleHook)
}

// cycleHook is called by the bus engine once per cycle, between the driving
// and the releasing of the data lines. The contract: the hook does its work,
// and may block, if and only if the session is stepping or a command byte is
// already pending; otherwise it returns immediately with no observable
// effect.
func (dbg *Debugger) cycleHook(address uint16, data uint8, sample ports.Sample) error {
	if !dbg.stepping && !dbg.term.ByteWaiting() {
		return nil
	}

	dbg.printCycle(address, data, sample)

	if report := dbg.harn.Probe.Report(); report != "" {
		dbg.term.TermPrintLine(terminal.StyleFeedback, report)
	}

	return dbg.command()
}

// command resolves at most one command before the next cycle resumes.
//
// In the stepping state the read blocks, one byte at a time, until a byte
// resolves: s steps one cycle; c changes to the running state; r runs the
// reset sequence. Anything else, including b, is consumed and ignored
// without unblocking.
//
// In the running state nothing ever blocks: if a byte is pending, b changes
// to the stepping state (taking effect at the next cycle boundary) and r
// runs the reset sequence; anything else is discarded.
func (dbg *Debugger) command() error {
	if !dbg.stepping {
		if !dbg.term.ByteWaiting() {
			return nil
		}

		b, err := dbg.term.ReadByte()
		if err != nil {
			return err
		}

		switch b {
		case 'b':
			dbg.stepping = true
		case 'r':
			dbg.harn.Reset()
		}

		return nil
	}

	for {
		b, err := dbg.term.ReadByte()
		if err != nil {
			return err
		}

		switch b {
		case 's':
			return nil
		case 'c':
			dbg.stepping = false
			return nil
		case 'r':
			// stepping state is unchanged by a reset
			dbg.harn.Reset()
			return nil
		}
	}
}
