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
	"fmt"
	"strings"

	"github.com/jetsetilly/harness65/debugger/terminal"
	"github.com/jetsetilly/harness65/disassembly"
	"github.com/jetsetilly/harness65/hardware/ports"
)

// printCycle formats one bus transaction as a transcript line. For example:
//
//	rSMV a000 a9 LDA #$42
//	W-MV 0010 42
//
// The one-letter flags record the sampled control lines: read or Write; S
// when SYNC indicates an opcode fetch; M and V when the MLB and VPB lines are
// inactive, meaning the bus is not locked and the cycle is not a vector pull.
// The disassembly appears only on SYNC cycles, when the datum is known to be
// an opcode.
func (dbg *Debugger) printCycle(address uint16, data uint8, sample ports.Sample) {
	s := strings.Builder{}

	if sample.IsWrite() {
		s.WriteRune('W')
	} else {
		s.WriteRune('r')
	}

	if sample.IsSync() {
		s.WriteRune('S')
	} else {
		s.WriteRune('-')
	}

	if sample.IsLocked() {
		s.WriteRune('-')
	} else {
		s.WriteRune('M')
	}

	if sample.IsVectorPull() {
		s.WriteRune('-')
	} else {
		s.WriteRune('V')
	}

	s.WriteString(fmt.Sprintf(" %04x %02x", address, data))

	if sample.IsSync() {
		// Peek is used rather than Read because the operand fetches haven't
		// happened yet and must not be allowed to fault
		d, _ := disassembly.Disasm(dbg.harn.Mem.Peek, address)
		s.WriteRune(' ')
		s.WriteString(d)
	}

	dbg.term.TermPrintLine(terminal.StyleTranscript, s.String())
}
