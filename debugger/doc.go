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

// Package debugger is the interactive layer over the bus engine. It hooks
// into every bus cycle and decides, per cycle, whether to report and whether
// to wait.
//
// The debugger is in one of two states. Stepping, the initial state, halts
// the clock after every cycle and waits for a command; this is the system's
// one suspension point and it stalls the physical clock for as long as the
// user cares to think. Running lets the loop free-run, glancing at the
// control channel each cycle without ever blocking on it.
package debugger
