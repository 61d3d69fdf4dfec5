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

// Package hardware is the cycle-synchronous engine of harness65. The Harness
// type drives the clock of the attached CPU and services every memory access
// the CPU issues, one bus transaction per cycle, forever.
//
// The harness does not execute instructions and has no idea what the CPU is
// doing beyond what the control lines say. It is the memory and clock for a
// real CPU on a bench, not an emulator.
package hardware
