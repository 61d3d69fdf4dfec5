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

// Package disassembly renders a single 65xx instruction as text, given a
// byte-read capability and an address. The debugger uses it on every opcode
// fetch cycle; the disasm command line mode uses it to walk a ROM image.
//
// The instruction table covers the documented NMOS 6502 set plus the CMOS
// (65C02) extensions, including the Rockwell bit instructions. Opcodes not
// in the table render as "???" and consume one byte.
package disassembly
