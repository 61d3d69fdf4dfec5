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

package disassembly

import "fmt"

// ByteReader is the byte-read capability required by Disasm(). It must be
// safe to call for any address; the memory package's Peek() function is the
// usual implementation.
type ByteReader func(address uint16) uint8

// Disasm renders the instruction at the address as text and returns the
// number of bytes the instruction occupies.
func Disasm(read ByteReader, address uint16) (string, int) {
	opcode := read(address)

	defn := definitions[opcode]
	if defn.Mnemonic == "" {
		return "???", 1
	}

	var lo, hi uint8
	operand := defn.Mode.operandBytes()
	if operand >= 1 {
		lo = read(address + 1)
	}
	if operand >= 2 {
		hi = read(address + 2)
	}

	var text string

	switch defn.Mode {
	case Implied:
		text = defn.Mnemonic
	case Accumulator:
		text = fmt.Sprintf("%s A", defn.Mnemonic)
	case Immediate:
		text = fmt.Sprintf("%s #$%02x", defn.Mnemonic, lo)
	case Relative:
		// branch target is relative to the first address after the
		// instruction
		target := address + 2 + uint16(int8(lo))
		text = fmt.Sprintf("%s $%04x", defn.Mnemonic, target)
	case Absolute:
		text = fmt.Sprintf("%s $%02x%02x", defn.Mnemonic, hi, lo)
	case ZeroPage:
		text = fmt.Sprintf("%s $%02x", defn.Mnemonic, lo)
	case Indirect:
		text = fmt.Sprintf("%s ($%02x%02x)", defn.Mnemonic, hi, lo)
	case IndexedIndirect:
		text = fmt.Sprintf("%s ($%02x,X)", defn.Mnemonic, lo)
	case IndirectIndexed:
		text = fmt.Sprintf("%s ($%02x),Y", defn.Mnemonic, lo)
	case AbsoluteIndexedX:
		text = fmt.Sprintf("%s $%02x%02x,X", defn.Mnemonic, hi, lo)
	case AbsoluteIndexedY:
		text = fmt.Sprintf("%s $%02x%02x,Y", defn.Mnemonic, hi, lo)
	case ZeroPageIndexedX:
		text = fmt.Sprintf("%s $%02x,X", defn.Mnemonic, lo)
	case ZeroPageIndexedY:
		text = fmt.Sprintf("%s $%02x,Y", defn.Mnemonic, lo)
	case ZeroPageIndirect:
		text = fmt.Sprintf("%s ($%02x)", defn.Mnemonic, lo)
	case AbsoluteIndexedIndirect:
		text = fmt.Sprintf("%s ($%02x%02x,X)", defn.Mnemonic, hi, lo)
	case ZeroPageRelative:
		target := address + 3 + uint16(int8(hi))
		text = fmt.Sprintf("%s $%02x,$%04x", defn.Mnemonic, lo, target)
	}

	return text, 1 + operand
}
