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

// AddressingMode describes how an instruction addresses its operand.
type AddressingMode int

// List of addressing modes. The last three are CMOS additions.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative
	Absolute
	ZeroPage
	Indirect                // (abs)
	IndexedIndirect         // (zp,X)
	IndirectIndexed         // (zp),Y
	AbsoluteIndexedX        // abs,X
	AbsoluteIndexedY        // abs,Y
	ZeroPageIndexedX        // zp,X
	ZeroPageIndexedY        // zp,Y
	ZeroPageIndirect        // (zp)
	AbsoluteIndexedIndirect // (abs,X)
	ZeroPageRelative        // zp,rel
)

// the number of operand bytes that follow the opcode.
func (m AddressingMode) operandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Immediate, Relative, ZeroPage, IndexedIndirect, IndirectIndexed,
		ZeroPageIndexedX, ZeroPageIndexedY, ZeroPageIndirect:
		return 1
	}
	return 2
}

// Definition describes one entry in the instruction set.
type Definition struct {
	Mnemonic string
	Mode     AddressingMode
}

// Bytes returns the total size of the instruction, opcode included.
func (defn Definition) Bytes() int {
	return 1 + defn.Mode.operandBytes()
}

// Lookup returns the definition for the opcode. The zero Definition (empty
// mnemonic) means the opcode is not in the table.
func Lookup(opcode uint8) Definition {
	return definitions[opcode]
}

// the instruction table. entries not listed are unused opcodes; on the CMOS
// parts they execute as NOPs of varying length but rendering them as "???"
// is more useful at the bench.
var definitions = [256]Definition{
	0x00: {"BRK", Implied},
	0x01: {"ORA", IndexedIndirect},
	0x04: {"TSB", ZeroPage},
	0x05: {"ORA", ZeroPage},
	0x06: {"ASL", ZeroPage},
	0x07: {"RMB0", ZeroPage},
	0x08: {"PHP", Implied},
	0x09: {"ORA", Immediate},
	0x0a: {"ASL", Accumulator},
	0x0c: {"TSB", Absolute},
	0x0d: {"ORA", Absolute},
	0x0e: {"ASL", Absolute},
	0x0f: {"BBR0", ZeroPageRelative},
	0x10: {"BPL", Relative},
	0x11: {"ORA", IndirectIndexed},
	0x12: {"ORA", ZeroPageIndirect},
	0x14: {"TRB", ZeroPage},
	0x15: {"ORA", ZeroPageIndexedX},
	0x16: {"ASL", ZeroPageIndexedX},
	0x17: {"RMB1", ZeroPage},
	0x18: {"CLC", Implied},
	0x19: {"ORA", AbsoluteIndexedY},
	0x1a: {"INC", Accumulator},
	0x1c: {"TRB", Absolute},
	0x1d: {"ORA", AbsoluteIndexedX},
	0x1e: {"ASL", AbsoluteIndexedX},
	0x1f: {"BBR1", ZeroPageRelative},
	0x20: {"JSR", Absolute},
	0x21: {"AND", IndexedIndirect},
	0x24: {"BIT", ZeroPage},
	0x25: {"AND", ZeroPage},
	0x26: {"ROL", ZeroPage},
	0x27: {"RMB2", ZeroPage},
	0x28: {"PLP", Implied},
	0x29: {"AND", Immediate},
	0x2a: {"ROL", Accumulator},
	0x2c: {"BIT", Absolute},
	0x2d: {"AND", Absolute},
	0x2e: {"ROL", Absolute},
	0x2f: {"BBR2", ZeroPageRelative},
	0x30: {"BMI", Relative},
	0x31: {"AND", IndirectIndexed},
	0x32: {"AND", ZeroPageIndirect},
	0x34: {"BIT", ZeroPageIndexedX},
	0x35: {"AND", ZeroPageIndexedX},
	0x36: {"ROL", ZeroPageIndexedX},
	0x37: {"RMB3", ZeroPage},
	0x38: {"SEC", Implied},
	0x39: {"AND", AbsoluteIndexedY},
	0x3a: {"DEC", Accumulator},
	0x3c: {"BIT", AbsoluteIndexedX},
	0x3d: {"AND", AbsoluteIndexedX},
	0x3e: {"ROL", AbsoluteIndexedX},
	0x3f: {"BBR3", ZeroPageRelative},
	0x40: {"RTI", Implied},
	0x41: {"EOR", IndexedIndirect},
	0x45: {"EOR", ZeroPage},
	0x46: {"LSR", ZeroPage},
	0x47: {"RMB4", ZeroPage},
	0x48: {"PHA", Implied},
	0x49: {"EOR", Immediate},
	0x4a: {"LSR", Accumulator},
	0x4c: {"JMP", Absolute},
	0x4d: {"EOR", Absolute},
	0x4e: {"LSR", Absolute},
	0x4f: {"BBR4", ZeroPageRelative},
	0x50: {"BVC", Relative},
	0x51: {"EOR", IndirectIndexed},
	0x52: {"EOR", ZeroPageIndirect},
	0x55: {"EOR", ZeroPageIndexedX},
	0x56: {"LSR", ZeroPageIndexedX},
	0x57: {"RMB5", ZeroPage},
	0x58: {"CLI", Implied},
	0x59: {"EOR", AbsoluteIndexedY},
	0x5a: {"PHY", Implied},
	0x5d: {"EOR", AbsoluteIndexedX},
	0x5e: {"LSR", AbsoluteIndexedX},
	0x5f: {"BBR5", ZeroPageRelative},
	0x60: {"RTS", Implied},
	0x61: {"ADC", IndexedIndirect},
	0x64: {"STZ", ZeroPage},
	0x65: {"ADC", ZeroPage},
	0x66: {"ROR", ZeroPage},
	0x67: {"RMB6", ZeroPage},
	0x68: {"PLA", Implied},
	0x69: {"ADC", Immediate},
	0x6a: {"ROR", Accumulator},
	0x6c: {"JMP", Indirect},
	0x6d: {"ADC", Absolute},
	0x6e: {"ROR", Absolute},
	0x6f: {"BBR6", ZeroPageRelative},
	0x70: {"BVS", Relative},
	0x71: {"ADC", IndirectIndexed},
	0x72: {"ADC", ZeroPageIndirect},
	0x74: {"STZ", ZeroPageIndexedX},
	0x75: {"ADC", ZeroPageIndexedX},
	0x76: {"ROR", ZeroPageIndexedX},
	0x77: {"RMB7", ZeroPage},
	0x78: {"SEI", Implied},
	0x79: {"ADC", AbsoluteIndexedY},
	0x7a: {"PLY", Implied},
	0x7c: {"JMP", AbsoluteIndexedIndirect},
	0x7d: {"ADC", AbsoluteIndexedX},
	0x7e: {"ROR", AbsoluteIndexedX},
	0x7f: {"BBR7", ZeroPageRelative},
	0x80: {"BRA", Relative},
	0x81: {"STA", IndexedIndirect},
	0x84: {"STY", ZeroPage},
	0x85: {"STA", ZeroPage},
	0x86: {"STX", ZeroPage},
	0x87: {"SMB0", ZeroPage},
	0x88: {"DEY", Implied},
	0x89: {"BIT", Immediate},
	0x8a: {"TXA", Implied},
	0x8c: {"STY", Absolute},
	0x8d: {"STA", Absolute},
	0x8e: {"STX", Absolute},
	0x8f: {"BBS0", ZeroPageRelative},
	0x90: {"BCC", Relative},
	0x91: {"STA", IndirectIndexed},
	0x92: {"STA", ZeroPageIndirect},
	0x94: {"STY", ZeroPageIndexedX},
	0x95: {"STA", ZeroPageIndexedX},
	0x96: {"STX", ZeroPageIndexedY},
	0x97: {"SMB1", ZeroPage},
	0x98: {"TYA", Implied},
	0x99: {"STA", AbsoluteIndexedY},
	0x9a: {"TXS", Implied},
	0x9c: {"STZ", Absolute},
	0x9d: {"STA", AbsoluteIndexedX},
	0x9e: {"STZ", AbsoluteIndexedX},
	0x9f: {"BBS1", ZeroPageRelative},
	0xa0: {"LDY", Immediate},
	0xa1: {"LDA", IndexedIndirect},
	0xa2: {"LDX", Immediate},
	0xa4: {"LDY", ZeroPage},
	0xa5: {"LDA", ZeroPage},
	0xa6: {"LDX", ZeroPage},
	0xa7: {"SMB2", ZeroPage},
	0xa8: {"TAY", Implied},
	0xa9: {"LDA", Immediate},
	0xaa: {"TAX", Implied},
	0xac: {"LDY", Absolute},
	0xad: {"LDA", Absolute},
	0xae: {"LDX", Absolute},
	0xaf: {"BBS2", ZeroPageRelative},
	0xb0: {"BCS", Relative},
	0xb1: {"LDA", IndirectIndexed},
	0xb2: {"LDA", ZeroPageIndirect},
	0xb4: {"LDY", ZeroPageIndexedX},
	0xb5: {"LDA", ZeroPageIndexedX},
	0xb6: {"LDX", ZeroPageIndexedY},
	0xb7: {"SMB3", ZeroPage},
	0xb8: {"CLV", Implied},
	0xb9: {"LDA", AbsoluteIndexedY},
	0xba: {"TSX", Implied},
	0xbc: {"LDY", AbsoluteIndexedX},
	0xbd: {"LDA", AbsoluteIndexedX},
	0xbe: {"LDX", AbsoluteIndexedY},
	0xbf: {"BBS3", ZeroPageRelative},
	0xc0: {"CPY", Immediate},
	0xc1: {"CMP", IndexedIndirect},
	0xc4: {"CPY", ZeroPage},
	0xc5: {"CMP", ZeroPage},
	0xc6: {"DEC", ZeroPage},
	0xc7: {"SMB4", ZeroPage},
	0xc8: {"INY", Implied},
	0xc9: {"CMP", Immediate},
	0xca: {"DEX", Implied},
	0xcb: {"WAI", Implied},
	0xcc: {"CPY", Absolute},
	0xcd: {"CMP", Absolute},
	0xce: {"DEC", Absolute},
	0xcf: {"BBS4", ZeroPageRelative},
	0xd0: {"BNE", Relative},
	0xd1: {"CMP", IndirectIndexed},
	0xd2: {"CMP", ZeroPageIndirect},
	0xd5: {"CMP", ZeroPageIndexedX},
	0xd6: {"DEC", ZeroPageIndexedX},
	0xd7: {"SMB5", ZeroPage},
	0xd8: {"CLD", Implied},
	0xd9: {"CMP", AbsoluteIndexedY},
	0xda: {"PHX", Implied},
	0xdb: {"STP", Implied},
	0xdd: {"CMP", AbsoluteIndexedX},
	0xde: {"DEC", AbsoluteIndexedX},
	0xdf: {"BBS5", ZeroPageRelative},
	0xe0: {"CPX", Immediate},
	0xe1: {"SBC", IndexedIndirect},
	0xe4: {"CPX", ZeroPage},
	0xe5: {"SBC", ZeroPage},
	0xe6: {"INC", ZeroPage},
	0xe7: {"SMB6", ZeroPage},
	0xe8: {"INX", Implied},
	0xe9: {"SBC", Immediate},
	0xea: {"NOP", Implied},
	0xec: {"CPX", Absolute},
	0xed: {"SBC", Absolute},
	0xee: {"INC", Absolute},
	0xef: {"BBS6", ZeroPageRelative},
	0xf0: {"BEQ", Relative},
	0xf1: {"SBC", IndirectIndexed},
	0xf2: {"SBC", ZeroPageIndirect},
	0xf5: {"SBC", ZeroPageIndexedX},
	0xf6: {"INC", ZeroPageIndexedX},
	0xf7: {"SMB7", ZeroPage},
	0xf8: {"SED", Implied},
	0xf9: {"SBC", AbsoluteIndexedY},
	0xfa: {"PLX", Implied},
	0xfd: {"SBC", AbsoluteIndexedX},
	0xfe: {"INC", AbsoluteIndexedX},
	0xff: {"BBS7", ZeroPageRelative},
}
