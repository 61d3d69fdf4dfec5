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

package memorymap

// Area represents the different areas of the address space.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case ROM:
		return "ROM"
	case Unmapped:
		return "Unmapped"
	}

	return "undefined"
}

// The different areas decoded on the bus. Unmapped addresses have no storage
// behind them; whatever else is attached to the bus determines the value of
// the data lines during a read of those addresses.
const (
	Undefined Area = iota
	RAM
	ROM
	Unmapped
)

// The origin and memory top for the decoded areas. The RAM and ROM ranges
// never overlap; the gap between them is the unmapped area.
const (
	OriginRAM = uint16(0x0000)
	MemtopRAM = uint16(0x0fff)
	OriginROM = uint16(0xa000)
	MemtopROM = uint16(0xffff)
)

// MaskRAM keeps only the bits of an address that index the RAM array. An
// address masked with MaskRAM can never be out of bounds of the array.
const MaskRAM = uint16(0x0fff)

// WindowROM is the widest ROM image the decoded ROM area can accommodate. A
// concrete image may be smaller, in which case part of the ROM area is beyond
// the image; reading that part is a contract violation (see the memory
// package).
const WindowROM = int(MemtopROM) - int(OriginROM) + 1

// MapAddress classifies the address into one of the decoded areas and reduces
// it to an index suitable for the area's storage. For RAM the index is the
// masked address; for ROM it is the offset from OriginROM. Unmapped addresses
// are returned untouched.
func MapAddress(address uint16) (uint16, Area) {
	if address <= MemtopRAM {
		return address & MaskRAM, RAM
	}

	if address >= OriginROM {
		return address - OriginROM, ROM
	}

	return address, Unmapped
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
