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

// Package memory implements the storage behind the decoded areas of the
// address space. RAM is 4096 bytes and mutable. ROM is a fixed-size immutable
// image, attached before the first bus cycle runs. Unmapped addresses have no
// storage at all; the harness leaves the data lines to whatever else is on
// the bus.
package memory

import (
	"fmt"

	"github.com/jetsetilly/harness65/hardware/memory/memorymap"
)

// Memory is the storage for the decoded areas of the bus.
type Memory struct {
	ram []uint8
	rom []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The rom argument is copied; the image is immutable once attached.
func NewMemory(rom []uint8) *Memory {
	mem := &Memory{
		ram: make([]uint8, memorymap.MemtopRAM-memorymap.OriginRAM+1),
		rom: make([]uint8, len(rom)),
	}
	copy(mem.rom, rom)
	return mem
}

// RomSize returns the size of the attached ROM image. The image does not
// necessarily fill the whole of the decoded ROM area.
func (mem *Memory) RomSize() int {
	return len(mem.rom)
}

// Read returns the byte stored at the address. The address must decode to
// RAM or ROM; the caller decodes the address (with memorymap.MapAddress())
// before calling.
//
// A ROM address beyond the size of the attached image is a programming
// contract violation. The decode predicate alone does not guarantee the
// offset is inside the image so the offset is checked here and the function
// panics rather than read out of bounds.
func (mem *Memory) Read(address uint16) uint8 {
	idx, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.ram[idx]

	case memorymap.ROM:
		if int(idx) >= len(mem.rom) {
			panic(fmt.Sprintf("memory: rom read past end of image (address %04x, image size %04x)", address, len(mem.rom)))
		}
		return mem.rom[idx]
	}

	panic(fmt.Sprintf("memory: read of unmapped address %04x", address))
}

// Write stores the value at the address if the address decodes to RAM. A
// write anywhere else is discarded silently; no storage, no error.
func (mem *Memory) Write(address uint16, value uint8) {
	if idx, area := memorymap.MapAddress(address); area == memorymap.RAM {
		mem.ram[idx] = value
	}
}

// Peek is the forgiving form of Read() for use outside of the bus cycle, in
// particular as the byte-read capability given to the disassembler. It never
// panics: unmapped addresses, and ROM addresses past the end of the image,
// read as 0xff.
func (mem *Memory) Peek(address uint16) uint8 {
	idx, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.ram[idx]

	case memorymap.ROM:
		if int(idx) < len(mem.rom) {
			return mem.rom[idx]
		}
	}

	return 0xff
}
