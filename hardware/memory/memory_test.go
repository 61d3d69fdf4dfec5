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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/harness65/hardware/memory"
	"github.com/jetsetilly/harness65/test"
)

func TestRAM(t *testing.T) {
	mem := memory.NewMemory(nil)

	// RAM starts zeroed
	test.Equate(t, mem.Read(0x0010), 0x00)

	mem.Write(0x0010, 0x42)
	test.Equate(t, mem.Read(0x0010), 0x42)

	// neighbouring address is unaffected
	test.Equate(t, mem.Read(0x0011), 0x00)

	// most recent write wins, regardless of intervening operations on other
	// addresses
	mem.Write(0x0fff, 0x99)
	mem.Write(0x0010, 0x43)
	mem.Write(0x0000, 0x01)
	test.Equate(t, mem.Read(0x0010), 0x43)
	test.Equate(t, mem.Read(0x0fff), 0x99)
	test.Equate(t, mem.Read(0x0000), 0x01)
}

func TestROM(t *testing.T) {
	mem := memory.NewMemory([]uint8{0xea, 0xa9, 0xff})

	test.Equate(t, mem.Read(0xa000), 0xea)
	test.Equate(t, mem.Read(0xa001), 0xa9)

	// writes to the ROM area are discarded
	mem.Write(0xa000, 0xff)
	test.Equate(t, mem.Read(0xa000), 0xea)
}

func TestUnmappedWrite(t *testing.T) {
	mem := memory.NewMemory([]uint8{0xea})

	// writes to the unmapped area are discarded. there is no storage to
	// observe so all we can check is that RAM and ROM are untouched
	mem.Write(0x4000, 0x55)
	test.Equate(t, mem.Read(0x0000), 0x00)
	test.Equate(t, mem.Read(0xa000), 0xea)
}

func TestROMBoundsHazard(t *testing.T) {
	mem := memory.NewMemory([]uint8{0xea, 0xa9})

	// an address that decodes to ROM but is past the end of the image is a
	// contract violation and must fail fast
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for rom read past end of image")
		}
	}()
	_ = mem.Read(0xa002)
}

func TestPeek(t *testing.T) {
	mem := memory.NewMemory([]uint8{0xea})
	mem.Write(0x0010, 0x42)

	test.Equate(t, mem.Peek(0x0010), 0x42)
	test.Equate(t, mem.Peek(0xa000), 0xea)

	// Peek() never faults
	test.Equate(t, mem.Peek(0xa001), 0xff)
	test.Equate(t, mem.Peek(0x4000), 0xff)
}
