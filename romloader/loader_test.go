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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/harness65/curated"
	"github.com/jetsetilly/harness65/hardware/memory/memorymap"
	"github.com/jetsetilly/harness65/romloader"
	"github.com/jetsetilly/harness65/test"
)

func writeImage(t *testing.T, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(fn, data, 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoad(t *testing.T) {
	ld := romloader.NewLoader(writeImage(t, []uint8{0xea, 0xa9, 0x42}))
	test.ExpectedSuccess(t, ld.Load())
	test.Equate(t, len(ld.Data), 3)
	test.Equate(t, ld.Data[0], 0xea)

	// sha1 of the three byte image
	test.Equate(t, len(ld.Hash), 40)
}

func TestNoFilename(t *testing.T) {
	ld := romloader.NewLoader("")
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.NoFilename))
}

func TestMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "no such file"))
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.BadImage))
}

func TestEmptyImage(t *testing.T) {
	ld := romloader.NewLoader(writeImage(t, nil))
	test.ExpectedFailure(t, ld.Load())
}

func TestOversizeImage(t *testing.T) {
	ld := romloader.NewLoader(writeImage(t, make([]uint8, memorymap.WindowROM+1)))
	test.ExpectedFailure(t, ld.Load())

	// an image that exactly fills the ROM area is fine
	ld = romloader.NewLoader(writeImage(t, make([]uint8, memorymap.WindowROM)))
	test.ExpectedSuccess(t, ld.Load())
}
