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

// Package romloader supplies the immutable ROM image the harness serves from
// the ROM area of the address space. The image is loaded in full before the
// first bus cycle runs; there is nothing dynamic about it after that.
package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/jetsetilly/harness65/curated"
	"github.com/jetsetilly/harness65/hardware/memory/memorymap"
)

// Error patterns for the romloader package.
const (
	NoFilename = "romloader: no ROM file specified"
	BadImage   = "romloader: %v: %v"
)

// Loader is used to specify the ROM image to serve from the ROM area.
type Loader struct {
	// filename of the image to load
	Filename string

	// the loaded image. valid after a successful call to Load()
	Data []uint8

	// SHA1 hash of the loaded image, useful for checking which build of a
	// test program is on the bench. valid after a successful call to Load()
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// Load the image from disk. An empty image, or an image wider than the
// decoded ROM area, is rejected.
func (ld *Loader) Load() error {
	if ld.Filename == "" {
		return curated.Errorf(NoFilename)
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(BadImage, ld.Filename, err)
	}

	if len(data) == 0 {
		return curated.Errorf(BadImage, ld.Filename, "file is empty")
	}
	if len(data) > memorymap.WindowROM {
		return curated.Errorf(BadImage, ld.Filename,
			fmt.Sprintf("image is larger than the ROM area (%d bytes, %d maximum)", len(data), memorymap.WindowROM))
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}
