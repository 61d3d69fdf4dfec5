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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import "fmt"

// ansi colour.
const (
	colBlack = iota
	colRed
	colGreen
	colYellow
	colBlue
	colMagenta
	colCyan
	colWhite
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// PenColor is the table of colours to be used for text.
var PenColor map[string]string

// DimPens is the table of faint colours to be used for text.
var DimPens map[string]string

func init() {
	PenColor = make(map[string]string)
	DimPens = make(map[string]string)

	for i, col := range []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		PenColor[col] = fmt.Sprintf("\033[3%dm", i)
		DimPens[col] = fmt.Sprintf("\033[2;3%dm", i)
	}
}
