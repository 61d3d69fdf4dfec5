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

// Package curated is the error type used throughout harness65. A curated
// error is created with a pattern string, in the manner of fmt.Errorf(). The
// difference is that the pattern is retained and can be tested for later with
// the Is() and Has() functions.
//
// By convention, patterns that are to be tested for are declared as constants
// in the package that creates the error. For example, the terminal package
// declares the ChannelHangup pattern which the debugger tests for when
// deciding whether the control channel has gone away.
package curated
