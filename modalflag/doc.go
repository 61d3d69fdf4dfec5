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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides sub-mode parsing in the style of many modern command
// line programs:
//
//	harness65 [global flags] [sub-mode [sub-mode flags]] arguments
//
// A sub-mode is identified by the first non-flag argument. If it matches one
// of the sub-modes added with AddSubModes() then parsing continues with a
// fresh flagset for that mode; if it matches nothing, the first (default)
// sub-mode is assumed and the argument is left in place.
//
// The idiomatic sequence is:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	...
//	}
//
// Sub-mode comparison is case insensitive.
package modalflag
