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

// Package ports defines the abstract port capability through which the
// harness touches the physical lines of the bus. Expressing the pins this way
// keeps the bus and debugger logic host independent; the same logic runs
// against a GPIO-backed implementation on real hardware or against the
// simulated port in the simport sub-package.
package ports

// LineGroup names one group of physically related lines.
type LineGroup int

func (g LineGroup) String() string {
	switch g {
	case AddressLow:
		return "address-low"
	case AddressHigh:
		return "address-high"
	case Data:
		return "data"
	case ControlIn:
		return "control-in"
	case ControlOut:
		return "control-out"
	}

	return "undefined"
}

// The five line groups of the bus.
const (
	AddressLow LineGroup = iota
	AddressHigh
	Data
	ControlIn
	ControlOut
)

// Direction of a line group as seen from the harness.
type Direction int

// List of valid Direction values.
const (
	Input Direction = iota
	Output
)

// Bit positions of the lines in the control-out group. These are the lines
// driven by the harness. All except RESB and PHI2 are held at their benign
// levels for the lifetime of the process.
const (
	RDY  = uint8(0x01)
	IRQB = uint8(0x02)
	NMIB = uint8(0x04)
	SOB  = uint8(0x08)
	BE   = uint8(0x10)
	RESB = uint8(0x20)
	PHI2 = uint8(0x40)
)

// Bit positions of the lines in the control-in group. These are the lines
// driven by the CPU and sampled by the harness once per cycle.
const (
	RWB  = uint8(0x01)
	SYNC = uint8(0x02)
	MLB  = uint8(0x04)
	VPB  = uint8(0x08)
)

// Port is the capability a host must provide for each line group. Read() and
// Write() move whole groups at once; ConfigureDirection() is only meaningful
// for the data group, the one bidirectional group on the bus.
type Port interface {
	ConfigureDirection(group LineGroup, dir Direction)
	Read(group LineGroup) uint8
	Write(group LineGroup, value uint8)
}

// Sample is a snapshot of the control-in lines taken in the middle of a bus
// cycle.
type Sample uint8

// IsWrite returns true if the RWB line indicates a write cycle. RWB is
// asserted low for a write.
func (s Sample) IsWrite() bool {
	return uint8(s)&RWB == 0
}

// IsSync returns true during an opcode fetch cycle. SYNC is asserted high.
func (s Sample) IsSync() bool {
	return uint8(s)&SYNC == SYNC
}

// IsLocked returns true while the CPU is in a multi-cycle atomic sequence.
// MLB is asserted low.
func (s Sample) IsLocked() bool {
	return uint8(s)&MLB == 0
}

// IsVectorPull returns true while the CPU is fetching an interrupt vector.
// VPB is asserted low.
func (s Sample) IsVectorPull() bool {
	return uint8(s)&VPB == 0
}
