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

// Package terminal defines the operations required of the debugger's control
// channel. Commands arrive one byte at a time with no framing; the transcript
// goes out one line at a time.
//
// Implementations deliver input through a single-slot queue fed by a
// dedicated reader goroutine. The ordering contract for the debugger is that
// at most one command byte is handed over per call to ReadByte(), so one
// command is consumed and fully acted upon before the next bus cycle resumes.
package terminal

// ChannelHangup is the error pattern returned by ReadByte() when the control
// channel has gone away. There is no recovering from it.
const ChannelHangup = "channel hangup: %v"

// Input defines the operations required of the command side of the channel.
type Input interface {
	// ReadByte returns the next command byte, blocking until one is
	// available. It is the only blocking call in the entire system.
	ReadByte() (byte, error)

	// ByteWaiting returns true if a call to ReadByte() would return without
	// blocking. It must never block and must cost close to nothing; it is
	// called every bus cycle while the loop free-runs.
	ByteWaiting() bool
}

// Output defines the operations required of the transcript side of the
// channel.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required of the debugger's control channel.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. among other things this starts the reader
	// goroutine feeding the byte queue.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()
}
