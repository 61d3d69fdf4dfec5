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

// Package plainterm implements the Terminal interface for the harness65
// debugger. It is as simple as simple can be: it keeps the terminal in
// whatever mode it started in, probably cooked mode, meaning command bytes
// are not seen until the return key flushes them through.
package plainterm

import (
	"io"
	"os"

	"github.com/jetsetilly/harness65/curated"
	"github.com/jetsetilly/harness65/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the fallback terminal implementation, used when stdin is
// not a real terminal (input piped from a file or a script, for example) or
// when the user asks for it.
type PlainTerminal struct {
	input  io.Reader
	output io.Writer

	// single-slot byte queue fed by the reader goroutine
	pending chan uint8

	// the error that ended the reader goroutine. valid once pending has been
	// closed
	readErr error

	realInput bool
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	pt.pending = make(chan uint8, 1)

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := pt.input.Read(buf)
			if err != nil {
				pt.readErr = err
				close(pt.pending)
				return
			}
			if n == 1 {
				pt.pending <- buf[0]
			}
		}
	}()

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// IsRealTerminal returns true if the terminal is connected to an interactive
// input.
func (pt *PlainTerminal) IsRealTerminal() bool {
	return pt.realInput
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		s = "* " + s
	}
	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// ReadByte implements the terminal.Input interface.
func (pt *PlainTerminal) ReadByte() (byte, error) {
	b, ok := <-pt.pending
	if !ok {
		return 0, curated.Errorf(terminal.ChannelHangup, pt.readErr)
	}
	return b, nil
}

// ByteWaiting implements the terminal.Input interface.
func (pt *PlainTerminal) ByteWaiting() bool {
	return len(pt.pending) > 0
}
