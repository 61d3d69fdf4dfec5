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

// Package colorterm implements the Terminal interface for the harness65
// debugger. It puts the terminal into cbreak mode, which is what makes
// single-keypress stepping work, and colours the transcript.
package colorterm

import (
	"os"

	"github.com/jetsetilly/harness65/curated"
	"github.com/jetsetilly/harness65/debugger/terminal"
	"github.com/jetsetilly/harness65/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the debugger's Terminal interface with a basic
// ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	// single-slot byte queue fed by the reader goroutine
	pending chan uint8

	// the error that ended the reader goroutine. valid once pending has been
	// closed
	readErr error
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.CBreakMode()

	ct.pending = make(chan uint8, 1)

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				ct.readErr = err
				close(ct.pending)
				return
			}
			if n == 1 {
				ct.pending <- buf[0]
			}
		}
	}()

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.CleanUp()
}

// ReadByte implements the terminal.Input interface.
func (ct *ColorTerminal) ReadByte() (byte, error) {
	b, ok := <-ct.pending
	if !ok {
		return 0, curated.Errorf(terminal.ChannelHangup, ct.readErr)
	}
	return b, nil
}

// ByteWaiting implements the terminal.Input interface.
func (ct *ColorTerminal) ByteWaiting() bool {
	return len(ct.pending) > 0
}
