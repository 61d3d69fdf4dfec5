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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/harness65/curated"
	"github.com/jetsetilly/harness65/debugger"
	"github.com/jetsetilly/harness65/debugger/terminal"
	"github.com/jetsetilly/harness65/debugger/terminal/colorterm"
	"github.com/jetsetilly/harness65/debugger/terminal/plainterm"
	"github.com/jetsetilly/harness65/disassembly"
	"github.com/jetsetilly/harness65/hardware"
	"github.com/jetsetilly/harness65/hardware/memory/memorymap"
	"github.com/jetsetilly/harness65/hardware/ports/simport"
	"github.com/jetsetilly/harness65/logger"
	"github.com/jetsetilly/harness65/modalflag"
	"github.com/jetsetilly/harness65/romloader"
	"github.com/jetsetilly/harness65/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DISASM")

	log := md.AddBool("log", false, "echo log entries to stderr as they happen")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type: COLOR, PLAIN")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not available in this build (no statsview build tag)")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM image required for %s mode", md)

	case 1:
		ld := romloader.NewLoader(md.GetArg(0))
		if err := ld.Load(); err != nil {
			return err
		}
		logger.Logf("harness65", "%s (sha1 %s)", ld.Filename, ld.Hash)

		var term terminal.Terminal

		switch strings.ToUpper(*termType) {
		default:
			fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
			fallthrough
		case "PLAIN":
			term = &plainterm.PlainTerminal{}
		case "COLOR":
			term = &colorterm.ColorTerminal{}
		}

		if err := term.Initialise(); err != nil {
			// a color terminal cannot initialise when stdin is not a real
			// terminal. fall back to the plain implementation
			if _, ok := term.(*colorterm.ColorTerminal); !ok {
				return err
			}
			logger.Logf("terminal", "%v (falling back to plain)", err)

			term = &plainterm.PlainTerminal{}
			if err := term.Initialise(); err != nil {
				return err
			}
		}
		defer term.CleanUp()

		if pt, ok := term.(*plainterm.PlainTerminal); ok && !pt.IsRealTerminal() {
			logger.Log("terminal", "reading commands from a non-interactive input")
		}

		// restore the terminal on ctrl-c. cbreak mode would otherwise leave
		// the user's shell without echo
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		go func() {
			<-intChan
			term.CleanUp()
			fmt.Print("\r\n")
			os.Exit(0)
		}()

		sim := simport.NewSimport(nil)
		harn := hardware.NewHarness(sim, ld.Data)
		dbg := debugger.NewDebugger(harn, term)

		err := dbg.Start()
		if err != nil {
			// the input channel going away is the normal way for a session
			// to end
			if curated.Has(err, terminal.ChannelHangup) {
				return nil
			}
			return err
		}

		return nil

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM image required for %s mode", md)

	case 1:
		ld := romloader.NewLoader(md.GetArg(0))
		if err := ld.Load(); err != nil {
			return err
		}

		read := func(address uint16) uint8 {
			idx := int(address) - int(memorymap.OriginROM)
			if idx < 0 || idx >= len(ld.Data) {
				return 0xff
			}
			return ld.Data[idx]
		}

		// a linear walk of the image. without running the program there is no
		// way of distinguishing code from data so every byte is treated as
		// the start of an instruction
		pc := int(memorymap.OriginROM)
		top := pc + len(ld.Data)
		for pc < top {
			d, n := disassembly.Disasm(read, uint16(pc))
			fmt.Fprintf(md.Output, "%04x  %s\n", pc, d)
			pc += n
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
