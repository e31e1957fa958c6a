// This file is part of m64edit.
//
// m64edit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m64edit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m64edit.  If not, see <https://www.gnu.org/licenses/>.

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// the handful of terminal modes and the geometry information required by the
// colorterm package.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal).
type TermGeometry struct {
	// characters
	Rows uint16
	Cols uint16

	// pixels
	X uint16
	Y uint16
}

// Terminal is the main container for posix terminals. usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	geometry TermGeometry

	canAttr unix.Termios
	rawAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	mu sync.Mutex
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: Terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: Terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	_ = pt.UpdateGeometry()

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp returns the terminal to canonical mode and closes resources created
// in the Initialise() function.
func (pt *Terminal) CleanUp() {
	if pt.input == nil {
		return
	}
	pt.CanonicalMode()
	if pt.terminateHandlerSig != nil {
		pt.terminateHandlerSig <- true
		<-pt.terminateHandlerAck
		pt.terminateHandlerSig = nil
	}
}

// Write implements the io.Writer interface. Output goes to the output file.
func (pt *Terminal) Write(p []byte) (int, error) {
	return pt.output.Write(p)
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
}

// UpdateGeometry gets the current dimensions (in characters and pixels) of the
// output terminal.
func (pt *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: error updating terminal geometry information: %w", err)
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.geometry = TermGeometry{
		Rows: ws.Row,
		Cols: ws.Col,
		X:    ws.Xpixel,
		Y:    ws.Ypixel,
	}

	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (pt *Terminal) Geometry() TermGeometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
