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

// Package plainterm implements the Terminal interface for the m64edit editor.
// It's as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/m64edit/terminal"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
//
// It is also suitable for scripted input.
type PlainTerminal struct {
	input       *bufio.Reader
	output      io.Writer
	interactive bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. The terminal is interactive if both input and output
// are real terminals.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	pt := &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}

	if in, ok := input.(*os.File); ok {
		if out, ok := output.(*os.File); ok {
			pt.interactive = term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
		}
	}

	return pt
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.interactive
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	// input is echoed by the real terminal
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StyleHelp:
		s = fmt.Sprintf("  %s", s)
	}

	fmt.Fprintln(pt.output, s)
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if pt.interactive {
		fmt.Fprint(pt.output, prompt)
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		// last line of input may not have a line ending
		if err != io.EOF || len(s) == 0 {
			return "", err
		}
	}

	return strings.TrimRight(s, "\r\n"), nil
}
