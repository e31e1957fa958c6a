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

// Package colorterm implements the Terminal interface for the m64edit editor.
// It supports color output, history and line editing.
//
// Input is read with the terminal in raw mode so only real terminals are
// supported. The plainterm package should be used if input is redirected.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/m64edit/terminal"
	"github.com/jetsetilly/m64edit/terminal/colorterm/easyterm"
	"github.com/jetsetilly/m64edit/terminal/colorterm/easyterm/ansi"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader *bufio.Reader
	editor LineEditor
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.reader = bufio.NewReader(os.Stdin)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.Print("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()
	return ct.editor.Read(ct.reader, &ct.Terminal, prompt)
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleEcho:
		return
	case terminal.StyleError:
		ct.Print(ansi.PenColor["red"])
		ct.Print("* ")
	case terminal.StyleHelp:
		ct.Print(ansi.DimPens["white"])
		ct.Print("  ")
	case terminal.StyleLog:
		ct.Print(ansi.DimPens["cyan"])
	case terminal.StyleFeedback:
		ct.Print(ansi.DimPens["white"])
	}

	ct.Print("%s", s)
	ct.Print(ansi.NormalPen)
	ct.Print("\n")
}
