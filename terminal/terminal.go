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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit, the most likely treatment is to print different styles
// in different colours.
type Style int

// List of terminal styles.
const (
	// output from a command
	StyleFeedback Style = iota

	// help text
	StyleHelp

	// error messages. should be shown even if the terminal is otherwise
	// quiet
	StyleError

	// entries from the log
	StyleLog

	// user input echoed back to the terminal. terminals that echo input as it
	// is typed can ignore this
	StyleEcho
)

// Sentinal error returned by TermRead() if the user interrupts input.
const (
	UserInterrupt = "user interrupt"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input without the line ending. The
	// prompt should be shown if the terminal is interactive.
	//
	// Returns io.EOF when there is no more input.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction. Instances that don't expect user intervention should return
	// false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the editor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()
}
