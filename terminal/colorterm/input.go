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

package colorterm

import (
	"io"
	"slices"
	"unicode"

	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/terminal"
	"github.com/jetsetilly/m64edit/terminal/colorterm/easyterm"
	"github.com/jetsetilly/m64edit/terminal/colorterm/easyterm/ansi"
)

// LineEditor reads a line of input from a terminal in raw mode. It supports
// cursor movement, deletion and a command history.
type LineEditor struct {
	history []string
}

// History returns a copy of the command history. Oldest entry first.
func (ed *LineEditor) History() []string {
	return slices.Clone(ed.history)
}

// redraw the prompt and input, and position the cursor.
func redraw(w io.Writer, prompt string, input []rune, cursor int) {
	io.WriteString(w, "\r")
	io.WriteString(w, ansi.ClearLine)
	io.WriteString(w, ansi.PenStyles["bold"])
	io.WriteString(w, prompt)
	io.WriteString(w, ansi.NormalPen)
	io.WriteString(w, string(input))
	io.WriteString(w, ansi.CursorColumn(len([]rune(prompt))+cursor))
}

// Read a single line from the reader. Output required to show the prompt and
// the line being edited is sent to the writer.
//
// Returns io.EOF if the input is empty and the end-of-file key is pressed, or
// if the reader is exhausted before any input. The interrupt key returns a
// terminal.UserInterrupt error.
func (ed *LineEditor) Read(r io.RuneReader, w io.Writer, prompt string) (string, error) {
	var input []rune
	cursor := 0

	// position in the history. equal to len(history) when editing a new line
	history := len(ed.history)

	// the current input when scrolling through history so that it isn't lost
	var pending []rune

	for {
		redraw(w, prompt, input, cursor)

		c, _, err := r.ReadRune()
		if err != nil {
			if err == io.EOF && len(input) > 0 {
				io.WriteString(w, "\r\n")
				return ed.commit(input), nil
			}
			return "", err
		}

		switch c {
		case easyterm.KeyInterrupt:
			io.WriteString(w, "\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if len(input) == 0 {
				io.WriteString(w, "\r\n")
				return "", io.EOF
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			io.WriteString(w, "\r\n")
			return ed.commit(input), nil

		case easyterm.KeyBackspace, easyterm.KeyBackspaceAlt:
			if cursor > 0 {
				input = slices.Delete(input, cursor-1, cursor)
				cursor--
				history = len(ed.history)
			}

		case easyterm.KeyEsc:
			c, _, err := r.ReadRune()
			if err != nil {
				return "", err
			}
			if c != easyterm.EscCursor {
				continue
			}

			c, _, err = r.ReadRune()
			if err != nil {
				return "", err
			}

			switch c {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ed.history) {
						pending = input
					}
					history--
					input = []rune(ed.history[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ed.history) {
					history++
					if history == len(ed.history) {
						input = pending
					} else {
						input = []rune(ed.history[history])
					}
					cursor = len(input)
				}
			case easyterm.CursorForward:
				cursor = min(cursor+1, len(input))
			case easyterm.CursorBackward:
				cursor = max(cursor-1, 0)
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(input)
			case easyterm.CursorDelete:
				// consume the trailing tilde
				if _, _, err := r.ReadRune(); err != nil {
					return "", err
				}
				if cursor < len(input) {
					input = slices.Delete(input, cursor, cursor+1)
					history = len(ed.history)
				}
			}

		default:
			if unicode.IsPrint(c) {
				input = slices.Insert(input, cursor, c)
				cursor++
				history = len(ed.history)
			}
		}
	}
}

// commit input to the history if it differs from the most recent entry.
func (ed *LineEditor) commit(input []rune) string {
	s := string(input)
	if len(s) > 0 && (len(ed.history) == 0 || ed.history[len(ed.history)-1] != s) {
		ed.history = append(ed.history, s)
	}
	return s
}
