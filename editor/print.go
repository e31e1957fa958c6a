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

package editor

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/m64edit/terminal"
)

// printLine formats the string and sends each line of the result to the
// terminal.
func (ed *Editor) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	// remove all trailing newlines, and return if the resulting string is empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	for _, l := range strings.Split(s, "\n") {
		ed.term.TermPrintLine(sty, l)
	}
}

// styleWriter implements the io.Writer interface. it is useful for when an
// io.Writer is required and you want to direct the output to the terminal.
// allows the application of a single style.
type styleWriter struct {
	ed    *Editor
	style terminal.Style
}

func (ed *Editor) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		ed:    ed,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.ed.printLine(wrt.style, "%s", string(p))
	return len(p), nil
}
