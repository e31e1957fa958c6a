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

// Package ansi contains the escape sequences used by the colorterm package.
package ansi

import "fmt"

// Escape sequences for cursor and line control.
const (
	ClearLine         = "\033[2K"
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
	NormalPen         = "\033[0m"
)

// CursorMove returns the sequence that moves the cursor n columns. Negative
// values move the cursor backwards.
func CursorMove(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	}
	return ""
}

// CursorColumn returns the sequence that moves the cursor to the column. The
// first column is zero.
func CursorColumn(col int) string {
	return fmt.Sprintf("\r%s", CursorMove(col))
}

// list of colours
const (
	black = iota
	red
	green
	yellow
	blue
	magenta
	cyan
	white
)

// Pens for each colour. Dim pens are the normal intensity version of the
// colour.
var (
	PenColor = map[string]string{}
	DimPens  = map[string]string{}
)

// PenStyles contains the sequences for text attributes.
var PenStyles = map[string]string{
	"bold":      "\033[1m",
	"underline": "\033[4m",
	"inverse":   "\033[7m",
}

func init() {
	names := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	for c, n := range names {
		PenColor[n] = fmt.Sprintf("\033[1;%dm", 30+c)
		DimPens[n] = fmt.Sprintf("\033[%dm", 30+c)
	}
}
