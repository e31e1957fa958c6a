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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/m64edit/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/m64edit/test"
)

func TestCursorMove(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(0), "")
	test.ExpectEquality(t, ansi.CursorMove(3), "\033[3C")
	test.ExpectEquality(t, ansi.CursorMove(-2), "\033[2D")
	test.ExpectEquality(t, ansi.CursorColumn(5), "\r\033[5C")
}

func TestPens(t *testing.T) {
	test.ExpectEquality(t, ansi.PenColor["red"], "\033[1;31m")
	test.ExpectEquality(t, ansi.DimPens["white"], "\033[37m")
}
