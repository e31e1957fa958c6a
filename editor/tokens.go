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
	"strings"
)

// tokens is the result of dividing a line of user input.
type tokens struct {
	tokens []string
	curr   int
}

func (tk tokens) remainder() []string {
	return tk.tokens[tk.curr:]
}

func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

func (tk *tokens) unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

func (tk tokens) peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

func tokeniseInput(input string) *tokens {
	tk := new(tokens)

	// comments run to the end of the line
	if i := strings.IndexRune(input, '#'); i >= 0 {
		input = input[:i]
	}

	tk.tokens = strings.Fields(input)

	// normalise the spacing of ranges. "10 - 20" becomes "10-20"
	for i := 1; i < len(tk.tokens)-1; i++ {
		if tk.tokens[i] == "-" {
			tk.tokens[i-1] = tk.tokens[i-1] + "-" + tk.tokens[i+1]
			tk.tokens = append(tk.tokens[:i], tk.tokens[i+2:]...)
			i--
		}
	}

	return tk
}
