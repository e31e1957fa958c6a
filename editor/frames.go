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
	"slices"
	"strconv"
	"strings"

	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/m64"
)

// parseIndex parses a single frame index. Decimal and hexadecimal (0x prefix)
// notation is accepted.
func parseIndex(s string) (int, error) {
	n, base := s, 10
	if h, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		n, base = h, 16
	}
	v, err := strconv.ParseInt(n, base, 32)
	if err != nil {
		return 0, curated.Errorf(FrameListError, s)
	}
	return int(v), nil
}

// parseFrames parses a frame list. Every index in the list must be a frame in
// the movie. The returned list is in ascending order with no duplicates.
func parseFrames(mov *m64.Movie, list string) ([]int, error) {
	var indices []int

	for _, part := range strings.Split(list, ",") {
		if part == "" {
			return nil, curated.Errorf(FrameListError, list)
		}

		// the first character is skipped when looking for the range separator
		// so that negative numbers are parsed (and rejected) as indices
		from, to, isRange := strings.Cut(part[1:], "-")
		from = part[:1] + from

		a, err := parseIndex(from)
		if err != nil {
			return nil, err
		}
		if err := mov.CheckIndex(a, false); err != nil {
			return nil, err
		}

		if !isRange {
			indices = append(indices, a)
			continue
		}

		b, err := parseIndex(to)
		if err != nil {
			return nil, err
		}
		if err := mov.CheckIndex(b, false); err != nil {
			return nil, err
		}
		if b < a {
			return nil, curated.Errorf(FrameListError, part)
		}

		for i := a; i <= b; i++ {
			indices = append(indices, i)
		}
	}

	slices.Sort(indices)
	return slices.Compact(indices), nil
}

// parseInput parses the description of a frame's input. The description is
// either a single number giving the packed input value or a list of button
// names and stick positions. Stick positions are of the form X=n and Y=n.
// The word NONE can be used to describe an input with nothing pressed.
func parseInput(fields []string) (m64.Input, error) {
	var in m64.Input

	if len(fields) == 1 {
		if v, err := strconv.ParseUint(fields[0], 0, 32); err == nil {
			return m64.Input(v), nil
		}
	}

	x, y := in.X(), in.Y()

	for _, f := range fields {
		if strings.ToUpper(f) == "NONE" {
			continue
		}

		if k, v, ok := strings.Cut(f, "="); ok {
			n, err := strconv.ParseInt(v, 10, 8)
			if err != nil {
				return 0, curated.Errorf(EditorError, "stick values must be between -128 and 127")
			}
			switch strings.ToUpper(k) {
			case "X":
				x = int8(n)
			case "Y":
				y = int8(n)
			default:
				return 0, curated.Errorf(EditorError, "unrecognised stick axis ("+k+")")
			}
			continue
		}

		b, ok := m64.ParseButton(f)
		if !ok {
			return 0, curated.Errorf(EditorError, "unrecognised button ("+f+")")
		}
		in = in.Press(b)
	}

	return in.Stick(x, y), nil
}

// parseButtons parses a list of button names. At least one name is required.
func parseButtons(fields []string) ([]m64.Button, error) {
	if len(fields) == 0 {
		return nil, curated.Errorf(EditorError, "no buttons specified")
	}
	buttons := make([]m64.Button, 0, len(fields))
	for _, f := range fields {
		b, ok := m64.ParseButton(f)
		if !ok {
			return nil, curated.Errorf(EditorError, "unrecognised button ("+f+")")
		}
		buttons = append(buttons, b)
	}
	return buttons, nil
}
