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

package m64

import (
	"fmt"
	"strings"
	"time"
)

// Stats are values derived from the current frame sequence of a movie. Every
// query scans the frame sequence so the values always reflect the most recent
// edits.
type Stats struct {
	mov *Movie
}

// Frames is the number of frames in the movie.
func (st Stats) Frames() int {
	return len(st.mov.frames)
}

// Presses counts how many times the button goes from released to pressed. A
// button held on the first frame counts as a press.
func (st Stats) Presses(b Button) int {
	var n int
	var prev bool
	for _, f := range st.mov.frames {
		p := f.Input.Pressed(b)
		if p && !prev {
			n++
		}
		prev = p
	}
	return n
}

// Held counts the frames on which the button is pressed.
func (st Stats) Held(b Button) int {
	return st.count(func(in Input) bool {
		return in.Pressed(b)
	})
}

// StickFrames counts the frames on which the stick is not centred.
func (st Stats) StickFrames() int {
	return st.count(func(in Input) bool {
		return !in.Neutral()
	})
}

// BlankFrames counts the frames with no input at all.
func (st Stats) BlankFrames() int {
	return st.count(func(in Input) bool {
		return in == 0
	})
}

func (st Stats) count(pred func(Input) bool) int {
	var n int
	for _, f := range st.mov.frames {
		if pred(f.Input) {
			n++
		}
	}
	return n
}

// Duration is an estimate of the movie's running time, assuming one input is
// polled every other vertical interrupt.
func (st Stats) Duration() time.Duration {
	vps := st.mov.header.VIsPerSecond()
	if vps == 0 {
		return 0
	}
	return time.Duration(len(st.mov.frames)*2) * time.Second / time.Duration(vps)
}

func (st Stats) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("frames: %d (blank %d, stick %d)\n", st.Frames(), st.BlankFrames(), st.StickFrames()))
	s.WriteString(fmt.Sprintf("duration: %s\n", st.Duration().Round(time.Millisecond)))
	for _, b := range Buttons {
		s.WriteString(fmt.Sprintf("%-2s  presses %6d  held %6d\n", b, st.Presses(b), st.Held(b)))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
