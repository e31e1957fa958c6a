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
	"encoding/binary"
	"fmt"
	"strings"
)

// Button is a single digital button in the packed input value.
type Button uint32

// List of valid Button values. The bit positions are fixed by the file format.
const (
	DRight Button = 0x0001
	DLeft  Button = 0x0002
	DDown  Button = 0x0004
	DUp    Button = 0x0008
	Start  Button = 0x0010
	Z      Button = 0x0020
	B      Button = 0x0040
	A      Button = 0x0080
	CRight Button = 0x0100
	CLeft  Button = 0x0200
	CDown  Button = 0x0400
	CUp    Button = 0x0800
	R      Button = 0x1000
	L      Button = 0x2000
)

// Buttons in the order they are displayed.
var Buttons = []Button{A, B, Z, Start, L, R, CUp, CDown, CLeft, CRight, DUp, DDown, DLeft, DRight}

var buttonNames = map[Button]string{
	A:      "A",
	B:      "B",
	Z:      "Z",
	Start:  "S",
	L:      "L",
	R:      "R",
	CUp:    "CU",
	CDown:  "CD",
	CLeft:  "CL",
	CRight: "CR",
	DUp:    "DU",
	DDown:  "DD",
	DLeft:  "DL",
	DRight: "DR",
}

func (b Button) String() string {
	if n, ok := buttonNames[b]; ok {
		return n
	}
	return fmt.Sprintf("%#04x", uint32(b))
}

// ParseButton returns the Button for the name. Names are those returned by
// Button.String() and are not case sensitive. "START" is accepted as an
// alternative for "S".
func ParseButton(name string) (Button, bool) {
	name = strings.ToUpper(name)
	if name == "START" {
		return Start, true
	}
	for b, n := range buttonNames {
		if n == name {
			return b, true
		}
	}
	return 0, false
}

// Input is the packed input value for one frame. The low 16 bits are the
// digital buttons, bits 16 to 23 are the signed stick X value and bits 24 to
// 31 are the signed stick Y value.
type Input uint32

// InputSize is the number of bytes used to encode an Input value.
const InputSize = 4

// Pressed returns true if the button is pressed.
func (in Input) Pressed(b Button) bool {
	return uint32(in)&uint32(b) == uint32(b)
}

// Press returns a copy of the input with the button pressed.
func (in Input) Press(b Button) Input {
	return in | Input(b)
}

// Release returns a copy of the input with the button released.
func (in Input) Release(b Button) Input {
	return in &^ Input(b)
}

// Buttons returns only the digital button bits of the input.
func (in Input) Buttons() uint16 {
	return uint16(in)
}

// X returns the horizontal stick value.
func (in Input) X() int8 {
	return int8(in >> 16)
}

// Y returns the vertical stick value.
func (in Input) Y() int8 {
	return int8(in >> 24)
}

// Stick returns a copy of the input with the stick values changed.
func (in Input) Stick(x, y int8) Input {
	return Input(uint32(in)&0x0000ffff | uint32(uint8(x))<<16 | uint32(uint8(y))<<24)
}

// Neutral returns true if the stick is centred.
func (in Input) Neutral() bool {
	return in.X() == 0 && in.Y() == 0
}

func (in Input) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("X:%4d Y:%4d", in.X(), in.Y()))
	for _, b := range Buttons {
		n := b.String()
		s.WriteRune(' ')
		if in.Pressed(b) {
			s.WriteString(n)
		} else {
			s.WriteString(strings.Repeat(".", len(n)))
		}
	}
	return s.String()
}

// Bytes returns the encoded form of the input.
func (in Input) Bytes() []byte {
	b := make([]byte, InputSize)
	binary.LittleEndian.PutUint32(b, uint32(in))
	return b
}

// DecodeInput decodes the first InputSize bytes of the slice. The slice must
// be at least InputSize bytes long.
func DecodeInput(b []byte) Input {
	return Input(binary.LittleEndian.Uint32(b))
}

// Frame is one entry in the movie's frame sequence.
type Frame struct {
	// position of the frame in the sequence. maintained by the Movie type and
	// never persisted
	Index int

	Input Input
}

func (f Frame) String() string {
	return fmt.Sprintf("%6d  %08x  %s", f.Index, uint32(f.Input), f.Input)
}
