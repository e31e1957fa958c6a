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

// Package m64 reads, edits and writes Mupen64 input movies.
//
// A movie file is a fixed size header followed by a sequence of 32-bit input
// samples, one per polled frame:
//
//	offset   size     meaning
//	0x000    4        signature (4D 36 34 1A)
//	0x004    0x3fc    header fields. the declared input count is at 0x018
//	0x400    4 x N    input samples, little-endian
//
// The Movie type owns the header and the frame sequence. Decode() and
// Movie.Encode() convert between a Movie and its file representation. The
// header is preserved byte for byte except for the declared input count,
// which Encode() always sets to the length of the frame sequence.
//
// The edit functions (InsertBlank(), Delete(), CopySelection(),
// PasteOverwrite(), PasteInsert(), Paste(), etc.) all leave the frame
// sequence in a state where the Index field of every Frame equals its position
// in the sequence. Bounds checking of indices is the responsibility of the
// caller. CheckIndex() is provided for that purpose.
//
// Copied frames are exchanged through a Medium. The Medium is a single slot
// holding a tagged payload. Frame data is published under the
// ClipboardFormat tag and ReadClipboard() turns whatever is in the slot into a
// Content value: either FrameContent or ForeignContent.
//
// Movie is not safe for concurrent use.
package m64
