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

// Sentinal error patterns. Use curated.Is() or curated.Has() to check for them.
const (
	// file is too short or the signature is wrong.
	FormatError = "m64 format: %v"

	// reading or writing the movie file failed.
	IOError = "m64 io: %v"

	// the movie has no path to save to.
	NoPathError = "m64 io: no file path for movie"

	// the index is outside the frame sequence. created by CheckIndex().
	BoundsError = "m64 bounds: frame %d out of range (%d frames)"

	// the edit would take the movie past MaxFrames.
	LimitError = "m64 limit: %v"
)
