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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is remembered and is what identifies the error. Sentinal
// patterns should be stored as exported const strings, suitably named. For
// example, the m64 package defines:
//
//	const FormatError = "m64 format: %v"
//
// and a caller can then check for it:
//
//	_, err := m64.Decode(data)
//	if curated.Is(err, m64.FormatError) {
//		fmt.Println("not a movie file")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Is() only checks the outermost error.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. An uncurated error is one we did not expect.
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. A chain is made of parts separated by ": " so
// that wrapping like this:
//
//	curated.Errorf("editor: %v", curated.Errorf("editor: %v", "no movie"))
//
// produces "editor: no movie" and not "editor: editor: no movie".
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library can look inside wrapped error values.
package curated
