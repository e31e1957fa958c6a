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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions test for a condition and report a failure with
// t.Errorf() if the condition is not met. The Demand*() functions are the
// same but report with t.Fatalf(), stopping the test. Demand*() should be
// used when later parts of the test depend on the value being correct. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// ExpectSuccess() and ExpectFailure() work with values of type bool and
// error. The nil value is considered a success because that is how errors
// usually work.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. CompareWriter.Compare() can then be used to test
// for equality. CappedWriter is similar but stops buffering at a fixed size.
package test
