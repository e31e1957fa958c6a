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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different
// flags for each mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Flags must be
// added between the two calls. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("EDIT", "INFO", "DUMP", "NEW")
//	log := md.AddBool("log", false, "echo log to terminal")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default sub-mode. It is selected if the first
// argument after the flags is not one of the listed sub-modes. Sub-mode
// comparisons are case insensitive and the Mode() function always returns
// the sub-mode in upper case.
//
// Once a mode has been selected NewMode() prepares for a new set of flags
// and optionally a new set of sub-modes. Parse() then continues from the
// argument after the mode selector:
//
//	switch md.Mode() {
//	case "DUMP":
//		md.NewMode()
//		from := md.AddInt("from", 0, "first frame to dump")
//		...
//	}
//
// The Path() function returns every mode selected so far, separated by a
// slash. It is used as the banner of the help message.
//
// Help is printed to the Output writer if the -help or -h flag is given. The
// help message lists the flags and sub-modes for the current mode.
// AdditionalHelp() can be used to append a longer explanation.
package modalflag
