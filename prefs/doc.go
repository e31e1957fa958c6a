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

// Package prefs facilitates the storage and retrieval of preference values.
// Values are stored in a plain text file as "key :: value" lines, one per
// line, after a warning that the file should not be edited by hand.
//
// A Disk is created with NewDisk() and individual preference values are
// registered with the Add() function. For example:
//
//	var listLength prefs.Int
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("editor.listlength", &listLength)
//	err = dsk.Load(true)
//
// Keys in the preferences file that have not been added to the Disk are
// preserved when the file is saved, unless they are in the defunct list.
// This means that more than one Disk can share the same file.
//
// Values can be overridden for the duration of a run with the command line
// stack. See PushCommandLineStack() for the format of the prefs string.
// Overridden values are not written to disk by Save(); the value that was
// originally loaded from the file is written instead.
package prefs
