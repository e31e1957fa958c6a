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

// Package paths contains functions to prepare paths to m64edit resources.
//
// The ResourcePath() function returns the path to a resource file, creating
// the directory if necessary. For example, the following will return the path
// to the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base directory is ".m64edit" in the current
// directory. For release builds (the "release" build tag) the base directory
// is "m64edit" in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system the path to the preferences
// file for a release build is:
//
//	/home/user/.config/m64edit/preferences
package paths
