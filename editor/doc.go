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

// Package editor implements the command line interface for editing movies.
// Commands are read from a terminal.Terminal and applied to a single m64.Movie.
// Use HELP to list the available commands.
//
// Frame arguments can be a single frame index, a range of frames (eg.
// 10-20) or a comma separated list of either (eg. 1,5,10-20). Some commands
// accept more than one frame argument in which case the lists are joined.
//
// Frames that are copied or cut are published to the clipboard medium named in
// the preferences. A medium can be shared by more than one editor so that
// frames can be pasted into a different movie.
package editor
