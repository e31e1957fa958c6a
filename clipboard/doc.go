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

// Package clipboard contains the implementations of the slot used to exchange
// frame data between movies. Each implementation holds at most one payload,
// identified by a tag, and publishing replaces whatever was there before.
//
// Memory is private to the process. File is shared by processes on the same
// machine and Redis is shared between machines.
//
// The types in this package satisfy the m64.Medium interface.
package clipboard
