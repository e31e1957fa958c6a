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

package clipboard

// Sentinal error patterns for the clipboard package.
const (
	MediumError  = "clipboard: %v"
	UnknownError = "clipboard: unknown medium (%s)"
)
