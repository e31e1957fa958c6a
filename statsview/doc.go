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

// Package statsview is an optional package that is only built when the
// statsview build tag is present. Without the tag Available() returns false
// and Launch() does nothing.
//
// It provides an HTTP server running on the local machine that shows runtime
// statistics for the editor process. Useful when watching the memory profile
// of very long movies. Underlying functionality is provided by
// "github.com/go-echarts/statsview"
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12664/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12664/debug/pprof/
package statsview
