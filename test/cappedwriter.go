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

package test

import (
	"fmt"
)

// CappedWriter is an implementation of io.Writer that stops buffering once a
// predefined size is reached. Writes beyond the cap are discarded silently.
type CappedWriter struct {
	buffer []byte
	size   int
	capped bool
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// Capped returns true if any output has been discarded.
func (w *CappedWriter) Capped() bool {
	return w.capped
}

// Reset empties the buffer. The size limit is unchanged.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
	w.capped = false
}

// Write implements io.Writer. The number of bytes reported is the number of
// bytes actually buffered.
func (w *CappedWriter) Write(p []byte) (n int, err error) {
	n = min(w.size-len(w.buffer), len(p))
	if n < len(p) {
		w.capped = true
	}
	w.buffer = append(w.buffer, p[:n]...)
	return n, nil
}
