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

import (
	"slices"
	"sync"
)

// Memory is a clipboard slot that exists only for the lifetime of the process.
// It is safe for concurrent use.
type Memory struct {
	crit    sync.Mutex
	tag     string
	payload []byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) String() string {
	return "memory"
}

// Publish implements the m64.Medium interface.
func (m *Memory) Publish(tag string, payload []byte) error {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.tag = tag
	m.payload = slices.Clone(payload)
	return nil
}

// TryConsume implements the m64.Medium interface.
func (m *Memory) TryConsume(tag string) ([]byte, bool, error) {
	m.crit.Lock()
	defer m.crit.Unlock()
	if m.payload == nil || m.tag != tag {
		return nil, false, nil
	}
	return slices.Clone(m.payload), true, nil
}
