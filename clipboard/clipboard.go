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
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/m64edit/curated"
)

// List of valid medium names.
const (
	MediumMemory = "memory"
	MediumFile   = "file"
	MediumRedis  = "redis"
)

// Media is the list of valid medium names.
var Media = []string{MediumMemory, MediumFile, MediumRedis}

// Slot is satisfied by all the clipboard implementations in this package.
type Slot interface {
	fmt.Stringer
	Publish(tag string, payload []byte) error
	TryConsume(tag string) ([]byte, bool, error)
}

// Settings for the New() function. The Redis fields are only used by the
// redis medium.
type Settings struct {
	Medium       string
	RedisAddr    string
	RedisKey     string
	RedisTimeout time.Duration
}

// the memory slot is shared by every movie in the process.
var shared = NewMemory()

// New returns the Slot named by the Medium field of the settings.
func New(s Settings) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(s.Medium)) {
	case MediumMemory, "":
		return shared, nil
	case MediumFile:
		return NewDefaultFile()
	case MediumRedis:
		return NewRedis(s.RedisAddr, s.RedisKey, s.RedisTimeout), nil
	}
	return nil, curated.Errorf(UnknownError, s.Medium)
}
