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

package editor

import (
	"slices"
	"strings"
	"time"

	"github.com/jetsetilly/m64edit/clipboard"
	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/prefs"
)

// Preferences defines and collates all the preference values used by the
// editor.
type Preferences struct {
	dsk *prefs.Disk

	// the clipboard medium and the settings for the redis medium
	ClipboardMedium prefs.String
	RedisAddr       prefs.String
	RedisKey        prefs.String
	RedisTimeout    prefs.Int // milliseconds

	// number of frames shown by LIST. zero means the height of the terminal
	// if that is known
	ListLength prefs.Int

	// print log entries to the terminal as they are made
	EchoLog prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the file at the path if it exists.
// The file is created if it doesn't.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.SetDefaults()

	p.ClipboardMedium.SetHookPre(func(v prefs.Value) error {
		m := strings.ToLower(strings.TrimSpace(v.(string)))
		if !slices.Contains(clipboard.Media, m) {
			return curated.Errorf(clipboard.UnknownError, v)
		}
		return nil
	})
	p.ListLength.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(EditorError, "list length cannot be negative")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("clipboard.medium", &p.ClipboardMedium)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("clipboard.redis.addr", &p.RedisAddr)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("clipboard.redis.key", &p.RedisKey)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("clipboard.redis.timeout", &p.RedisTimeout)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("editor.listlength", &p.ListLength)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("editor.echolog", &p.EchoLog)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default value.
func (p *Preferences) SetDefaults() {
	_ = p.ClipboardMedium.Set(clipboard.MediumMemory)
	_ = p.RedisAddr.Set("localhost:6379")
	_ = p.RedisKey.Set(clipboard.DefaultRedisKey)
	_ = p.RedisTimeout.Set(int(clipboard.DefaultRedisTimeout / time.Millisecond))
	_ = p.ListLength.Set(0)
	_ = p.EchoLog.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// ClipboardSettings returns the settings for clipboard.New().
func (p *Preferences) ClipboardSettings() clipboard.Settings {
	return clipboard.Settings{
		Medium:       p.ClipboardMedium.String(),
		RedisAddr:    p.RedisAddr.String(),
		RedisKey:     p.RedisKey.String(),
		RedisTimeout: time.Duration(p.RedisTimeout.Get().(int)) * time.Millisecond,
	}
}
