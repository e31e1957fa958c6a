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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/m64edit/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in a preferences file.
const KeySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// the value loaded from disk for any entry that was then overridden by
	// the command line stack
	overridden map[string]string
}

func (dsk Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:       path,
		entries:    make(map[string]pref),
		overridden: make(map[string]string),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, KeySep) {
		return curated.Errorf(DiskError, fmt.Sprintf("invalid key %q", key))
	}
	if isDefunct(key) {
		return curated.Errorf(DiskError, fmt.Sprintf("key %q is defunct", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DiskError, fmt.Sprintf("key %q already added", key))
	}
	dsk.entries[key] = p
	return nil
}

// Reset all added preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// Path returns the location of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// sorted list of keys for added values.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the preferences file into a key/value map. keys are in the order they
// appear in the file.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	values := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line for the boiler plate
	scanner.Scan()
	if len(scanner.Text()) > 0 && scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidFile, dsk.path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)

		// ignore lines that haven't been split successfully
		if len(spt) != 2 {
			continue
		}

		values[strings.TrimSpace(spt[0])] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return values, nil
}

// Load preference values from disk. If saveOnFail is true then a missing
// preferences file is created with the current values.
//
// Values on the command line stack override values loaded from disk. The
// command line is consulted even if the preferences file does not exist, in
// which case the NoPrefsFile error is still returned.
func (dsk *Disk) Load(saveOnFail bool) error {
	values, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		if saveOnFail {
			if serr := dsk.Save(); serr != nil {
				return serr
			}
		}
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]
		if v, ok := values[k]; ok {
			if serr := p.Set(v); serr != nil {
				return curated.Errorf(DiskError, serr)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			dsk.overridden[k] = p.String()
			if serr := p.Set(v); serr != nil {
				return curated.Errorf(DiskError, serr)
			}
		}
	}

	return err
}

// Save current preference values to disk. Values for keys that are in the
// existing file but which have not been added to this Disk are preserved.
func (dsk *Disk) Save() (rerr error) {
	values, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		values = make(map[string]string)
	}

	for k := range values {
		if isDefunct(k) {
			delete(values, k)
		}
	}

	for k, p := range dsk.entries {
		if v, ok := dsk.overridden[k]; ok {
			values[k] = v
		} else {
			values[k] = p.String()
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf(DiskError, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, values[k])
	}
	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}
