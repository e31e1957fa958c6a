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
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/logger"
	"github.com/jetsetilly/m64edit/paths"
)

// DefaultClipboardFile is the name of the file used by NewDefaultFile().
const DefaultClipboardFile = "slot"

// File is a clipboard slot persisted to disk. The first line of the file is
// the tag and the remainder of the file is the payload.
type File struct {
	path string
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile(path string) *File {
	return &File{path: path}
}

// NewDefaultFile returns a File in the clipboard directory of the resource
// path.
func NewDefaultFile() (*File, error) {
	pth, err := paths.ResourcePath("clipboard", DefaultClipboardFile)
	if err != nil {
		return nil, curated.Errorf(MediumError, err)
	}
	return NewFile(pth), nil
}

func (f *File) String() string {
	return fmt.Sprintf("file (%s)", f.path)
}

// Publish implements the m64.Medium interface. The file is written to a
// temporary file in the same directory and then renamed into place.
func (f *File) Publish(tag string, payload []byte) error {
	if strings.Contains(tag, "\n") {
		return curated.Errorf(MediumError, fmt.Sprintf("invalid tag %q", tag))
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return curated.Errorf(MediumError, err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.WriteString(tag + "\n")
	if err == nil {
		_, err = tmp.Write(payload)
	}
	if err != nil {
		_ = tmp.Close()
		return curated.Errorf(MediumError, err)
	}
	if err := tmp.Close(); err != nil {
		return curated.Errorf(MediumError, err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return curated.Errorf(MediumError, err)
	}

	logger.Logf(logger.Allow, "clipboard", "published %d bytes to %s", len(payload), f.path)

	return nil
}

// TryConsume implements the m64.Medium interface. A missing file is an empty
// slot.
func (f *File) TryConsume(tag string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, curated.Errorf(MediumError, err)
	}

	t, payload, ok := bytes.Cut(data, []byte("\n"))
	if !ok || string(t) != tag {
		return nil, false, nil
	}

	return payload, true, nil
}
