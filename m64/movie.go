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

package m64

import (
	"encoding/binary"
	"os"

	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/logger"
)

// FileStore is the interface to the file system used by Movie.Open() and
// Movie.Save().
type FileStore interface {
	ReadAll(path string) ([]byte, error)
	WriteAll(path string, data []byte) error
}

// OSFiles is the default FileStore. It reads and writes files with the os
// package.
type OSFiles struct{}

// ReadAll implements the FileStore interface.
func (OSFiles) ReadAll(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteAll implements the FileStore interface.
func (OSFiles) WriteAll(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// MaxFrames is the largest number of frames a movie can be edited to hold.
// About 77 hours at 60 frames per second.
const MaxFrames = 1 << 24

// Movie is an input movie: a Header and a sequence of Frames.
type Movie struct {
	header Header
	frames []Frame

	// the file the movie was loaded from or most recently saved to
	path string

	// the bytes the movie was most recently loaded from. trailing bytes that
	// are not part of the frame sequence are kept here
	raw []byte

	// true if the frame sequence has been changed since the movie was loaded
	// or saved
	modified bool

	files     FileStore
	clipboard Medium

	// called after Paste() has completed
	refresh func()
}

// NewMovie is the preferred method of initialisation for the Movie type. The
// new movie has a default header and one blank frame.
//
// The clipboard and refresh arguments can both be nil. Without a clipboard
// CopySelection() publishes nothing and the paste functions never find a
// transfer.
func NewMovie(clipboard Medium, refresh func()) *Movie {
	if clipboard == nil {
		clipboard = noMedium{}
	}
	mov := &Movie{
		header:    NewHeader(),
		frames:    []Frame{{Index: 0}},
		files:     OSFiles{},
		clipboard: clipboard,
		refresh:   refresh,
	}
	return mov
}

// Decode creates a new Movie from the encoded bytes. Returns a FormatError if
// the data is not a movie.
//
// The number of frames decoded is the smaller of the declared input count and
// the number of whole input samples in the data. Bytes after that are ignored
// but remain available through RawBytes(). If no frames can be decoded the
// movie is given one blank frame.
func Decode(data []byte) (*Movie, error) {
	mov := NewMovie(nil, nil)
	if err := mov.Load(data); err != nil {
		return nil, err
	}
	return mov, nil
}

// Load replaces the movie content with the decoded bytes. The clipboard,
// refresh callback and file store are kept. On error the movie is left
// unchanged.
func (mov *Movie) Load(data []byte) error {
	if len(data) < HeaderSize {
		return curated.Errorf(FormatError, "file shorter than header")
	}
	if !HasSignature(data) {
		return curated.Errorf(FormatError, "unrecognised signature")
	}

	var header Header
	copy(header.data[:], data[:HeaderSize])

	declared := header.NumInputs()
	body := data[HeaderSize:]
	available := len(body) / InputSize

	n := min(declared, available)
	frames := make([]Frame, n, max(n, 1))
	for i := range frames {
		frames[i] = Frame{
			Index: i,
			Input: DecodeInput(body[i*InputSize:]),
		}
	}

	if declared != available {
		logger.Logf(logger.Allow, "m64", "header declares %d inputs. file contains %d", declared, available)
	}
	if rem := len(body) % InputSize; rem != 0 {
		logger.Logf(logger.Allow, "m64", "ignoring %d trailing bytes", rem)
	}

	if len(frames) == 0 {
		frames = append(frames, Frame{Index: 0})
	}

	mov.header = header
	mov.frames = frames
	mov.raw = data
	mov.modified = false

	return nil
}

// Encode returns the movie in its file representation. The declared input
// count in the encoded header is always the length of the frame sequence.
func (mov *Movie) Encode() []byte {
	header := mov.header
	header.setNumInputs(len(mov.frames))

	b := make([]byte, 0, HeaderSize+InputSize*len(mov.frames))
	b = append(b, header.data[:]...)
	for _, f := range mov.frames {
		b = binary.LittleEndian.AppendUint32(b, uint32(f.Input))
	}
	return b
}

// SetFileStore changes how the movie reads and writes files. A nil value
// restores the default.
func (mov *Movie) SetFileStore(files FileStore) {
	if files == nil {
		files = OSFiles{}
	}
	mov.files = files
}

// Open loads the movie from the file. The movie is unchanged if the file
// cannot be read or is not a movie.
func (mov *Movie) Open(path string) error {
	data, err := mov.files.ReadAll(path)
	if err != nil {
		return curated.Errorf(IOError, err)
	}
	if err := mov.Load(data); err != nil {
		return err
	}
	mov.path = path
	return nil
}

// Save writes the movie to the file it was opened from or last saved to.
func (mov *Movie) Save() error {
	if mov.path == "" {
		return curated.Errorf(NoPathError)
	}
	return mov.SaveAs(mov.path)
}

// SaveAs writes the movie to the named file. If the write succeeds the path
// becomes the movie's path and the movie is no longer considered modified. The
// header's declared input count is updated to match what was written.
func (mov *Movie) SaveAs(path string) error {
	if err := mov.files.WriteAll(path, mov.Encode()); err != nil {
		return curated.Errorf(IOError, err)
	}
	mov.header.setNumInputs(len(mov.frames))
	mov.path = path
	mov.modified = false
	return nil
}

// Reset the movie to the state of a movie created with NewMovie(). The file
// store, clipboard and refresh callback are kept.
func (mov *Movie) Reset() {
	mov.path = ""
	mov.raw = nil
	mov.header = NewHeader()
	mov.frames = []Frame{{Index: 0}}
	mov.modified = false
}

// Close forgets the path, header, raw bytes and frame sequence.
func (mov *Movie) Close() {
	mov.path = ""
	mov.raw = nil
	mov.header = Header{}
	mov.frames = mov.frames[:0]
	mov.modified = false
}

// Path of the file the movie was opened from or saved to. Empty if the movie
// has never been opened or saved.
func (mov *Movie) Path() string {
	return mov.path
}

// Header returns a copy of the movie header.
func (mov *Movie) Header() Header {
	return mov.header
}

// RawBytes returns the data the movie was most recently loaded from. The
// returned slice must not be modified.
func (mov *Movie) RawBytes() []byte {
	return mov.raw
}

// Modified returns true if the frame sequence has changed since the movie was
// loaded or saved.
func (mov *Movie) Modified() bool {
	return mov.modified
}

// Len returns the number of frames in the movie.
func (mov *Movie) Len() int {
	return len(mov.frames)
}

// Frame returns the frame at the index. The index must be in range.
func (mov *Movie) Frame(idx int) Frame {
	return mov.frames[idx]
}

// Frames returns a copy of the frame sequence.
func (mov *Movie) Frames() []Frame {
	c := make([]Frame, len(mov.frames))
	copy(c, mov.frames)
	return c
}

// Stats returns the DerivedStats view of the movie.
func (mov *Movie) Stats() Stats {
	return Stats{mov: mov}
}

// CheckIndex returns a BoundsError if the index is not in the frame sequence.
// If allowEnd is true the index one past the last frame is accepted, which is
// the correct check for insertion points.
func (mov *Movie) CheckIndex(idx int, allowEnd bool) error {
	limit := len(mov.frames)
	if allowEnd {
		limit++
	}
	if idx < 0 || idx >= limit {
		return curated.Errorf(BoundsError, idx, len(mov.frames))
	}
	return nil
}
