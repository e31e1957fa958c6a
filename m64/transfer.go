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
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/logger"
)

// TransferEntry is one frame in a Transfer. The offset is relative to the
// first frame of the transfer.
type TransferEntry struct {
	Offset int
	Input  Input
}

// Transfer is a detached copy of some frames from a movie. It is created by
// Movie.Selection() and is applied with the paste functions. A Transfer is
// never changed once it has been created.
type Transfer struct {
	// sorted by offset. offsets are unique and the first offset is zero
	entries []TransferEntry

	// number of frames covered by the transfer, including frames in the
	// covered range that were not selected
	span int
}

// NewTransfer creates a Transfer from a list of entries. Offsets are
// normalised so that the smallest is zero. Where offsets are repeated the
// last entry wins. The span will be at least large enough to cover every
// entry.
//
// Returns nil if the list is empty.
func NewTransfer(entries []TransferEntry, span int) *Transfer {
	if len(entries) == 0 {
		return nil
	}

	byOffset := make(map[int]Input, len(entries))
	lowest := entries[0].Offset
	for _, e := range entries {
		byOffset[e.Offset] = e.Input
		lowest = min(lowest, e.Offset)
	}

	t := &Transfer{
		entries: make([]TransferEntry, 0, len(byOffset)),
	}
	for o, in := range byOffset {
		t.entries = append(t.entries, TransferEntry{Offset: o - lowest, Input: in})
	}
	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].Offset < t.entries[j].Offset
	})

	t.span = max(span, t.entries[len(t.entries)-1].Offset+1)

	return t
}

// Entries returns a copy of the entries in ascending offset order.
func (t *Transfer) Entries() []TransferEntry {
	c := make([]TransferEntry, len(t.entries))
	copy(c, t.entries)
	return c
}

// Len is the number of frames in the transfer.
func (t *Transfer) Len() int {
	return len(t.entries)
}

// Span is the number of frames covered by the transfer. For a contiguous
// selection this is the same as Len(). For a sparse selection it includes the
// unselected frames.
func (t *Transfer) Span() int {
	return t.span
}

// lookup returns the input at the offset and whether there is an entry for it.
func (t *Transfer) lookup(offset int) (Input, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Offset >= offset
	})
	if i < len(t.entries) && t.entries[i].Offset == offset {
		return t.entries[i].Input, true
	}
	return 0, false
}

func (t *Transfer) String() string {
	return fmt.Sprintf("%d frames spanning %d", len(t.entries), t.span)
}

// ClipboardFormat is the tag that identifies frame data in a Medium.
const ClipboardFormat = "FrameInputData"

// transfer payload layout:
//
//	magic (4 bytes), span (uint32), count (uint32), count x (offset uint32, input uint32)
//
// all values little-endian.
var transferMagic = []byte("M64T")

const transferHeaderSize = 12

// TransferError is returned by DecodeTransfer() if the payload is not a valid
// transfer.
const TransferError = "m64 transfer: %v"

// Encode returns the clipboard payload for the transfer.
func (t *Transfer) Encode() []byte {
	b := make([]byte, 0, transferHeaderSize+len(t.entries)*InputSize*2)
	b = append(b, transferMagic...)
	b = binary.LittleEndian.AppendUint32(b, uint32(t.span))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(t.entries)))
	for _, e := range t.entries {
		b = binary.LittleEndian.AppendUint32(b, uint32(e.Offset))
		b = binary.LittleEndian.AppendUint32(b, uint32(e.Input))
	}
	return b
}

// DecodeTransfer recreates a Transfer from a clipboard payload.
func DecodeTransfer(payload []byte) (*Transfer, error) {
	if len(payload) < transferHeaderSize || !bytes.HasPrefix(payload, transferMagic) {
		return nil, curated.Errorf(TransferError, "not a transfer payload")
	}

	span := int(binary.LittleEndian.Uint32(payload[4:]))
	count := int(binary.LittleEndian.Uint32(payload[8:]))
	body := payload[transferHeaderSize:]
	if count == 0 || len(body) != count*InputSize*2 {
		return nil, curated.Errorf(TransferError, "payload length does not match entry count")
	}

	entries := make([]TransferEntry, count)
	for i := range entries {
		entries[i].Offset = int(binary.LittleEndian.Uint32(body[i*8:]))
		entries[i].Input = DecodeInput(body[i*8+4:])
	}

	t := NewTransfer(entries, span)
	if t.span > MaxFrames {
		return nil, curated.Errorf(TransferError, fmt.Sprintf("span of %d frames is too large", t.span))
	}

	return t, nil
}

// Medium is the slot used to exchange transfers. It holds at most one payload
// at a time and publishing replaces whatever was there before.
type Medium interface {
	// Publish the payload under the tag.
	Publish(tag string, payload []byte) error

	// TryConsume returns the payload if the slot holds one with a matching
	// tag. The payload remains in the slot. The boolean is false if the slot
	// is empty or holds something with a different tag.
	TryConsume(tag string) ([]byte, bool, error)
}

// noMedium is used by movies created without a clipboard.
type noMedium struct{}

func (noMedium) Publish(tag string, payload []byte) error {
	return nil
}

func (noMedium) TryConsume(tag string) ([]byte, bool, error) {
	return nil, false, nil
}

// Content is the interpretation of whatever is in a Medium. It is either
// FrameContent or ForeignContent.
type Content interface {
	content()
}

// FrameContent is a Medium holding frame data.
type FrameContent struct {
	Transfer *Transfer
}

// ForeignContent is a Medium that is empty or that holds something that isn't
// frame data.
type ForeignContent struct{}

func (FrameContent) content()   {}
func (ForeignContent) content() {}

// PublishTransfer places the transfer in the medium.
func PublishTransfer(med Medium, t *Transfer) error {
	return med.Publish(ClipboardFormat, t.Encode())
}

// ReadClipboard interprets the content of the medium. Only errors from the
// medium itself are returned. A payload that can't be decoded is
// ForeignContent.
func ReadClipboard(med Medium) (Content, error) {
	payload, ok, err := med.TryConsume(ClipboardFormat)
	if err != nil {
		return nil, err
	}
	if !ok {
		return ForeignContent{}, nil
	}

	t, err := DecodeTransfer(payload)
	if err != nil {
		logger.Log(logger.Allow, "m64", err)
		return ForeignContent{}, nil
	}

	return FrameContent{Transfer: t}, nil
}
