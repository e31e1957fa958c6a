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

package m64_test

import (
	"encoding/binary"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/m64"
	"github.com/jetsetilly/m64edit/test"
)

func TestNewTransfer(t *testing.T) {
	test.ExpectEquality(t, m64.NewTransfer(nil, 10), nil)

	// offsets are normalised and sorted. the repeated offset keeps the last
	// entry. the span is extended to cover every entry
	tr := m64.NewTransfer([]m64.TransferEntry{
		{Offset: 7, Input: 3},
		{Offset: 5, Input: 1},
		{Offset: 7, Input: 4},
	}, 1)
	test.DemandEquality(t, tr.Len(), 2)
	test.ExpectEquality(t, tr.Span(), 3)

	e := tr.Entries()
	test.ExpectEquality(t, e[0], m64.TransferEntry{Offset: 0, Input: 1})
	test.ExpectEquality(t, e[1], m64.TransferEntry{Offset: 2, Input: 4})

	// entries are a copy
	e[0].Input = 100
	test.ExpectEquality(t, tr.Entries()[0].Input, m64.Input(1))
}

func TestTransferPayload(t *testing.T) {
	tr := m64.NewTransfer([]m64.TransferEntry{
		{Offset: 0, Input: 0x11223344},
		{Offset: 4, Input: 0x80},
	}, 6)

	payload := tr.Encode()

	// the exact shape of the payload
	test.DemandEquality(t, len(payload), 12+2*8)
	test.ExpectEquality(t, string(payload[:4]), "M64T")
	test.ExpectEquality(t, binary.LittleEndian.Uint32(payload[4:]), uint32(6))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(payload[8:]), uint32(2))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(payload[12:]), uint32(0))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(payload[16:]), uint32(0x11223344))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(payload[20:]), uint32(4))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(payload[24:]), uint32(0x80))

	dec, err := m64.DecodeTransfer(payload)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.Span(), 6)
	test.DemandEquality(t, dec.Len(), 2)
	test.ExpectEquality(t, dec.Entries()[1], m64.TransferEntry{Offset: 4, Input: 0x80})
}

func TestDecodeTransferErrors(t *testing.T) {
	_, err := m64.DecodeTransfer([]byte("hello world"))
	test.ExpectSuccess(t, curated.Is(err, m64.TransferError))

	_, err = m64.DecodeTransfer(nil)
	test.ExpectSuccess(t, curated.Is(err, m64.TransferError))

	// truncated entry list
	payload := m64.NewTransfer([]m64.TransferEntry{{Offset: 0, Input: 1}}, 1).Encode()
	_, err = m64.DecodeTransfer(payload[:len(payload)-1])
	test.ExpectSuccess(t, curated.Is(err, m64.TransferError))

	// entry list missing
	_, err = m64.DecodeTransfer(payload[:12])
	test.ExpectSuccess(t, curated.Is(err, m64.TransferError))

	// declared span too large
	huge := slices.Clone(payload)
	binary.LittleEndian.PutUint32(huge[4:], math.MaxUint32)
	_, err = m64.DecodeTransfer(huge)
	test.ExpectSuccess(t, curated.Is(err, m64.TransferError))

	// offsets spread too far apart
	wide := m64.NewTransfer([]m64.TransferEntry{{Offset: 0, Input: 1}, {Offset: m64.MaxFrames, Input: 2}}, 0).Encode()
	_, err = m64.DecodeTransfer(wide)
	test.ExpectSuccess(t, curated.Is(err, m64.TransferError))

	// the largest span is accepted
	binary.LittleEndian.PutUint32(huge[4:], m64.MaxFrames)
	tr, err := m64.DecodeTransfer(huge)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr.Span(), m64.MaxFrames)
}

func TestReadClipboard(t *testing.T) {
	med := &fakeMedium{}

	c, err := m64.ReadClipboard(med)
	test.DemandSuccess(t, err)
	_, ok := c.(m64.ForeignContent)
	test.ExpectSuccess(t, ok)

	tr := m64.NewTransfer([]m64.TransferEntry{{Offset: 0, Input: 1}}, 1)
	test.DemandSuccess(t, m64.PublishTransfer(med, tr))
	c, err = m64.ReadClipboard(med)
	test.DemandSuccess(t, err)
	switch c := c.(type) {
	case m64.FrameContent:
		test.ExpectEquality(t, c.Transfer.Len(), 1)
	default:
		t.Errorf("expected FrameContent not %T", c)
	}

	// reading doesn't empty the medium
	c, err = m64.ReadClipboard(med)
	test.DemandSuccess(t, err)
	_, ok = c.(m64.FrameContent)
	test.ExpectSuccess(t, ok)

	med.err = errors.New("medium failure")
	_, err = m64.ReadClipboard(med)
	test.ExpectFailure(t, err)
}
