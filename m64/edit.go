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
	"fmt"
	"slices"

	"github.com/jetsetilly/m64edit/curated"
)

// apply is the only way the frame sequence is changed. the mutation is run
// and then every frame from the from index onwards is renumbered.
func (mov *Movie) apply(from int, mutation func()) {
	mutation()
	mov.renumber(from)
	mov.modified = true
}

func (mov *Movie) renumber(from int) {
	for i := max(from, 0); i < len(mov.frames); i++ {
		mov.frames[i].Index = i
	}
}

// Renumber sets the Index field of every frame from the index onwards to the
// position of the frame in the sequence. The edit functions all do this
// themselves so it should never be necessary to call Renumber() directly.
func (mov *Movie) Renumber(from int) {
	mov.renumber(from)
}

// sortedUnique returns a sorted copy of the indices with duplicates removed.
func sortedUnique(indices []int) []int {
	s := slices.Clone(indices)
	slices.Sort(s)
	return slices.Compact(s)
}

// InsertBlank inserts a frame with no input at the index. Frames at or after
// the index move one position later. An index equal to Len() appends the
// frame.
func (mov *Movie) InsertBlank(at int) {
	mov.apply(at, func() {
		mov.frames = slices.Insert(mov.frames, at, Frame{})
	})
}

// InsertBlanks inserts n frames with no input at the index. Returns a
// LimitError if the movie would grow past MaxFrames. Nothing happens if n is
// less than one.
func (mov *Movie) InsertBlanks(at int, n int) error {
	if n < 1 {
		return nil
	}
	if err := mov.checkGrowth(n); err != nil {
		return err
	}
	mov.apply(at, func() {
		mov.frames = slices.Insert(mov.frames, at, make([]Frame, n)...)
	})
	return nil
}

// checkGrowth returns a LimitError if adding n frames would take the movie
// past MaxFrames.
func (mov *Movie) checkGrowth(n int) error {
	if n > MaxFrames-len(mov.frames) {
		return curated.Errorf(LimitError, fmt.Sprintf("cannot add %d frames to %d frames (maximum %d)", n, len(mov.frames), MaxFrames))
	}
	return nil
}

// Delete removes the frames at the indices. Later frames move to fill the
// gaps. If every frame is deleted the movie is left with one blank frame.
func (mov *Movie) Delete(indices []int) {
	if len(indices) == 0 {
		return
	}
	targets := sortedUnique(indices)

	mov.apply(targets[0], func() {
		frames := mov.frames[:0]
		t := 0
		for i, f := range mov.frames {
			if t < len(targets) && targets[t] == i {
				t++
				continue
			}
			frames = append(frames, f)
		}
		mov.frames = frames

		if len(mov.frames) == 0 {
			mov.frames = append(mov.frames, Frame{})
		}
	})
}

// SetInput changes the input of the frame at the index.
func (mov *Movie) SetInput(idx int, in Input) {
	mov.apply(idx, func() {
		mov.frames[idx].Input = in
	})
}

// Selection returns a Transfer containing a copy of the frames at the
// indices. The offsets in the transfer are relative to the smallest index.
// Returns nil if there are no indices.
func (mov *Movie) Selection(indices []int) *Transfer {
	if len(indices) == 0 {
		return nil
	}
	targets := sortedUnique(indices)

	base := targets[0]
	entries := make([]TransferEntry, len(targets))
	for i, idx := range targets {
		entries[i] = TransferEntry{
			Offset: idx - base,
			Input:  mov.frames[idx].Input,
		}
	}

	return NewTransfer(entries, targets[len(targets)-1]-base+1)
}

// CopySelection publishes a Transfer of the frames at the indices to the
// movie's clipboard. Nothing is published if there are no indices.
func (mov *Movie) CopySelection(indices []int) error {
	t := mov.Selection(indices)
	if t == nil {
		return nil
	}
	return PublishTransfer(mov.clipboard, t)
}

// CutSelection is the same as CopySelection() followed by Delete(). The frames
// are not deleted if the transfer could not be published.
func (mov *Movie) CutSelection(indices []int) error {
	if err := mov.CopySelection(indices); err != nil {
		return err
	}
	mov.Delete(indices)
	return nil
}

// clipboardTransfer returns the transfer in the clipboard or nil if the
// clipboard does not hold frame data.
func (mov *Movie) clipboardTransfer() (*Transfer, error) {
	content, err := ReadClipboard(mov.clipboard)
	if err != nil {
		return nil, err
	}
	switch c := content.(type) {
	case FrameContent:
		return c.Transfer, nil
	case ForeignContent:
		return nil, nil
	}
	return nil, nil
}

// PasteOverwrite replaces the input of the frames at the indices with the
// frames in the clipboard.
//
// The indices are considered relative to the smallest of them. A frame is
// replaced only if its relative position is also an offset in the transfer.
// Transfer entries with no matching index are dropped.
//
// Nothing happens if there are no indices or if the clipboard holds no frame
// data. The only error returned is from the clipboard itself.
func (mov *Movie) PasteOverwrite(indices []int) error {
	if len(indices) == 0 {
		return nil
	}

	t, err := mov.clipboardTransfer()
	if err != nil || t == nil {
		return err
	}

	targets := sortedUnique(indices)
	base := targets[0]

	mov.apply(base, func() {
		// both lists are sorted so matching is a single pass through each
		i, j := 0, 0
		for i < len(targets) && j < len(t.entries) {
			rel := targets[i] - base
			switch {
			case rel == t.entries[j].Offset:
				mov.frames[targets[i]].Input = t.entries[j].Input
				i++
				j++
			case rel < t.entries[j].Offset:
				i++
			default:
				j++
			}
		}
	})

	return nil
}

// PasteInsert inserts the frames in the clipboard at the index, in offset
// order. Gaps in a sparse transfer are not reproduced. Frames at or after the
// index move later by the number of frames inserted.
//
// Nothing happens if the clipboard holds no frame data. Returns a LimitError
// if the movie would grow past MaxFrames.
func (mov *Movie) PasteInsert(at int) error {
	t, err := mov.clipboardTransfer()
	if err != nil || t == nil {
		return err
	}
	if err := mov.checkGrowth(len(t.entries)); err != nil {
		return err
	}

	mov.apply(at, func() {
		ins := make([]Frame, len(t.entries))
		for i, e := range t.entries {
			ins[i].Input = e.Input
		}
		mov.frames = slices.Insert(mov.frames, at, ins...)
	})

	return nil
}

// Paste writes the transfer over the frames starting at the index, repeating
// the transfer the number of times given by multiplicity. The number of
// frames covered is the transfer's span multiplied by the multiplicity.
// Positions in the span that have no transfer entry are left as they are.
//
// If insert is true then blank frames are inserted at the index before
// writing, so that no existing frames are overwritten.
//
// The movie's refresh function is called when the paste has completed.
// Nothing happens if the transfer is nil or the multiplicity is less than
// one. Returns a LimitError if inserting would take the movie past MaxFrames.
func (mov *Movie) Paste(t *Transfer, index int, insert bool, multiplicity int) error {
	if t == nil || multiplicity < 1 {
		return nil
	}

	// an overwrite never reaches past the end of the movie so one extra
	// repetition is always enough
	if multiplicity > MaxFrames/t.span {
		if insert {
			return curated.Errorf(LimitError, fmt.Sprintf("cannot paste %d frames %d times", t.span, multiplicity))
		}
		multiplicity = MaxFrames/t.span + 1
	}

	count := t.span * multiplicity

	if insert {
		if err := mov.checkGrowth(count); err != nil {
			return err
		}
	}

	mov.apply(index, func() {
		if insert {
			mov.frames = slices.Insert(mov.frames, index, make([]Frame, count)...)
		}

		end := min(index+count, len(mov.frames))
		for p := index; p < end; p++ {
			if in, ok := t.lookup((p - index) % t.span); ok {
				mov.frames[p].Input = in
			}
		}
	})

	if mov.refresh != nil {
		mov.refresh()
	}

	return nil
}

// PasteClipboard is the same as Paste() but with the transfer currently in
// the clipboard. Nothing happens if the clipboard holds no frame data.
func (mov *Movie) PasteClipboard(index int, insert bool, multiplicity int) error {
	t, err := mov.clipboardTransfer()
	if err != nil || t == nil {
		return err
	}
	return mov.Paste(t, index, insert, multiplicity)
}
