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

package clipboard_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/jetsetilly/m64edit/clipboard"
	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/m64"
	"github.com/jetsetilly/m64edit/test"
)

// exercises the slot behaviour common to all implementations.
func testSlot(t *testing.T, slot clipboard.Slot) {
	t.Helper()

	// empty slot
	_, ok, err := slot.TryConsume("foo")
	test.ExpectSuccess(t, err, slot)
	test.ExpectFailure(t, ok, slot)

	test.ExpectSuccess(t, slot.Publish("foo", []byte{1, 2, 3}), slot)

	payload, ok, err := slot.TryConsume("foo")
	test.ExpectSuccess(t, err, slot)
	test.ExpectSuccess(t, ok, slot)
	test.ExpectEquality(t, string(payload), string([]byte{1, 2, 3}), slot)

	// payload remains in the slot after consumption
	_, ok, _ = slot.TryConsume("foo")
	test.ExpectSuccess(t, ok, slot)

	// tag mismatch
	_, ok, err = slot.TryConsume("bar")
	test.ExpectSuccess(t, err, slot)
	test.ExpectFailure(t, ok, slot)

	// last writer wins
	test.ExpectSuccess(t, slot.Publish("bar", []byte("qux")), slot)
	_, ok, _ = slot.TryConsume("foo")
	test.ExpectFailure(t, ok, slot)
	payload, ok, _ = slot.TryConsume("bar")
	test.ExpectSuccess(t, ok, slot)
	test.ExpectEquality(t, string(payload), "qux", slot)

	// transfers survive the round trip through the slot
	tr := m64.NewTransfer([]m64.TransferEntry{
		{Offset: 0, Input: m64.Input(0).Press(m64.A)},
		{Offset: 2, Input: m64.Input(0).Stick(-5, 100)},
	}, 4)
	test.ExpectSuccess(t, m64.PublishTransfer(slot, tr), slot)

	c, err := m64.ReadClipboard(slot)
	test.DemandSuccess(t, err, slot)
	fc, ok := c.(m64.FrameContent)
	test.DemandEquality(t, ok, true, slot)
	test.ExpectEquality(t, fc.Transfer.Span(), 4, slot)
	got := fc.Transfer.Entries()
	test.DemandEquality(t, len(got), 2, slot)
	for i, e := range tr.Entries() {
		test.ExpectEquality(t, got[i], e, slot)
	}
}

func TestMemory(t *testing.T) {
	testSlot(t, clipboard.NewMemory())
}

func TestMemoryCopiesPayload(t *testing.T) {
	mem := clipboard.NewMemory()

	b := []byte{1, 2, 3}
	test.ExpectSuccess(t, mem.Publish("foo", b))
	b[0] = 99

	payload, _, _ := mem.TryConsume("foo")
	test.ExpectEquality(t, payload[0], byte(1))
}

func TestFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "slot")
	testSlot(t, clipboard.NewFile(pth))

	// no temporary files remain
	ents, err := os.ReadDir(filepath.Dir(pth))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ents), 1)
}

func TestFileShared(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "slot")
	a := clipboard.NewFile(pth)
	b := clipboard.NewFile(pth)

	test.ExpectSuccess(t, a.Publish("foo", []byte("bar\nbaz")))
	payload, ok, err := b.TryConsume("foo")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, string(payload), "bar\nbaz")

	err = a.Publish("foo\nbar", nil)
	test.ExpectSuccess(t, curated.Is(err, clipboard.MediumError))
}

func TestFileForeign(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "slot")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("some text without a newline"), 0o600))

	c, err := m64.ReadClipboard(clipboard.NewFile(pth))
	test.ExpectSuccess(t, err)
	_, ok := c.(m64.ForeignContent)
	test.ExpectSuccess(t, ok)
}

func TestRedis(t *testing.T) {
	mr, err := miniredis.Run()
	test.DemandSuccess(t, err)
	defer mr.Close()

	slot := clipboard.NewRedis(mr.Addr(), "", time.Second)
	defer slot.Close()

	testSlot(t, slot)

	test.ExpectSuccess(t, mr.Exists(clipboard.DefaultRedisKey))
	test.ExpectEquality(t, mr.HGet(clipboard.DefaultRedisKey, "tag"), m64.ClipboardFormat)
}

func TestRedisShared(t *testing.T) {
	mr, err := miniredis.Run()
	test.DemandSuccess(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	defer client.Close()

	a := clipboard.NewRedisWithClient(client, "test:clip", 0)
	b := clipboard.NewRedis(mr.Addr(), "test:clip", 0)
	defer b.Close()

	test.ExpectSuccess(t, a.Publish("foo", []byte("bar")))
	payload, ok, err := b.TryConsume("foo")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, string(payload), "bar")

	// something else written to the key by another program
	mr.Del("test:clip")
	mr.HSet("test:clip", "text", "hello")
	c, err := m64.ReadClipboard(b)
	test.ExpectSuccess(t, err)
	_, ok = c.(m64.ForeignContent)
	test.ExpectSuccess(t, ok)
}

func TestRedisUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	test.DemandSuccess(t, err)
	addr := mr.Addr()
	mr.Close()

	slot := clipboard.NewRedis(addr, "", 100*time.Millisecond)
	defer slot.Close()

	err = slot.Publish("foo", []byte("bar"))
	test.ExpectSuccess(t, curated.Is(err, clipboard.MediumError))

	_, ok, err := slot.TryConsume("foo")
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, curated.Is(err, clipboard.MediumError))

	_, err = m64.ReadClipboard(slot)
	test.ExpectFailure(t, err)
}

func TestNew(t *testing.T) {
	a, err := clipboard.New(clipboard.Settings{Medium: "memory"})
	test.DemandSuccess(t, err)
	b, err := clipboard.New(clipboard.Settings{})
	test.DemandSuccess(t, err)

	// the memory medium is shared
	test.ExpectSuccess(t, a.Publish("foo", []byte("bar")))
	_, ok, _ := b.TryConsume("foo")
	test.ExpectSuccess(t, ok)

	r, err := clipboard.New(clipboard.Settings{Medium: "REDIS", RedisAddr: "localhost:0"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "redis (localhost:0 m64edit:clipboard)")

	_, err = clipboard.New(clipboard.Settings{Medium: "carrier pigeon"})
	test.ExpectSuccess(t, curated.Is(err, clipboard.UnknownError))
}
