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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/prefs"
	"github.com/jetsetilly/m64edit/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "m64edit_prefs_test")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading prefs file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func newDisk(t *testing.T, fn string) *prefs.Disk {
	t.Helper()
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	return dsk
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk := newDisk(t, fn)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk := newDisk(t, fn)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "foo :: bar\n")

	v.SetMaxLen(2)
	test.ExpectEquality(t, v.String(), "ba")
	test.ExpectSuccess(t, v.Set("qux"))
	test.ExpectEquality(t, v.String(), "qu")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk := newDisk(t, fn)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 99\n")

	err := v.Set("---")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.ConversionError))

	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk := newDisk(t, fn)

	var v prefs.Float
	test.ExpectSuccess(t, dsk.Add("ratio", &v))
	test.ExpectEquality(t, v.Get().(float64), 0.0)

	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get().(float64), 1.5)
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Get().(float64), 2.0)

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "ratio :: 2.000\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the update
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestAdd(t *testing.T) {
	dsk := newDisk(t, tmpPrefFile(t))

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectFailure(t, dsk.Add("foo", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("editor.prompt", &v))
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	var v prefs.Int
	var s prefs.String

	// missing file is created when saveOnFail is true
	dsk := newDisk(t, fn)
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set(7))
	err := dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	cmpPrefFile(t, fn, "number :: 7\n")

	// a second disk sharing the same file. existing keys are preserved
	dskB := newDisk(t, fn)
	test.ExpectSuccess(t, dskB.Add("name", &s))
	test.ExpectSuccess(t, s.Set("mario"))
	test.DemandSuccess(t, dskB.Save())
	cmpPrefFile(t, fn, "name :: mario\nnumber :: 7\n")

	// load changes the value of the first disk
	test.ExpectSuccess(t, v.Set(0))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 7)
}

func TestLoadDefunct(t *testing.T) {
	fn := tmpPrefFile(t)
	data := fmt.Sprintf("%s\nclipboard.format :: old\nnumber :: 3\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	var v prefs.Int
	dsk := newDisk(t, fn)
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 3)

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 3\n")
}

func TestLoadInvalid(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0o600))

	var v prefs.Int
	dsk := newDisk(t, fn)
	test.ExpectSuccess(t, dsk.Add("number", &v))
	err := dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidFile))
}

func TestLoadCommandLine(t *testing.T) {
	fn := tmpPrefFile(t)

	var v prefs.Int
	dsk := newDisk(t, fn)
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set(1))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("number::42")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 42)

	// the overridden value is not written to disk
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 1\n")
}
