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

package editor_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/jetsetilly/m64edit/clipboard"
	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/editor"
	"github.com/jetsetilly/m64edit/logger"
	"github.com/jetsetilly/m64edit/m64"
	"github.com/jetsetilly/m64edit/terminal/plainterm"
	"github.com/jetsetilly/m64edit/test"
)

// newEditor returns an editor reading commands from the script. Output is
// captured by the returned CompareWriter.
func newEditor(t *testing.T, script string) (*editor.Editor, *test.CompareWriter) {
	t.Helper()
	out := &test.CompareWriter{}
	term := plainterm.NewPlainTerminal(strings.NewReader(script), out)
	ed, err := editor.NewEditor(term, filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	return ed, out
}

// execute commands, all of which must succeed.
func execute(t *testing.T, ed *editor.Editor, commands ...string) {
	t.Helper()
	for _, c := range commands {
		test.DemandSuccess(t, ed.Exec(c), c)
	}
}

// expectInputs checks the input of every frame in the movie.
func expectInputs(t *testing.T, mov *m64.Movie, inputs ...m64.Input) {
	t.Helper()
	test.DemandEquality(t, mov.Len(), len(inputs))
	for i, in := range inputs {
		test.ExpectEquality(t, mov.Frame(i).Input, in, i)
		test.ExpectEquality(t, mov.Frame(i).Index, i, i)
	}
}

var (
	blank = m64.Input(0)
	a     = blank.Press(m64.A)
	b     = blank.Press(m64.B)
)

func TestNoMovie(t *testing.T) {
	ed, _ := newEditor(t, "")

	test.ExpectSuccess(t, ed.Exec(""))
	test.ExpectSuccess(t, ed.Exec("  # comment"))
	test.ExpectSuccess(t, curated.Is(ed.Exec("list"), editor.NoMovie))
	test.ExpectSuccess(t, curated.Is(ed.Exec("SAVE"), editor.NoMovie))
	test.ExpectSuccess(t, curated.Is(ed.Exec("FOO"), editor.UnknownCommand))
	test.ExpectSuccess(t, ed.Exec("HELP"))
}

func TestInput(t *testing.T) {
	ed, _ := newEditor(t, "")
	execute(t, ed,
		"NEW",
		"INSERT 1 4",
		"SET 0 A B X=5 Y=-3",
		"PRESS 1-2 Z",
		"RELEASE 0 b",
		"STICK 3 10 -10",
		"SET 4 0x10",
	)

	z := blank.Press(m64.Z)
	expectInputs(t, ed.Movie(), a.Stick(5, -3), z, z, blank.Stick(10, -10), blank.Press(m64.Start))
	test.ExpectSuccess(t, ed.Movie().Modified())

	execute(t, ed, "SET 0-4 NONE")
	expectInputs(t, ed.Movie(), blank, blank, blank, blank, blank)

	test.ExpectSuccess(t, curated.Is(ed.Exec("SET 5 A"), m64.BoundsError))
	test.ExpectSuccess(t, curated.Is(ed.Exec("SET 0"), editor.CommandError))
	test.ExpectSuccess(t, curated.Is(ed.Exec("PRESS 0 FOO"), editor.EditorError))
	test.ExpectSuccess(t, curated.Is(ed.Exec("PRESS 0"), editor.EditorError))
	test.ExpectSuccess(t, curated.Is(ed.Exec("STICK 0 200 0"), editor.CommandError))
	test.ExpectSuccess(t, curated.Is(ed.Exec("STICK 0 1"), editor.CommandError))
}

func TestInsertDelete(t *testing.T) {
	ed, out := newEditor(t, "")
	execute(t, ed,
		"NEW",
		"INSERT 0",
		"INSERT 2 3",
		"SET 4 A",
	)
	test.ExpectEquality(t, ed.Movie().Len(), 5)
	test.ExpectSuccess(t, strings.Contains(out.String(), "inserted 3 frames at 2\n"))

	test.ExpectSuccess(t, curated.Is(ed.Exec("INSERT 6"), m64.BoundsError))
	test.ExpectSuccess(t, curated.Is(ed.Exec("INSERT 0 0"), editor.CommandError))

	// counts that would grow the movie past its limit
	test.ExpectSuccess(t, curated.Is(ed.Exec("INSERT 0 4611686018427387904"), editor.CommandError))
	test.ExpectSuccess(t, curated.Is(ed.Exec(fmt.Sprintf("INSERT 0 %d", m64.MaxFrames)), m64.LimitError))
	test.ExpectEquality(t, ed.Movie().Len(), 5)

	execute(t, ed, "DELETE 0-3")
	expectInputs(t, ed.Movie(), a)

	// deleting every frame leaves a single blank frame
	execute(t, ed, "DELETE 0")
	expectInputs(t, ed.Movie(), blank)
}

func TestCopyPaste(t *testing.T) {
	ed, _ := newEditor(t, "")
	execute(t, ed,
		"NEW",
		"INSERT 1 5",
		"SET 0 A",
		"SET 2 B",
		"COPY 0,2",
		"PASTE 3,5",
	)
	expectInputs(t, ed.Movie(), a, blank, b, a, blank, b)

	execute(t, ed, "PASTEINSERT 0")
	expectInputs(t, ed.Movie(), a, b, a, blank, b, a, blank, b)

	// tiled paste with insertion. the span of the transfer is three frames
	execute(t, ed, "PASTEN 8 2 INSERT")
	expectInputs(t, ed.Movie(), a, b, a, blank, b, a, blank, b, a, blank, b, a, blank, b)

	// tiled paste without insertion. gaps in the transfer leave frames as
	// they are
	execute(t, ed, "PASTEN 0 1")
	expectInputs(t, ed.Movie(), a, b, b, blank, b, a, blank, b, a, blank, b, a, blank, b)

	execute(t, ed, "CUT 0-1")
	test.ExpectEquality(t, ed.Movie().Len(), 12)

	// clipboard now contains the cut frames
	execute(t, ed, "PASTEINSERT 12")
	test.ExpectEquality(t, ed.Movie().Len(), 14)
	test.ExpectEquality(t, ed.Movie().Frame(12).Input, a)
	test.ExpectEquality(t, ed.Movie().Frame(13).Input, b)

	test.ExpectSuccess(t, curated.Is(ed.Exec("PASTEN 0 0"), editor.CommandError))
	test.ExpectSuccess(t, curated.Is(ed.Exec("PASTEN 0 1 OVER"), editor.CommandError))
	test.ExpectSuccess(t, curated.Is(ed.Exec("PASTEINSERT 15"), m64.BoundsError))
}

func TestPasteLimits(t *testing.T) {
	ed, _ := newEditor(t, "")
	execute(t, ed,
		"NEW",
		"INSERT 1 2",
		"SET 0 A",
		"COPY 0",
	)

	test.ExpectSuccess(t, curated.Is(ed.Exec("PASTEN 0 4611686018427387904 INSERT"), editor.CommandError))
	test.ExpectSuccess(t, curated.Is(ed.Exec(fmt.Sprintf("PASTEN 0 %d INSERT", m64.MaxFrames)), m64.LimitError))
	expectInputs(t, ed.Movie(), a, blank, blank)

	// an overwrite stops at the end of the movie however large the count
	execute(t, ed, fmt.Sprintf("PASTEN 1 %d", m64.MaxFrames))
	expectInputs(t, ed.Movie(), a, a, a)
}

func TestPasteForeign(t *testing.T) {
	ed, out := newEditor(t, "")
	execute(t, ed, "NEW", "INSERT 0 2")

	// the default medium is shared by the process
	slot, err := clipboard.New(clipboard.Settings{})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, slot.Publish("text", []byte("hello")))

	out.Clear()
	execute(t, ed, "PASTE 0", "PASTEINSERT 0", "PASTEN 0 3 INSERT")
	test.ExpectEquality(t, ed.Movie().Len(), 3)
	test.ExpectEquality(t, strings.Count(out.String(), "clipboard does not contain frame data\n"), 3)
}

func TestSharedClipboard(t *testing.T) {
	mr, err := miniredis.Run()
	test.DemandSuccess(t, err)
	defer mr.Close()

	edA, _ := newEditor(t, "")
	edB, _ := newEditor(t, "")

	for _, ed := range []*editor.Editor{edA, edB} {
		execute(t, ed,
			"PREFS clipboard.redis.addr "+mr.Addr(),
			"PREFS clipboard.medium redis",
			"NEW",
		)
	}

	execute(t, edA, "INSERT 0 2", "SET 0 A", "SET 2 B", "COPY 0-2")
	execute(t, edB, "PASTEINSERT 0")
	expectInputs(t, edB.Movie(), a, blank, b, blank)

	test.ExpectSuccess(t, mr.Exists(clipboard.DefaultRedisKey))
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "a.m64")

	ed, out := newEditor(t, "")
	execute(t, ed,
		"NEW",
		"INSERT 0 2",
		"SET 1 A",
		"SAVE "+pth,
	)
	test.ExpectSuccess(t, strings.Contains(out.String(), "saved 3 frames to "+pth))
	test.ExpectFailure(t, ed.Movie().Modified())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), m64.HeaderSize+3*m64.InputSize)

	execute(t, ed, "NEW", "OPEN "+pth)
	expectInputs(t, ed.Movie(), blank, a, blank)
	test.ExpectEquality(t, ed.Movie().Path(), pth)

	// the current movie is unchanged if a file can't be opened
	err = ed.Exec("OPEN " + filepath.Join(dir, "missing.m64"))
	test.ExpectSuccess(t, curated.Is(err, m64.IOError))
	test.ExpectEquality(t, ed.Movie().Path(), pth)

	// SAVE without an argument uses the path of the movie
	execute(t, ed, "DELETE 0", "SAVE")
	data, err = os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), m64.HeaderSize+2*m64.InputSize)

	execute(t, ed, "CLOSE")
	test.ExpectEquality(t, ed.Movie(), (*m64.Movie)(nil))
	test.ExpectSuccess(t, curated.Is(ed.Exec("INFO"), editor.NoMovie))
}

func TestSaveUnnamed(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	ed, _ := newEditor(t, "")
	execute(t, ed, "NEW", "SAVE")

	test.ExpectSuccess(t, strings.HasPrefix(ed.Movie().Path(), "movie_"))
	test.ExpectSuccess(t, strings.HasSuffix(ed.Movie().Path(), ".m64"))
	_, err = os.Stat(ed.Movie().Path())
	test.ExpectSuccess(t, err)
}

func TestList(t *testing.T) {
	ed, out := newEditor(t, "")
	execute(t, ed,
		"PREFS editor.listlength 10",
		"NEW",
		"INSERT 0 29",
		"SET 12 A",
	)

	lines := func() int {
		n := strings.Count(out.String(), "\n")
		out.Clear()
		return n
	}

	out.Clear()
	execute(t, ed, "LIST")
	test.ExpectEquality(t, lines(), 10)

	// listing continues from the previous listing
	execute(t, ed, "LIST")
	test.ExpectSuccess(t, strings.Contains(out.String(), m64.Frame{Index: 12, Input: a}.String()))
	test.ExpectEquality(t, lines(), 10)

	execute(t, ed, "LIST 25")
	test.ExpectEquality(t, lines(), 5)

	// wraps around to the start of the movie
	execute(t, ed, "LIST")
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), m64.Frame{Index: 0}.String()))
	test.ExpectEquality(t, lines(), 10)

	execute(t, ed, "LIST 1,3-4")
	test.ExpectEquality(t, lines(), 3)

	test.ExpectSuccess(t, curated.Is(ed.Exec("LIST 30"), m64.BoundsError))
}

func TestInfoStats(t *testing.T) {
	ed, out := newEditor(t, "")
	execute(t, ed, "NEW", "INSERT 0 59", "SET 0-9 A")

	out.Clear()
	execute(t, ed, "INFO")
	test.ExpectSuccess(t, strings.Contains(out.String(), "file: (unsaved)\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "frames: 60\n"))

	out.Clear()
	execute(t, ed, "STATS")
	test.ExpectSuccess(t, strings.Contains(out.String(), ed.Movie().Stats().String()))
}

func TestPrefs(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	out := &test.CompareWriter{}
	ed, err := editor.NewEditor(plainterm.NewPlainTerminal(strings.NewReader(""), out), pth)
	test.DemandSuccess(t, err)

	err = ed.Exec("PREFS clipboard.medium carrier-pigeon")
	test.ExpectSuccess(t, curated.Is(err, clipboard.UnknownError))
	test.ExpectEquality(t, ed.Prefs.ClipboardMedium.String(), clipboard.MediumMemory)

	test.ExpectFailure(t, ed.Exec("PREFS editor.listlength -1"))
	test.ExpectSuccess(t, curated.Is(ed.Exec("PREFS editor.foo 1"), editor.CommandError))
	test.ExpectSuccess(t, curated.Is(ed.Exec("PREFS editor.listlength"), editor.CommandError))

	execute(t, ed, "PREFS editor.listlength 32", "PREFS SAVE")
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "editor.listlength :: 32\n"))

	execute(t, ed, "PREFS DEFAULTS")
	test.ExpectEquality(t, ed.Prefs.ListLength.Get().(int), 0)
	execute(t, ed, "PREFS LOAD")
	test.ExpectEquality(t, ed.Prefs.ListLength.Get().(int), 32)

	// a second editor using the same preferences file
	edB, err := editor.NewEditor(plainterm.NewPlainTerminal(strings.NewReader(""), out), pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, edB.Prefs.ListLength.Get().(int), 32)
}

func TestLog(t *testing.T) {
	ed, out := newEditor(t, "")
	pth := filepath.Join(t.TempDir(), "a.m64")

	execute(t, ed, "LOG CLEAR", "NEW", "SAVE "+pth)

	out.Clear()
	execute(t, ed, "LOG 1")
	test.ExpectEquality(t, out.String(), "editor: saved "+pth+"\n")

	// log entries are echoed to the terminal when the preference is set
	out.Clear()
	execute(t, ed, "PREFS editor.echolog true")
	logger.Log(logger.Allow, "test", "echo")
	test.ExpectEquality(t, out.String(), "test: echo\n")
	execute(t, ed, "PREFS editor.echolog false")

	test.ExpectSuccess(t, curated.Is(ed.Exec("LOG many"), editor.CommandError))
}

func TestHelp(t *testing.T) {
	ed, out := newEditor(t, "")

	execute(t, ed, "HELP")
	test.ExpectSuccess(t, strings.Contains(out.String(), "PASTEINSERT"))

	out.Clear()
	execute(t, ed, "help paste")
	test.ExpectSuccess(t, strings.Contains(out.String(), "  usage: PASTE <frames>\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "distance from the first frame in the list equals a clipboard offset"))
}

func TestMemviz(t *testing.T) {
	ed, _ := newEditor(t, "")
	pth := filepath.Join(t.TempDir(), "movie.dot")

	execute(t, ed, "NEW", "MEMVIZ "+pth)

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestStart(t *testing.T) {
	ed, out := newEditor(t, strings.Join([]string{
		"SET 0 A",
		"FOO",
		"QUIT",
		"QUIT",
		"INSERT 0",
	}, "\n"))

	test.DemandSuccess(t, ed.Start(""))

	// the command after the second QUIT was not run
	expectInputs(t, ed.Movie(), a)

	test.ExpectSuccess(t, strings.Contains(out.String(), "* editor: unknown command (FOO)\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "* movie has unsaved changes"))
}

func TestStartWithFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "a.m64")

	mov := m64.NewMovie(nil, nil)
	mov.InsertBlank(0)
	mov.SetInput(1, b)
	test.DemandSuccess(t, mov.SaveAs(pth))

	// end of input stops the editor
	ed, _ := newEditor(t, "DELETE 0")
	test.DemandSuccess(t, ed.Start(pth))
	expectInputs(t, ed.Movie(), b)

	ed, _ = newEditor(t, "")
	test.ExpectSuccess(t, curated.Is(ed.Start(filepath.Join(t.TempDir(), "missing.m64")), m64.IOError))
}
