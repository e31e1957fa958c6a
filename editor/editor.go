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
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/m64edit/clipboard"
	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/logger"
	"github.com/jetsetilly/m64edit/m64"
	"github.com/jetsetilly/m64edit/paths"
	"github.com/jetsetilly/m64edit/prefs"
	"github.com/jetsetilly/m64edit/terminal"
	"github.com/jetsetilly/m64edit/terminal/colorterm/easyterm"
)

// default number of frames shown by LIST when neither the preferences nor the
// terminal specify a length.
const defaultListLength = 20

// prompt shown by interactive terminals.
const (
	prompt         = "> "
	promptModified = "*> "
)

// geometry is implemented by terminals that know their size.
type geometry interface {
	Geometry() easyterm.TermGeometry
}

// Editor is the command line interface for editing a movie.
type Editor struct {
	term  terminal.Terminal
	Prefs *Preferences

	// nil if there is no movie open
	mov *m64.Movie

	// file store used by new movies. nil means the default file store
	files m64.FileStore

	// the clipboard medium named by the preferences
	clip clipboard.Slot

	// where the next LIST without arguments starts
	listFrom int

	// set by QUIT if the movie has unsaved changes. a second QUIT is required
	quitWarned bool
	quit       bool
}

// slot forwards the m64.Medium interface to the editor's current clipboard.
// This allows the clipboard preference to change without replacing the
// movie.
type slot struct {
	ed *Editor
}

func (s slot) Publish(tag string, payload []byte) error {
	return s.ed.clip.Publish(tag, payload)
}

func (s slot) TryConsume(tag string) ([]byte, bool, error) {
	return s.ed.clip.TryConsume(tag)
}

// NewEditor is the preferred method of initialisation for the Editor type.
// Preferences are loaded from the file at prefsPath.
func NewEditor(term terminal.Terminal, prefsPath string) (*Editor, error) {
	ed := &Editor{
		term: term,
	}

	var err error
	ed.Prefs, err = NewPreferences(prefsPath)
	if err != nil {
		return nil, curated.Errorf(EditorError, err)
	}

	ed.clip, err = clipboard.New(ed.Prefs.ClipboardSettings())
	if err != nil {
		return nil, curated.Errorf(EditorError, err)
	}
	logger.Logf(logger.Allow, "editor", "clipboard is %s", ed.clip)

	// changes to the clipboard preferences take effect immediately
	reclip := func(prefs.Value) error {
		clip, err := clipboard.New(ed.Prefs.ClipboardSettings())
		if err != nil {
			return err
		}
		ed.closeClipboard()
		ed.clip = clip
		logger.Logf(logger.Allow, "editor", "clipboard is %s", ed.clip)
		return nil
	}
	ed.Prefs.ClipboardMedium.SetHookPost(reclip)
	ed.Prefs.RedisAddr.SetHookPost(reclip)
	ed.Prefs.RedisKey.SetHookPost(reclip)
	ed.Prefs.RedisTimeout.SetHookPost(reclip)

	ed.Prefs.EchoLog.SetHookPost(func(v prefs.Value) error {
		ed.echoLog(v.(bool))
		return nil
	})
	ed.echoLog(ed.Prefs.EchoLog.Get().(bool))

	return ed, nil
}

func (ed *Editor) echoLog(echo bool) {
	if echo {
		logger.SetEcho(ed.printStyle(terminal.StyleLog), false)
	} else {
		logger.SetEcho(nil, false)
	}
}

func (ed *Editor) closeClipboard() {
	if c, ok := ed.clip.(io.Closer); ok {
		_ = c.Close()
	}
}

// SetFileStore changes how movies are read and written. Affects the current
// movie and any movie opened or created later.
func (ed *Editor) SetFileStore(files m64.FileStore) {
	ed.files = files
	if ed.mov != nil {
		ed.mov.SetFileStore(files)
	}
}

// Movie returns the current movie. Returns nil if there is no movie open.
func (ed *Editor) Movie() *m64.Movie {
	return ed.mov
}

// the callback used by the movie after a paste.
func (ed *Editor) refresh() {
	if ed.listFrom > ed.mov.Len() {
		ed.listFrom = 0
	}
}

// createMovie returns a new blank movie using the editor's clipboard and file
// store.
func (ed *Editor) createMovie() *m64.Movie {
	mov := m64.NewMovie(slot{ed: ed}, ed.refresh)
	if ed.files != nil {
		mov.SetFileStore(ed.files)
	}
	return mov
}

// setMovie makes the movie the current movie.
func (ed *Editor) setMovie(mov *m64.Movie) {
	ed.mov = mov
	ed.listFrom = 0
}

// open the movie file and make it the current movie. the current movie is
// unchanged if the file can't be opened.
func (ed *Editor) open(pth string) error {
	mov := ed.createMovie()
	if err := mov.Open(pth); err != nil {
		return err
	}
	ed.setMovie(mov)
	logger.Logf(logger.Allow, "editor", "opened %s", pth)
	ed.printLine(terminal.StyleFeedback, "%s: %d frames", pth, ed.mov.Len())
	return nil
}

// Start the editor. The movie file is opened if filename is not empty,
// otherwise the editor starts with a new movie. Commands are read from the
// terminal until QUIT or the end of input.
func (ed *Editor) Start(filename string) error {
	if err := ed.term.Initialise(); err != nil {
		return curated.Errorf(EditorError, err)
	}
	defer ed.term.CleanUp()
	defer ed.closeClipboard()

	if filename != "" {
		if err := ed.open(filename); err != nil {
			return err
		}
	} else {
		ed.setMovie(ed.createMovie())
	}

	for !ed.quit {
		p := prompt
		if ed.mov != nil && ed.mov.Modified() {
			p = promptModified
		}

		input, err := ed.term.TermRead(p)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				ed.printLine(terminal.StyleFeedback, "use QUIT to exit")
				continue
			}
			return curated.Errorf(EditorError, err)
		}

		if !ed.term.IsInteractive() {
			ed.printLine(terminal.StyleEcho, input)
		}

		if err := ed.Exec(input); err != nil {
			ed.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// Exec runs a single command. Output is sent to the terminal.
func (ed *Editor) Exec(input string) error {
	tk := tokeniseInput(input)

	command, ok := tk.get()
	if !ok {
		return nil
	}
	command = strings.ToUpper(command)

	if _, ok := help[command]; !ok {
		return curated.Errorf(UnknownCommand, command)
	}

	// any command other than QUIT cancels a previous QUIT warning
	if command != cmdQuit {
		ed.quitWarned = false
	}

	if ed.mov == nil && !noMovieCommands[command] {
		return curated.Errorf(NoMovie)
	}

	err := ed.processTokens(command, tk)
	if err != nil {
		// errors from the m64 package and the clipboard are already
		// sufficiently descriptive
		if curated.IsAny(err) {
			return err
		}
		return curated.Errorf(CommandError, command, err)
	}

	return nil
}

// errUsage is returned when the arguments to a command are wrong.
func errUsage(command string) error {
	return curated.Errorf(CommandError, command, "usage: "+usage[command])
}

// get the next token as a frame list.
func (ed *Editor) frames(command string, tk *tokens) ([]int, error) {
	s, ok := tk.get()
	if !ok {
		return nil, errUsage(command)
	}
	return parseFrames(ed.mov, s)
}

// get the next token as an index. the index can be one past the last frame.
func (ed *Editor) insertionPoint(command string, tk *tokens) (int, error) {
	s, ok := tk.get()
	if !ok {
		return 0, errUsage(command)
	}
	idx, err := parseIndex(s)
	if err != nil {
		return 0, err
	}
	if err := ed.mov.CheckIndex(idx, true); err != nil {
		return 0, err
	}
	return idx, nil
}

// get the next token as a positive count.
func count(command string, tk *tokens) (int, error) {
	s, ok := tk.get()
	if !ok {
		return 0, errUsage(command)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, curated.Errorf(CommandError, command, "count must be a positive number")
	}
	if n > m64.MaxFrames {
		return 0, curated.Errorf(CommandError, command, fmt.Sprintf("count must be no more than %d", m64.MaxFrames))
	}
	return n, nil
}

// frameContent checks that the clipboard contains frame data. Returns false
// with a message to the terminal if it does not.
func (ed *Editor) frameContent() (bool, error) {
	c, err := m64.ReadClipboard(slot{ed: ed})
	if err != nil {
		return false, err
	}
	if _, ok := c.(m64.FrameContent); !ok {
		ed.printLine(terminal.StyleFeedback, "clipboard does not contain frame data")
		return false, nil
	}
	return true, nil
}

// modify the input of each frame with the function.
func (ed *Editor) modify(indices []int, f func(m64.Input) m64.Input) {
	for _, i := range indices {
		ed.mov.SetInput(i, f(ed.mov.Frame(i).Input))
	}
}

func (ed *Editor) processTokens(command string, tk *tokens) error {
	switch command {
	case cmdHelp:
		ed.printHelp(tk)

	case cmdQuit:
		if ed.mov != nil && ed.mov.Modified() && !ed.quitWarned {
			ed.quitWarned = true
			ed.printLine(terminal.StyleError, "movie has unsaved changes. QUIT again to discard them")
			return nil
		}
		ed.quit = true

	case cmdOpen:
		pth, ok := tk.get()
		if !ok {
			return errUsage(command)
		}
		return ed.open(strings.Join(append([]string{pth}, tk.remainder()...), " "))

	case cmdNew:
		if ed.mov == nil {
			ed.setMovie(ed.createMovie())
		} else {
			ed.mov.Reset()
			ed.setMovie(ed.mov)
		}
		ed.printLine(terminal.StyleFeedback, "new movie")

	case cmdSave:
		pth, ok := tk.get()
		if !ok {
			pth = ed.mov.Path()
			if pth == "" {
				pth = paths.UniqueFilename("movie", ed.mov.Header().ROMName()) + ".m64"
			}
		}
		if err := ed.mov.SaveAs(pth); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "editor", "saved %s", pth)
		ed.printLine(terminal.StyleFeedback, "saved %d frames to %s", ed.mov.Len(), pth)

	case cmdClose:
		ed.mov.Close()
		ed.mov = nil

	case cmdInfo:
		pth := ed.mov.Path()
		if pth == "" {
			pth = "(unsaved)"
		} else if ed.mov.Modified() {
			pth += " (modified)"
		}
		ed.printLine(terminal.StyleFeedback, "file: %s", pth)
		ed.printLine(terminal.StyleFeedback, "frames: %d", ed.mov.Len())
		ed.printLine(terminal.StyleFeedback, ed.mov.Header().String())

	case cmdStats:
		ed.printLine(terminal.StyleFeedback, ed.mov.Stats().String())

	case cmdList:
		return ed.list(tk)

	case cmdSet:
		indices, err := ed.frames(command, tk)
		if err != nil {
			return err
		}
		if tk.remaining() == 0 {
			return errUsage(command)
		}
		in, err := parseInput(tk.remainder())
		if err != nil {
			return err
		}
		ed.modify(indices, func(m64.Input) m64.Input { return in })

	case cmdPress, cmdRelease:
		indices, err := ed.frames(command, tk)
		if err != nil {
			return err
		}
		buttons, err := parseButtons(tk.remainder())
		if err != nil {
			return err
		}
		ed.modify(indices, func(in m64.Input) m64.Input {
			for _, b := range buttons {
				if command == cmdPress {
					in = in.Press(b)
				} else {
					in = in.Release(b)
				}
			}
			return in
		})

	case cmdStick:
		indices, err := ed.frames(command, tk)
		if err != nil {
			return err
		}
		if tk.remaining() != 2 {
			return errUsage(command)
		}
		var v [2]int8
		for i := range v {
			s, _ := tk.get()
			n, err := strconv.ParseInt(s, 10, 8)
			if err != nil {
				return curated.Errorf(CommandError, command, "stick values must be between -128 and 127")
			}
			v[i] = int8(n)
		}
		ed.modify(indices, func(in m64.Input) m64.Input { return in.Stick(v[0], v[1]) })

	case cmdInsert:
		at, err := ed.insertionPoint(command, tk)
		if err != nil {
			return err
		}
		n := 1
		if tk.remaining() > 0 {
			n, err = count(command, tk)
			if err != nil {
				return err
			}
		}
		if err := ed.mov.InsertBlanks(at, n); err != nil {
			return err
		}
		ed.printLine(terminal.StyleFeedback, "inserted %d frames at %d", n, at)

	case cmdDelete:
		indices, err := ed.frames(command, tk)
		if err != nil {
			return err
		}
		ed.mov.Delete(indices)
		ed.printLine(terminal.StyleFeedback, "deleted %d frames", len(indices))

	case cmdCopy:
		indices, err := ed.frames(command, tk)
		if err != nil {
			return err
		}
		if err := ed.mov.CopySelection(indices); err != nil {
			return err
		}
		ed.printLine(terminal.StyleFeedback, "copied %d frames", len(indices))

	case cmdCut:
		indices, err := ed.frames(command, tk)
		if err != nil {
			return err
		}
		if err := ed.mov.CutSelection(indices); err != nil {
			return err
		}
		ed.printLine(terminal.StyleFeedback, "cut %d frames", len(indices))

	case cmdPaste:
		indices, err := ed.frames(command, tk)
		if err != nil {
			return err
		}
		if ok, err := ed.frameContent(); !ok {
			return err
		}
		return ed.mov.PasteOverwrite(indices)

	case cmdPasteInsert:
		at, err := ed.insertionPoint(command, tk)
		if err != nil {
			return err
		}
		if ok, err := ed.frameContent(); !ok {
			return err
		}
		return ed.mov.PasteInsert(at)

	case cmdPasteN:
		at, err := ed.insertionPoint(command, tk)
		if err != nil {
			return err
		}
		n, err := count(command, tk)
		if err != nil {
			return err
		}
		insert := false
		if s, ok := tk.get(); ok {
			if strings.ToUpper(s) != cmdInsert {
				return errUsage(command)
			}
			insert = true
		}
		if ok, err := ed.frameContent(); !ok {
			return err
		}
		return ed.mov.PasteClipboard(at, insert, n)

	case cmdMemviz:
		pth, ok := tk.get()
		if !ok {
			memviz.Map(ed.printStyle(terminal.StyleFeedback), ed.mov)
			return nil
		}
		f, err := os.Create(pth)
		if err != nil {
			return err
		}
		memviz.Map(f, ed.mov)
		if err := f.Close(); err != nil {
			return err
		}
		ed.printLine(terminal.StyleFeedback, "movie structure written to %s", pth)

	case cmdLog:
		n := 10
		if s, ok := tk.get(); ok {
			if strings.ToUpper(s) == "CLEAR" {
				logger.Clear()
				return nil
			}
			var err error
			n, err = strconv.Atoi(s)
			if err != nil {
				return errUsage(command)
			}
		}
		logger.Tail(ed.printStyle(terminal.StyleLog), n)

	case cmdPrefs:
		return ed.prefs(tk)
	}

	return nil
}

func (ed *Editor) list(tk *tokens) error {
	length := ed.Prefs.ListLength.Get().(int)
	if length == 0 {
		length = defaultListLength
		if g, ok := ed.term.(geometry); ok {
			if rows := int(g.Geometry().Rows); rows > 2 {
				length = rows - 2
			}
		}
	}

	var indices []int

	if s, ok := tk.get(); ok {
		if strings.ContainsAny(s, ",-") {
			var err error
			indices, err = parseFrames(ed.mov, s)
			if err != nil {
				return err
			}
		} else {
			from, err := parseIndex(s)
			if err != nil {
				return err
			}
			if err := ed.mov.CheckIndex(from, false); err != nil {
				return err
			}
			ed.listFrom = from
		}
	}

	if indices == nil {
		if ed.listFrom >= ed.mov.Len() {
			ed.listFrom = 0
		}
		to := min(ed.listFrom+length, ed.mov.Len())
		for i := ed.listFrom; i < to; i++ {
			indices = append(indices, i)
		}
		ed.listFrom = to
	}

	for _, i := range indices {
		ed.printLine(terminal.StyleFeedback, ed.mov.Frame(i).String())
	}

	return nil
}

func (ed *Editor) prefs(tk *tokens) error {
	s, ok := tk.get()
	if !ok {
		ed.printLine(terminal.StyleFeedback, ed.Prefs.String())
		return nil
	}

	switch strings.ToUpper(s) {
	case "SAVE":
		return ed.Prefs.Save()
	case "LOAD":
		return ed.Prefs.Load()
	case "DEFAULTS":
		ed.Prefs.SetDefaults()
		return nil
	}

	var p interface{ Set(prefs.Value) error }
	switch strings.ToLower(s) {
	case "clipboard.medium":
		p = &ed.Prefs.ClipboardMedium
	case "clipboard.redis.addr":
		p = &ed.Prefs.RedisAddr
	case "clipboard.redis.key":
		p = &ed.Prefs.RedisKey
	case "clipboard.redis.timeout":
		p = &ed.Prefs.RedisTimeout
	case "editor.listlength":
		p = &ed.Prefs.ListLength
	case "editor.echolog":
		p = &ed.Prefs.EchoLog
	default:
		return curated.Errorf(CommandError, cmdPrefs, "unknown preference ("+s+")")
	}

	v, ok := tk.get()
	if !ok {
		return errUsage(cmdPrefs)
	}
	return p.Set(v)
}

func (ed *Editor) printHelp(tk *tokens) {
	if s, ok := tk.get(); ok {
		s = strings.ToUpper(s)
		if h, ok := help[s]; ok {
			ed.printLine(terminal.StyleHelp, h)
			ed.printLine(terminal.StyleHelp, "usage: %s", usage[s])
			return
		}
		ed.printLine(terminal.StyleError, "no help for %s", s)
		return
	}

	cmds := make([]string, len(commandList))
	copy(cmds, commandList)
	sort.Strings(cmds)

	// commands are listed in columns
	const cols = 6
	var l strings.Builder
	for i, c := range cmds {
		l.WriteString(c)
		if (i+1)%cols == 0 || i == len(cmds)-1 {
			ed.printLine(terminal.StyleHelp, l.String())
			l.Reset()
		} else {
			l.WriteString(strings.Repeat(" ", 13-len(c)))
		}
	}
}
