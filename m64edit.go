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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/editor"
	"github.com/jetsetilly/m64edit/logger"
	"github.com/jetsetilly/m64edit/m64"
	"github.com/jetsetilly/m64edit/modalflag"
	"github.com/jetsetilly/m64edit/paths"
	"github.com/jetsetilly/m64edit/prefs"
	"github.com/jetsetilly/m64edit/statsview"
	"github.com/jetsetilly/m64edit/terminal"
	"github.com/jetsetilly/m64edit/terminal/colorterm"
	"github.com/jetsetilly/m64edit/terminal/plainterm"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode handles ctrl-c for
	// itself. the color terminal for example reads ctrl-c as a key press.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

func main() {
	state := make(chan stateRequest)

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(state, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case st := <-state:
			switch st.req {
			case reqQuit:
				done = true
				if st.args != nil {
					if v, ok := st.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if st.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. the state channel is used to
// indicate that the program should end.
func launch(state chan stateRequest, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("EDIT", "INFO", "DUMP", "NEW")
	md.AdditionalHelp("a movie file given without a mode is opened in the editor")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "EDIT":
		err = edit(md, state)

	case "INFO":
		err = info(md)

	case "DUMP":
		err = dump(md)

	case "NEW":
		err = create(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	state <- stateRequest{req: reqQuit}
}

func edit(md *modalflag.Modes, state chan stateRequest) error {
	md.NewMode()

	prefsOverride := md.AddString("prefs", "", "override preferences. eg. \"clipboard.medium::redis\"")
	log := md.AddBool("log", false, "echo log to terminal")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	plain := md.AddBool("plain", false, "use plain terminal even if color terminal is available")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	var trm terminal.Terminal
	if !*plain && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		trm = &colorterm.ColorTerminal{}

		// the color terminal reads ctrl-c as an interrupt key
		state <- stateRequest{req: reqNoIntSig}
	} else {
		trm = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return err
	}

	ed, err := editor.NewEditor(trm, pth)
	if err != nil {
		return err
	}

	// the -log flag takes priority over the preferences
	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	err = ed.Start(md.GetArg(0))
	if err != nil {
		return err
	}

	if p := prefs.PopCommandLineStack(); p != "" {
		logger.Logf(logger.Allow, "m64edit", "unused command line preferences: %s", p)
	}

	return nil
}

// openMovie for the non-interactive modes. requires exactly one file argument.
func openMovie(md *modalflag.Modes) (*m64.Movie, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("movie file required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	mov := m64.NewMovie(nil, nil)
	if err := mov.Open(md.GetArg(0)); err != nil {
		return nil, err
	}
	return mov, nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mov, err := openMovie(md)
	if err != nil {
		return err
	}

	hdr := mov.Header()
	fmt.Println(hdr.String())
	fmt.Println(mov.Stats().String())

	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	from := md.AddInt("from", 0, "first frame to dump")
	count := md.AddInt("count", 0, "number of frames to dump (0 for all remaining)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mov, err := openMovie(md)
	if err != nil {
		return err
	}

	if err := mov.CheckIndex(*from, false); err != nil {
		return err
	}
	if *count < 0 {
		return fmt.Errorf("count cannot be negative")
	}

	end := mov.Len()
	if *count > 0 {
		end = min(end, *from+*count)
	}

	for _, f := range mov.Frames()[*from:end] {
		fmt.Println(f.String())
	}

	return nil
}

func create(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("movie file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pth := md.GetArg(0)
	if _, err := os.Stat(pth); err == nil {
		return curated.Errorf("file already exists (%s)", pth)
	}

	mov := m64.NewMovie(nil, nil)
	if err := mov.SaveAs(pth); err != nil {
		return err
	}

	fmt.Printf("created %s\n", pth)
	return nil
}
