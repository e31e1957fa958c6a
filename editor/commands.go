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

// editor keywords.
const (
	cmdOpen        = "OPEN"
	cmdNew         = "NEW"
	cmdSave        = "SAVE"
	cmdClose       = "CLOSE"
	cmdInfo        = "INFO"
	cmdStats       = "STATS"
	cmdList        = "LIST"
	cmdSet         = "SET"
	cmdPress       = "PRESS"
	cmdRelease     = "RELEASE"
	cmdStick       = "STICK"
	cmdInsert      = "INSERT"
	cmdDelete      = "DELETE"
	cmdCopy        = "COPY"
	cmdCut         = "CUT"
	cmdPaste       = "PASTE"
	cmdPasteInsert = "PASTEINSERT"
	cmdPasteN      = "PASTEN"
	cmdMemviz      = "MEMVIZ"
	cmdLog         = "LOG"
	cmdPrefs       = "PREFS"
	cmdHelp        = "HELP"
	cmdQuit        = "QUIT"
)

// commandList is the order commands are listed by HELP.
var commandList = []string{
	cmdOpen, cmdNew, cmdSave, cmdClose,
	cmdInfo, cmdStats, cmdList,
	cmdSet, cmdPress, cmdRelease, cmdStick,
	cmdInsert, cmdDelete,
	cmdCopy, cmdCut, cmdPaste, cmdPasteInsert, cmdPasteN,
	cmdMemviz, cmdLog, cmdPrefs, cmdHelp, cmdQuit,
}

// commands that can be used when there is no movie open.
var noMovieCommands = map[string]bool{
	cmdOpen:  true,
	cmdNew:   true,
	cmdLog:   true,
	cmdPrefs: true,
	cmdHelp:  true,
	cmdQuit:  true,
}

var usage = map[string]string{
	cmdOpen:        "OPEN <file>",
	cmdNew:         "NEW",
	cmdSave:        "SAVE [file]",
	cmdClose:       "CLOSE",
	cmdInfo:        "INFO",
	cmdStats:       "STATS",
	cmdList:        "LIST [frames|from]",
	cmdSet:         "SET <frames> <value | buttons... [X=n] [Y=n] | NONE>",
	cmdPress:       "PRESS <frames> <buttons...>",
	cmdRelease:     "RELEASE <frames> <buttons...>",
	cmdStick:       "STICK <frames> <x> <y>",
	cmdInsert:      "INSERT <at> [count]",
	cmdDelete:      "DELETE <frames>",
	cmdCopy:        "COPY <frames>",
	cmdCut:         "CUT <frames>",
	cmdPaste:       "PASTE <frames>",
	cmdPasteInsert: "PASTEINSERT <at>",
	cmdPasteN:      "PASTEN <at> <count> [INSERT]",
	cmdMemviz:      "MEMVIZ [file]",
	cmdLog:         "LOG [count | CLEAR]",
	cmdPrefs:       "PREFS [SAVE | LOAD | DEFAULTS | <key> <value>]",
	cmdHelp:        "HELP [command]",
	cmdQuit:        "QUIT",
}

var help = map[string]string{
	cmdOpen:        "Open a movie file. The current movie is discarded",
	cmdNew:         "Start a new movie with one blank frame",
	cmdSave:        "Save the movie. A movie that has never been saved is given a unique filename if none is specified",
	cmdClose:       "Close the current movie",
	cmdInfo:        "Display the movie header",
	cmdStats:       "Display statistics about the frame inputs",
	cmdList:        "List frames. Without an argument the listing continues from the end of the previous listing",
	cmdSet:         "Set the input of frames. A single number sets the packed input value",
	cmdPress:       "Press buttons in frames. Other buttons are unchanged",
	cmdRelease:     "Release buttons in frames. Other buttons are unchanged",
	cmdStick:       "Set the stick position in frames. Values between -128 and 127",
	cmdInsert:      "Insert blank frames before the frame. The frame can be one past the last frame",
	cmdDelete:      "Delete frames. Later frames move down to fill the gap",
	cmdCopy:        "Copy frames to the clipboard",
	cmdCut:         "Copy frames to the clipboard and then delete them",
	cmdPaste:       "Paste the clipboard onto frames. A frame is overwritten when its distance from the first frame in the list equals a clipboard offset",
	cmdPasteInsert: "Insert the clipboard before the frame",
	cmdPasteN:      "Paste the clipboard repeatedly starting at the frame. Frames are inserted first if INSERT is specified",
	cmdMemviz:      "Write a graphviz description of the movie's structure",
	cmdLog:         "Display recent log entries or clear the log",
	cmdPrefs:       "Display, change, load or save the editor preferences",
	cmdHelp:        "Lists commands and provides help for individual commands",
	cmdQuit:        "Exits the editor. Unsaved changes must be confirmed by quitting twice",
}
