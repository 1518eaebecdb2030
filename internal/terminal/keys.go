// internal/terminal/keys.go
package terminal

import "github.com/gdamore/tcell/v2"

// Command is a frontend action bound to a key.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdClick
	CmdSelectTower
	CmdUpgrade
	CmdSell
	CmdStartWave
	CmdCancel
	CmdPause
	CmdSpeed
	CmdRestart
)

// Binding is a resolved key press. Index is the shop slot for
// CmdSelectTower and -1 otherwise.
type Binding struct {
	Command Command
	Index   int
}

var keyCommands = map[tcell.Key]Command{
	tcell.KeyCtrlC:  CmdQuit,
	tcell.KeyLeft:   CmdLeft,
	tcell.KeyRight:  CmdRight,
	tcell.KeyUp:     CmdUp,
	tcell.KeyDown:   CmdDown,
	tcell.KeyEnter:  CmdClick,
	tcell.KeyEscape: CmdCancel,
	tcell.KeyTab:    CmdSpeed,
}

var runeCommands = map[rune]Command{
	'q': CmdQuit,
	'h': CmdLeft,
	'l': CmdRight,
	'k': CmdUp,
	'j': CmdDown,
	' ': CmdClick,
	'u': CmdUpgrade,
	's': CmdSell,
	'w': CmdStartWave,
	'p': CmdPause,
	'+': CmdSpeed,
	'r': CmdRestart,
}

// Resolve maps a key press to a command. Digits 1-9 select shop slots.
func Resolve(key tcell.Key, r rune) Binding {
	if key != tcell.KeyRune {
		return Binding{Command: keyCommands[key], Index: -1}
	}
	if r >= '1' && r <= '9' {
		return Binding{Command: CmdSelectTower, Index: int(r - '1')}
	}
	return Binding{Command: runeCommands[r], Index: -1}
}
