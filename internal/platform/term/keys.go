package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Intent maps a key event to a game intent. Movement keys map to their
// Start intent; the release is synthesized later.
func Intent(ev *tcell.EventKey) core.Intent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.IntentMoveLeftStart
	case tcell.KeyRight:
		return core.IntentMoveRightStart
	case tcell.KeyF3:
		return core.IntentToggleDebug
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.IntentQuit
	case tcell.KeyRune:
	default:
		return core.IntentNone
	}

	switch ev.Rune() {
	case 'a', 'h':
		return core.IntentMoveLeftStart
	case 'd', 'l':
		return core.IntentMoveRightStart
	case 'p', ' ':
		return core.IntentTogglePause
	case 'n':
		return core.IntentNewGame
	case 'D':
		return core.IntentToggleDebug
	case 'q':
		return core.IntentQuit
	}
	return core.IntentNone
}
