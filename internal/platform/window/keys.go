package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Binding maps a key to the intents sent when it goes down and up.
// Release is IntentNone for keys that only act on press.
type Binding struct {
	Key     ebiten.Key
	Press   core.Intent
	Release core.Intent
}

// DefaultBindings returns the window key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		{Key: ebiten.KeyArrowLeft, Press: core.IntentMoveLeftStart, Release: core.IntentMoveLeftEnd},
		{Key: ebiten.KeyArrowRight, Press: core.IntentMoveRightStart, Release: core.IntentMoveRightEnd},
		{Key: ebiten.KeyP, Press: core.IntentTogglePause},
		{Key: ebiten.KeySpace, Press: core.IntentTogglePause},
		{Key: ebiten.KeyN, Press: core.IntentNewGame},
		{Key: ebiten.KeyD, Press: core.IntentToggleDebug},
		{Key: ebiten.KeyF3, Press: core.IntentToggleDebug},
		{Key: ebiten.KeyQ, Press: core.IntentQuit},
		{Key: ebiten.KeyEscape, Press: core.IntentQuit},
	}
}

// KeySource reports key transitions since the previous update.
type KeySource interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// inputKeys reads the keyboard through inpututil.
type inputKeys struct{}

func (inputKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (inputKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// Intents collects the intents for this update. Releases come before
// presses, so switching direction within one update ends on the new one.
func Intents(src KeySource, bindings []Binding) []core.Intent {
	var out []core.Intent
	for _, b := range bindings {
		if b.Release != core.IntentNone && src.JustReleased(b.Key) {
			out = append(out, b.Release)
		}
	}
	for _, b := range bindings {
		if src.JustPressed(b.Key) {
			out = append(out, b.Press)
		}
	}
	return out
}
