package core

import "time"

// Intent represents a semantic game command, abstracted from physical key
// presses. Frontends translate raw input into intents; anything they cannot
// translate is dropped before it reaches the game.
type Intent int

const (
	IntentNone           Intent = iota
	IntentMoveLeftStart         // Left pressed
	IntentMoveLeftEnd           // Left released
	IntentMoveRightStart        // Right pressed
	IntentMoveRightEnd          // Right released
	IntentTogglePause           // P
	IntentNewGame               // N
	IntentToggleDebug           // D
	IntentQuit                  // Q, Ctrl+C - handled by the frontend, never by the game
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeftStart:
		return "MoveLeftStart"
	case IntentMoveLeftEnd:
		return "MoveLeftEnd"
	case IntentMoveRightStart:
		return "MoveRightStart"
	case IntentMoveRightEnd:
		return "MoveRightEnd"
	case IntentTogglePause:
		return "TogglePause"
	case IntentNewGame:
		return "NewGame"
	case IntentToggleDebug:
		return "ToggleDebug"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Release returns the matching "end" intent for a movement "start" intent.
// Terminals without key-release events use it to synthesize releases.
func (i Intent) Release() Intent {
	switch i {
	case IntentMoveLeftStart:
		return IntentMoveLeftEnd
	case IntentMoveRightStart:
		return IntentMoveRightEnd
	default:
		return IntentNone
	}
}

// KeyHold synthesizes movement releases for inputs that only report key
// presses. A first press holds its direction for the initial duration,
// long enough to cover the terminal's delay before auto-repeat begins.
// After that each repeat holds it for the repeat duration. Pressing the
// other direction releases the first at once.
type KeyHold struct {
	initial  time.Duration
	repeat   time.Duration
	held     Intent // Start intent currently held, or IntentNone
	deadline time.Time
}

// NewKeyHold creates a KeyHold that releases a fresh press after initial
// and a repeated one after repeat. An initial shorter than repeat is
// raised to repeat.
func NewKeyHold(initial, repeat time.Duration) *KeyHold {
	return &KeyHold{initial: max(initial, repeat), repeat: repeat}
}

// Press records a movement start intent at now and returns the intents to
// apply, in order. Repeats of the held direction only extend the hold.
// Anything other than a movement start passes through unchanged.
func (h *KeyHold) Press(in Intent, now time.Time) []Intent {
	if in.Release() == IntentNone {
		return []Intent{in}
	}
	switch h.held {
	case in:
		h.deadline = now.Add(h.repeat)
		return nil
	case IntentNone:
		h.held = in
		h.deadline = now.Add(h.initial)
		return []Intent{in}
	default:
		prev := h.held
		h.held = in
		h.deadline = now.Add(h.initial)
		return []Intent{prev.Release(), in}
	}
}

// Expire returns the release intent once the hold has lapsed.
func (h *KeyHold) Expire(now time.Time) (Intent, bool) {
	if h.held == IntentNone || now.Before(h.deadline) {
		return IntentNone, false
	}
	in := h.held.Release()
	h.held = IntentNone
	return in, true
}

// Held returns the movement start intent being held, if any.
func (h *KeyHold) Held() Intent {
	return h.held
}
