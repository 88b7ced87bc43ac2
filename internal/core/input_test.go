package core

import (
	"slices"
	"testing"
	"time"
)

func TestIntentRelease(t *testing.T) {
	tests := []struct {
		in   Intent
		want Intent
	}{
		{IntentMoveLeftStart, IntentMoveLeftEnd},
		{IntentMoveRightStart, IntentMoveRightEnd},
		{IntentMoveLeftEnd, IntentNone},
		{IntentTogglePause, IntentNone},
		{IntentQuit, IntentNone},
	}
	for _, tt := range tests {
		if got := tt.in.Release(); got != tt.want {
			t.Errorf("%v.Release() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIntentString(t *testing.T) {
	if IntentTogglePause.String() != "TogglePause" {
		t.Errorf("String() = %q", IntentTogglePause.String())
	}
	if Intent(99).String() != "Unknown" {
		t.Errorf("unknown intent String() = %q", Intent(99).String())
	}
}

func TestKeyHold(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }

	h := NewKeyHold(500*time.Millisecond, 200*time.Millisecond)

	if got := h.Press(IntentMoveLeftStart, at(0)); !slices.Equal(got, []Intent{IntentMoveLeftStart}) {
		t.Fatalf("first press = %v", got)
	}
	// Key repeat keeps the hold alive without new intents
	if got := h.Press(IntentMoveLeftStart, at(150)); len(got) != 0 {
		t.Errorf("repeat press = %v, want nothing", got)
	}
	if _, ok := h.Expire(at(300)); ok {
		t.Error("hold expired before its deadline")
	}
	in, ok := h.Expire(at(350))
	if !ok || in != IntentMoveLeftEnd {
		t.Errorf("Expire() = %v, %v; want MoveLeftEnd", in, ok)
	}
	if _, ok := h.Expire(at(1000)); ok {
		t.Error("released key expired twice")
	}

	// Switching direction releases the old one first
	h.Press(IntentMoveLeftStart, at(1000))
	got := h.Press(IntentMoveRightStart, at(1010))
	if !slices.Equal(got, []Intent{IntentMoveLeftEnd, IntentMoveRightStart}) {
		t.Errorf("direction switch = %v", got)
	}
	if h.Held() != IntentMoveRightStart {
		t.Errorf("Held() = %v", h.Held())
	}

	// Other intents pass straight through
	if got := h.Press(IntentTogglePause, at(1020)); !slices.Equal(got, []Intent{IntentTogglePause}) {
		t.Errorf("pause press = %v", got)
	}
	if h.Held() != IntentMoveRightStart {
		t.Error("non-movement intents must not affect the hold")
	}
	if in, ok := h.Expire(at(1510)); !ok || in != IntentMoveRightEnd {
		t.Fatalf("Expire() = %v, %v; want MoveRightEnd", in, ok)
	}
}

// A fresh press outlasts the terminal's delay before auto-repeat starts,
// so a held key does not stutter between the first press and the repeats.
func TestKeyHoldCoversRepeatDelay(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }

	h := NewKeyHold(500*time.Millisecond, 180*time.Millisecond)
	h.Press(IntentMoveLeftStart, at(0))
	if _, ok := h.Expire(at(450)); ok {
		t.Fatal("first press released before auto-repeat could begin")
	}
	h.Press(IntentMoveLeftStart, at(450))
	for ms := 480; ms <= 900; ms += 30 {
		if _, ok := h.Expire(at(ms)); ok {
			t.Fatalf("released at %dms while repeats keep arriving", ms)
		}
		h.Press(IntentMoveLeftStart, at(ms))
	}
	if in, ok := h.Expire(at(1080)); !ok || in != IntentMoveLeftEnd {
		t.Errorf("Expire() = %v, %v; want release once repeats stop", in, ok)
	}

	short := NewKeyHold(50*time.Millisecond, 180*time.Millisecond)
	short.Press(IntentMoveRightStart, at(0))
	if _, ok := short.Expire(at(100)); ok {
		t.Error("initial hold shorter than the repeat hold")
	}
}
